package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/numlex"
	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/fsm"
	"github.com/npillmayer/numlex/intlex"
	"github.com/npillmayer/numlex/scanner"
	"github.com/npillmayer/numlex/scanner/lexmach"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter numeric literals.
// Every literal is fed to a reader character by character, and the moves of
// the reader's state machine are displayed as a tree.
func main() {
	// set up logging
	initDisplay()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	conff := flag.String("config", "", "Configuration file (TOML)")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	conf, err := loadConfig(*conff)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	gtrace.SyntaxTracer.SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to NumREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("numrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, out: os.Stdout}
	if err := intp.setKind(gconf.GetString("numlex.kind")); err != nil {
		pterm.Error.Println(err.Error())
		intp.setKind("double")
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// load an init file and start receiving literals / commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// --- Reader kinds ----------------------------------------------------------

var readerKinds = map[string]func() numlex.Reader{
	"double":     func() numlex.Reader { return numlex.NewDouble() },
	"float":      func() numlex.Reader { return numlex.NewFloat() },
	"longdouble": func() numlex.Reader { return numlex.NewLongDouble() },
	"long":       func() numlex.Reader { return numlex.NewLong() },
	"int":        func() numlex.Reader { return numlex.NewInt() },
	"short":      func() numlex.Reader { return numlex.NewShort() },
}

func kindNames() []string {
	names := make([]string, 0, len(readerKinds))
	for k := range readerKinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Intp is our interpreter object
type Intp struct {
	kind      string
	reader    numlex.Reader
	floatKind floatlex.Kind
	intKind   intlex.Kind
	repl      *readline.Instance
	out       io.Writer
}

func (intp *Intp) setKind(k string) error {
	k = strings.ToLower(strings.ReplaceAll(k, " ", ""))
	create, ok := readerKinds[k]
	if !ok {
		return fmt.Errorf("unknown kind %q, use one of %v", k, kindNames())
	}
	intp.kind, intp.reader = k, create()
	switch k {
	case "float":
		intp.floatKind = floatlex.Float
	case "longdouble":
		intp.floatKind = floatlex.LongDouble
	case "double":
		intp.floatKind = floatlex.Double
	case "int":
		intp.intKind = intlex.Int
	case "short":
		intp.intKind = intlex.Short
	case "long":
		intp.intKind = intlex.Long
	}
	tracer().Debugf("reader kind is now %s", k)
	return nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	lines := bufio.NewScanner(f)
	lineno := 1
	for lines.Scan() {
		line := lines.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		_, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errUsage = errors.New("usage error")

// Eval executes a command or feeds a literal, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.feed(line)
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		intp.help()
	case ":kind":
		if arg == "" {
			pterm.Info.Println("kind is " + intp.kind)
			break
		}
		if err = intp.setKind(arg); err == nil {
			pterm.Info.Println("kind is " + intp.kind)
		}
	case ":scan":
		err = intp.scan(arg)
	case ":lex":
		err = intp.lex(arg)
	case ":dot":
		err = intp.dot(arg)
	default:
		err = fmt.Errorf("%w: unknown command %s, try :help", errUsage, cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

func (intp *Intp) help() {
	pterm.Info.Println("Enter a literal to feed it to the current reader, or one of")
	pterm.Println(`    :kind <k>        select reader kind: ` + strings.Join(kindNames(), ", ") + `
    :scan <text>     split text into literal tokens
    :lex <text>      split text into literal tokens, using lexmachine
    :dot float|int   print the state diagram of a lexer (GraphViz)
    :quit            leave`)
}

// feed feeds a line to the current reader and displays the moves as a tree.
func (intp *Intp) feed(line string) error {
	intp.reader.Reset()
	ll := pterm.LeveledList{
		pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("%s %q", intp.kind, line)},
	}
	var rejected error
	for i, ch := range line {
		if !intp.reader.Feed(ch) {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("%q ✗ reset", ch)})
			rejected = fmt.Errorf("%q rejected at position %d", ch, i)
			break
		}
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("%q → %s", ch, intp.state())})
		if intp.reader.Valid() {
			ll = append(ll, pterm.LeveledListItem{Level: 2, Text: "valid: " + intp.value()})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	if rejected != nil {
		pterm.Error.Println(rejected.Error())
		return rejected
	}
	if !intp.reader.Valid() {
		pterm.Warning.Println("incomplete literal")
		return nil
	}
	pterm.Info.Println(intp.value())
	return nil
}

func (intp *Intp) state() string {
	switch r := intp.reader.(type) {
	case interface{ Cursor() *floatlex.Cursor }:
		return r.Cursor().State().String()
	case interface{ Cursor() *intlex.Cursor }:
		return r.Cursor().State().String()
	}
	return "?"
}

func (intp *Intp) value() string {
	switch r := intp.reader.(type) {
	case *numlex.Double:
		return fmt.Sprintf("%g", r.Value())
	case *numlex.Float:
		return fmt.Sprintf("%g", r.Value())
	case *numlex.LongDouble:
		return fmt.Sprintf("%g", r.Value())
	case *numlex.Long:
		return fmt.Sprintf("%d", r.Value())
	case *numlex.Int:
		if _, err := r.Checked(); err != nil {
			return fmt.Sprintf("%d (truncated: %v)", r.Value(), err)
		}
		return fmt.Sprintf("%d", r.Value())
	case *numlex.Short:
		if _, err := r.Checked(); err != nil {
			return fmt.Sprintf("%d (truncated: %v)", r.Value(), err)
		}
		return fmt.Sprintf("%d", r.Value())
	}
	return "?"
}

// --- Tokenizing ------------------------------------------------------------

func syntaxError(e error) {
	gtrace.SyntaxTracer.Errorf("%v", e)
}

func (intp *Intp) scan(text string) error {
	if text == "" {
		return fmt.Errorf("%w: :scan <text>", errUsage)
	}
	tok := scanner.NewTokenizer("repl", strings.NewReader(text),
		scanner.FloatKind(intp.floatKind), scanner.IntKind(intp.intKind))
	tok.SetErrorHandler(syntaxError)
	for _, t := range scanner.Tokens(tok) {
		printToken(t)
	}
	return nil
}

func (intp *Intp) lex(text string) error {
	if text == "" {
		return fmt.Errorf("%w: :lex <text>", errUsage)
	}
	LM, err := lexmach.NewNumberLexer(lexmach.FloatKind(intp.floatKind), lexmach.IntKind(intp.intKind))
	if err != nil {
		return err
	}
	sc, err := LM.Scanner(text)
	if err != nil {
		return err
	}
	sc.SetErrorHandler(syntaxError)
	for _, t := range scanner.Tokens(sc) {
		printToken(t)
	}
	return nil
}

func printToken(t numlex.Token) {
	s := fmt.Sprintf("%-8s %-14q %s", t.TokType(), t.Lexeme(), t.Span())
	if t.TokType() == numlex.Invalid {
		pterm.Warning.Println(s)
		return
	}
	pterm.Info.Println(fmt.Sprintf("%s = %v", s, t.Value()))
}

// dot prints a state diagram. Argument is "float" or "int", optionally
// followed by a file name.
func (intp *Intp) dot(arg string) error {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return fmt.Errorf("%w: :dot float|int [file]", errUsage)
	}
	var G *fsm.Graph
	switch args[0] {
	case "float":
		G = floatlex.Graph()
	case "int":
		G = intlex.Graph()
	default:
		return fmt.Errorf("%w: no lexer %q", errUsage, args[0])
	}
	if len(args) < 2 {
		return G.WriteGraphViz(intp.out)
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	if err = G.WriteGraphViz(f); err != nil {
		return err
	}
	pterm.Info.Println("state diagram written to " + args[1])
	return nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
