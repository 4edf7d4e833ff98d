package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/numlex"
	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/intlex"
	"github.com/npillmayer/numlex/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'numlex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("numlex.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// NewNumberLexer creates a lexmachine adapter for numeric literals separated
// by whitespace.
func NewNumberLexer(opts ...Option) (*LMAdapter, error) {
	conf := makeConfig(opts)
	init := func(lexer *lexmachine.Lexer) {
		AddNumberPatterns(lexer, opts...)
		lexer.Add([]byte(spacePattern), Skip)
	}
	tracer().Debugf("number lexer for %s and %s literals", conf.floatKind, conf.intKind)
	return NewLMAdapter(init, nil, nil, nil)
}

// Regular expressions for numeric literals. They are a superset of what the
// literal lexers accept; suffixes and bare zeros are checked by the actions.
var (
	floatPatterns = []string{
		`[\+\-]?[0-9]+\.`,
		`[\+\-]?[0-9]*\.[0-9]+((e|E)[\+\-]?[0-9]+)?(f|F|l|L)?`,
		`[\+\-]?[0-9]+(e|E)[\+\-]?[0-9]+(f|F|l|L)?`,
	}
	intPatterns = []string{
		`[\+\-]?[1-9][0-9]*(l|L)?`,
		`[\+\-]?0(x|X)([0-9]|[a-f]|[A-F])+(l|L)?`,
	}
	bareZeroPattern = `[\+\-]?0(l|L)?`
)

// spacePattern matches the whitespace set of charclass.IsSpace. lexmachine
// knows no escape for \v, so it is included as a raw byte.
const spacePattern = "( |\\t|\\n|\\r|\v)+"

// AddNumberPatterns registers regular expressions for float and integer
// literals with lexer, with MakeNumberToken as their action.
func AddNumberPatterns(lexer *lexmachine.Lexer, opts ...Option) {
	for _, p := range floatPatterns {
		lexer.Add([]byte(p), MakeNumberToken(numlex.FloatLit, opts...))
	}
	for _, p := range intPatterns {
		lexer.Add([]byte(p), MakeNumberToken(numlex.IntLit, opts...))
	}
	if makeConfig(opts).bareZero {
		lexer.Add([]byte(bareZeroPattern), MakeNumberToken(numlex.IntLit, opts...))
	}
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine cannot match is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() numlex.Token {
	if lms.scanner == nil {
		return numlex.Literal{Type: numlex.EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(len(lms.scanner.Text))
		return numlex.Literal{Type: numlex.EOF, Range: numlex.Span{end, end}}
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return numlex.Literal{
		Type:  numlex.TokType(token.Type),
		Text:  string(token.Lexeme),
		Val:   token.Value,
		Range: numlex.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// MakeNumberToken is an action which wraps a numeric literal into a token of
// type typ (numlex.IntLit or numlex.FloatLit). The value of the token is
// computed by the literal lexers. If they do not accept the match, the action
// returns an error.
func MakeNumberToken(typ numlex.TokType, opts ...Option) lexmachine.Action {
	conf := makeConfig(opts)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		var value interface{}
		var ok bool
		switch typ {
		case numlex.IntLit:
			c := intlex.New(conf.intKind, intlex.AcceptBareZero(conf.bareZero))
			ok = feedAll(c, m.Bytes)
			value = c.Value()
		case numlex.FloatLit:
			c := floatlex.New(conf.floatKind)
			ok = feedAll(c, m.Bytes)
			value = c.Value()
		default:
			return nil, fmt.Errorf("token type %s is not numeric", typ)
		}
		if !ok {
			return nil, fmt.Errorf("%d:%d: %q is not a valid %s literal", m.StartLine,
				m.StartColumn, m.Bytes, typ)
		}
		return s.Token(int(typ), value, m), nil
	}
}

type cursor interface {
	Feed(rune) bool
	Valid() bool
}

func feedAll(c cursor, lexeme []byte) bool {
	for _, ch := range string(lexeme) {
		if !c.Feed(ch) {
			return false
		}
	}
	return c.Valid()
}

// --- Options ---------------------------------------------------------------

type config struct {
	floatKind floatlex.Kind
	intKind   intlex.Kind
	bareZero  bool
}

// Option configures the number patterns of a lexmachine adapter.
type Option func(*config)

func makeConfig(opts []Option) config {
	conf := config{bareZero: gconf.GetBool("numlex.bare-zero")}
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

// FloatKind sets the kind of float literals. Default is floatlex.Double.
func FloatKind(k floatlex.Kind) Option {
	return func(c *config) {
		c.floatKind = k
	}
}

// IntKind sets the kind of integer literals. Default is intlex.Long.
func IntKind(k intlex.Kind) Option {
	return func(c *config) {
		c.intKind = k
	}
}

// BareZero sets whether a lone "0" is an integer literal. Default is taken from
// configuration key "numlex.bare-zero".
func BareZero(b bool) Option {
	return func(c *config) {
		c.bareZero = b
	}
}
