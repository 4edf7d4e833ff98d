package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/intlex"
	"github.com/npillmayer/numlex/scanner"
	"github.com/npillmayer/numlex/scanner/lexmach"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// scanOptions collects the settings of a scan run.
type scanOptions struct {
	mode      scanner.ScanMode
	engine    string
	floatKind floatlex.Kind
	intKind   intlex.Kind
	bareZero  bool
	jobs      int
}

// fileResult holds the tokens of one input file.
type fileResult struct {
	Path   string        `msgpack:"path"`
	Tokens []tokenRecord `msgpack:"tokens"`
	Errors []string      `msgpack:"errors,omitempty"`
}

// tokenRecord is the serialized form of a token.
type tokenRecord struct {
	Type   string      `msgpack:"type"`
	Lexeme string      `msgpack:"lexeme"`
	Value  interface{} `msgpack:"value,omitempty"`
	From   uint64      `msgpack:"from"`
	To     uint64      `msgpack:"to"`
}

func optionsFromFlags(cmd *cobra.Command) (scanOptions, error) {
	opts := scanOptions{}
	var err error
	name, _ := cmd.Flags().GetString("mode")
	if opts.mode, err = scanner.ParseMode(name); err != nil {
		return opts, err
	}
	opts.engine, _ = cmd.Flags().GetString("engine")
	if opts.engine != "fsm" && opts.engine != "lexmachine" {
		return opts, fmt.Errorf("unknown engine: %s", opts.engine)
	}
	name, _ = cmd.Flags().GetString("float-kind")
	if opts.floatKind, err = parseFloatKind(name); err != nil {
		return opts, err
	}
	name, _ = cmd.Flags().GetString("int-kind")
	if opts.intKind, err = parseIntKind(name); err != nil {
		return opts, err
	}
	opts.bareZero, _ = cmd.Flags().GetBool("bare-zero")
	opts.jobs, _ = cmd.Flags().GetInt("jobs")
	return opts, nil
}

func parseFloatKind(name string) (floatlex.Kind, error) {
	switch strings.ToLower(name) {
	case "double":
		return floatlex.Double, nil
	case "float":
		return floatlex.Float, nil
	case "longdouble", "long-double":
		return floatlex.LongDouble, nil
	}
	return floatlex.Double, fmt.Errorf("unknown float kind: %s", name)
}

func parseIntKind(name string) (intlex.Kind, error) {
	switch strings.ToLower(name) {
	case "long":
		return intlex.Long, nil
	case "int":
		return intlex.Int, nil
	case "short":
		return intlex.Short, nil
	}
	return intlex.Long, fmt.Errorf("unknown int kind: %s", name)
}

// scanFiles tokenizes files in parallel. Each goroutine owns its tokenizer.
// Results are in the order of paths. A path "-" denotes standard input.
func scanFiles(ctx context.Context, paths []string, opts scanOptions) ([]fileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	jobs := opts.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]fileResult, len(paths)) // index i is owned by one goroutine
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := scanFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func scanFile(path string, opts scanOptions) (fileResult, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fileResult{Path: path}, fmt.Errorf("cannot open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	tracer().Debugf("scanning %s with %s engine", path, opts.engine)
	if opts.engine == "lexmachine" {
		return scanLM(path, in, opts)
	}
	return scanFSM(path, in, opts), nil
}

func scanFSM(path string, in io.Reader, opts scanOptions) fileResult {
	result := fileResult{Path: path}
	tok := scanner.NewTokenizer(path, bufio.NewReader(in),
		scanner.Mode(opts.mode),
		scanner.FloatKind(opts.floatKind),
		scanner.IntKind(opts.intKind),
		scanner.BareZero(opts.bareZero))
	tok.SetErrorHandler(result.addError)
	result.collect(tok)
	return result
}

func scanLM(path string, in io.Reader, opts scanOptions) (fileResult, error) {
	result := fileResult{Path: path}
	text, err := io.ReadAll(in)
	if err != nil {
		return result, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if opts.mode != scanner.ScanAuto {
		tracer().Infof("engine lexmachine ignores scan mode %s", opts.mode)
	}
	LM, err := lexmach.NewNumberLexer(
		lexmach.FloatKind(opts.floatKind),
		lexmach.IntKind(opts.intKind),
		lexmach.BareZero(opts.bareZero))
	if err != nil {
		return result, err
	}
	sc, err := LM.Scanner(string(text))
	if err != nil {
		return result, err
	}
	sc.SetErrorHandler(func(e error) {
		result.addError(fmt.Errorf("%s: %w", path, e))
	})
	result.collect(sc)
	return result, nil
}

func (r *fileResult) addError(e error) {
	r.Errors = append(r.Errors, e.Error())
}

func (r *fileResult) collect(t scanner.Tokenizer) {
	for _, tok := range scanner.Tokens(t) {
		r.Tokens = append(r.Tokens, tokenRecord{
			Type:   tok.TokType().String(),
			Lexeme: tok.Lexeme(),
			Value:  tok.Value(),
			From:   tok.Span().From(),
			To:     tok.Span().To(),
		})
	}
}
