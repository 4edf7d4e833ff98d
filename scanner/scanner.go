/*
Package scanner splits a stream of runes into numeric literal tokens.

A NumberTokenizer feeds runes to a float and an integer cursor in parallel,
until both of them reject a rune. The rejecting rune is not consumed, but
starts the next token. The token type is determined by the cursor that has
read the whole lexeme and is valid at its end; if both are, the token is an
integer literal. Lexemes no cursor accepts completely are reported as Invalid
tokens.

	tok := scanner.NewTokenizer("input", strings.NewReader("12 0x1c 3.5e2"))
	for t := tok.NextToken(); t.TokType() != numlex.EOF; t = tok.NextToken() {
		fmt.Printf("%s %v\n", t.TokType(), t.Value())
	}

An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/numlex"
	"github.com/npillmayer/numlex/charclass"
	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/intlex"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numlex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("numlex.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() numlex.Token
	SetErrorHandler(func(error))
}

// Tokens reads tokens from t until EOF. The EOF token is not included.
func Tokens(t Tokenizer) []numlex.Token {
	var toks []numlex.Token
	for tok := t.NextToken(); tok.TokType() != numlex.EOF; tok = t.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

// ScanMode selects the literal families a tokenizer recognizes.
type ScanMode uint8

// Scan modes.
const (
	ScanFloats ScanMode = 1 << iota
	ScanInts
	ScanAuto = ScanFloats | ScanInts
)

func (m ScanMode) String() string {
	switch m {
	case ScanFloats:
		return "floats"
	case ScanInts:
		return "ints"
	}
	return "auto"
}

// ParseMode returns the scan mode for a name "floats", "ints" or "auto".
// An empty name is "auto".
func ParseMode(name string) (ScanMode, error) {
	switch strings.ToLower(name) {
	case "floats", "float":
		return ScanFloats, nil
	case "ints", "int":
		return ScanInts, nil
	case "auto", "":
		return ScanAuto, nil
	}
	return ScanAuto, fmt.Errorf("unknown scan mode %q", name)
}

// NumberTokenizer is a tokenizer for numeric literals. Create one with
// NewTokenizer.
type NumberTokenizer struct {
	sourceID  string
	src       *runeSource
	mode      ScanMode
	floatKind floatlex.Kind
	intKind   intlex.Kind
	intOpts   []intlex.Option
	Error     func(error) // error handler
}

var _ Tokenizer = (*NumberTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NewTokenizer creates a tokenizer for numeric literals, reading from input.
// sourceID is used for error messages.
//
// Without option Mode, the scan mode is taken from configuration key
// "numlex.scanmode".
func NewTokenizer(sourceID string, input io.RuneReader, opts ...Option) *NumberTokenizer {
	t := &NumberTokenizer{
		sourceID: sourceID,
		src:      newRuneSource(input),
		Error:    logError,
	}
	mode, err := ParseMode(gconf.GetString("numlex.scanmode"))
	if err != nil {
		tracer().Errorf("configuration: %v", err)
	}
	t.mode = mode
	for _, opt := range opts {
		opt(t)
	}
	tracer().Debugf("tokenizer for %s scans %s", sourceID, t.mode)
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *NumberTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *NumberTokenizer) NextToken() numlex.Token {
	if err := t.skipSpace(); err != nil {
		return t.eof(err)
	}
	t.src.ResetOutput()
	if _, err := t.src.lookahead(); err != nil {
		return t.eof(err)
	}
	// Feed the lookahead rune to every live cursor. A cursor resets when
	// rejecting, so we keep a copy of its state before every rune.
	fc, ic := *floatlex.New(t.floatKind), *intlex.New(t.intKind, t.intOpts...)
	fLive, iLive := t.mode&ScanFloats != 0, t.mode&ScanInts != 0
	var fFinal floatlex.Cursor
	var iFinal intlex.Cursor
	var fN, iN, n int
	for fLive || iLive {
		r, err := t.src.lookahead()
		if err != nil {
			if err != io.EOF {
				t.Error(err)
			}
			break
		}
		accepted := false
		if fLive {
			prev := fc
			if fc.Feed(r) {
				accepted = true
			} else {
				fLive, fFinal, fN = false, prev, n
			}
		}
		if iLive {
			prev := ic
			if ic.Feed(r) {
				accepted = true
			} else {
				iLive, iFinal, iN = false, prev, n
			}
		}
		if !accepted {
			break
		}
		t.src.match(r)
		n++
	}
	if fLive {
		fFinal, fN = fc, n
	}
	if iLive {
		iFinal, iN = ic, n
	}
	if n == 0 { // first rune has been rejected: make it a token on its own
		r, _ := t.src.lookahead()
		t.src.match(r)
		return t.invalid()
	}
	switch {
	case iN == n && iFinal.Valid():
		return t.token(numlex.IntLit, iFinal.Value())
	case fN == n && fFinal.Valid():
		return t.token(numlex.FloatLit, fFinal.Value())
	}
	return t.invalid()
}

func (t *NumberTokenizer) skipSpace() error {
	for {
		r, err := t.src.lookahead()
		if err != nil {
			return err
		}
		if !charclass.IsSpace(r) {
			return nil
		}
		t.src.match(r)
	}
}

// lexeme returns the current lexeme and its span, without trailing whitespace.
func (t *NumberTokenizer) lexeme() (string, numlex.Span) {
	s, span := t.src.OutputString(), t.src.Span()
	trimmed := strings.TrimRightFunc(s, charclass.IsSpace)
	span[1] -= uint64(len(s) - len(trimmed))
	return trimmed, span
}

func (t *NumberTokenizer) token(typ numlex.TokType, value interface{}) numlex.Token {
	lexeme, span := t.lexeme()
	tracer().Debugf("%s literal %q = %v at %s", typ, lexeme, value, span)
	return numlex.Literal{Type: typ, Text: lexeme, Val: value, Range: span}
}

func (t *NumberTokenizer) invalid() numlex.Token {
	lexeme, span := t.lexeme()
	t.Error(fmt.Errorf("%s%s: invalid numeric literal %q", t.sourceID, span, lexeme))
	return numlex.Literal{Type: numlex.Invalid, Text: lexeme, Range: span}
}

func (t *NumberTokenizer) eof(err error) numlex.Token {
	if err != io.EOF {
		t.Error(err)
	}
	pos := t.src.Pos()
	tracer().Debugf("tokenizer for %s reached end of input", t.sourceID)
	return numlex.Literal{Type: numlex.EOF, Range: numlex.Span{pos, pos}}
}

// --- Tokenizer options -----------------------------------------------------

// Option configures a number tokenizer.
type Option func(t *NumberTokenizer)

// Mode sets the literal families to recognize.
func Mode(m ScanMode) Option {
	return func(t *NumberTokenizer) {
		if m&ScanAuto == 0 {
			m = ScanAuto
		}
		t.mode = m
	}
}

// FloatKind sets the kind of float literals, which determines the accepted
// size suffix. Default is floatlex.Double.
func FloatKind(k floatlex.Kind) Option {
	return func(t *NumberTokenizer) {
		t.floatKind = k
	}
}

// IntKind sets the kind of integer literals. Default is intlex.Long.
func IntKind(k intlex.Kind) Option {
	return func(t *NumberTokenizer) {
		t.intKind = k
	}
}

// BareZero sets whether a lone "0" is read as an integer literal.
func BareZero(b bool) Option {
	return func(t *NumberTokenizer) {
		t.intOpts = append(t.intOpts, intlex.AcceptBareZero(b))
	}
}
