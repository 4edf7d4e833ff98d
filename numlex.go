package numlex

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token.
type TokType int

// Token categories produced by the tokenizers of this module.
const (
	EOF      TokType = -1
	Invalid  TokType = 0
	IntLit   TokType = 1
	FloatLit TokType = 2
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IntLit:
		return "int"
	case FloatLit:
		return "float"
	}
	return "invalid"
}

// Tokens represent numeric literals found in an input stream.
//
// An example would be a token for a floating point number:
//
//    TokType = FloatLit     // category of the token
//    Lexeme  = "3.1416f"    // lexeme how it appeared in the input stream
//    Value   = 3.1416       // is a float64 value
//    Span    = 67…74        // occurred from position 67 in the input stream
//
// Values of IntLit tokens are int64, values of FloatLit tokens are float64.
// Invalid tokens carry no value.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Literal is a simple implementation of Token.
type Literal struct {
	Type  TokType
	Text  string
	Val   interface{}
	Range Span
}

// TokType is part of interface Token.
func (l Literal) TokType() TokType { return l.Type }

// Lexeme is part of interface Token.
func (l Literal) Lexeme() string { return l.Text }

// Value is part of interface Token.
func (l Literal) Value() interface{} { return l.Val }

// Span is part of interface Token.
func (l Literal) Span() Span { return l.Range }

func (l Literal) String() string {
	if l.Val == nil {
		return fmt.Sprintf("%s %q %s", l.Type, l.Text, l.Range)
	}
	return fmt.Sprintf("%s %q=%v %s", l.Type, l.Text, l.Val, l.Range)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
