package floatlex

import (
	"fmt"
	"math"

	cc "github.com/npillmayer/numlex/charclass"
	"github.com/npillmayer/numlex/fsm"
)

// Kind selects the target type of a float cursor. It determines which size
// suffix is accepted.
type Kind int8

// Target kinds. LongDouble literals are read as float64 as well.
const (
	Double     Kind = iota // no suffix
	Float                  // suffix f|F
	LongDouble             // suffix l|L
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case LongDouble:
		return "long double"
	}
	return "double"
}

// maxExponent bounds the accumulated exponent. 10^maxExponent overflows
// float64 anyway.
const maxExponent = 99999999

// Cursor is the state of reading a single float literal.
//
// The zero value is a dormant cursor of kind Double. Cursors may be copied;
// a copy continues independently.
type Cursor struct {
	state      State
	valid      bool
	neg        bool    // mantissa sign
	mantissa   float64 // accumulated digits of integer and fractional part
	fracScale  float64 // weight of the next fractional digit
	expNeg     bool
	expValue   int32
	intDigits  int
	fracDigits int
	expDigits  int
	trailing   int // trailing whitespace seen after a complete literal
	kind       Kind
}

// New creates a dormant cursor for literals of kind k.
func New(k Kind) *Cursor {
	return &Cursor{kind: k}
}

// Feed offers the next character to the cursor. If the character is accepted
// Feed returns true. Otherwise the cursor is reset and Feed returns false.
func (c *Cursor) Feed(ch rune) bool {
	if c.state == Dormant {
		c.state = Init
	}
	d := table.Decide(int(c.state), ch, c.valid, c.trailing)
	switch d.Action {
	case fsm.Skip:
		return true
	case fsm.SkipTrailing:
		c.trailing++
		return true
	case fsm.Move:
		if c.apply(d.Effect, ch) {
			c.state = State(d.Next)
			return true
		}
	}
	c.Reset()
	return false
}

// apply performs the effect of a transition. It returns false if the
// transition is not applicable to the cursor's kind.
func (c *Cursor) apply(effect fsm.Effect, ch rune) bool {
	switch effect {
	case effSign:
		c.neg = ch == '-'
	case effIntDigit:
		c.mantissa = c.mantissa*10 + float64(cc.DigitValue(ch))
		c.intDigits++
	case effPoint:
		if c.intDigits > 0 {
			c.valid = true // "536." is complete
		}
		c.fracScale = 0.1
	case effFracDigit:
		c.mantissa += float64(cc.DigitValue(ch)) * c.fracScale
		c.fracScale *= 0.1
		c.fracDigits++
		c.valid = true
	case effExpMarker:
		c.valid = false
	case effExpSign:
		c.expNeg = ch == '-'
	case effExpDigit:
		e := int64(c.expValue)*10 + int64(cc.DigitValue(ch))
		if e > maxExponent {
			e = maxExponent
		}
		c.expValue = int32(e)
		c.expDigits++
		c.valid = true
	case effSuffixFloat:
		return c.kind == Float
	case effSuffixLongDouble:
		return c.kind == LongDouble
	}
	return true
}

// Reset puts the cursor back to its dormant state. The kind is retained.
func (c *Cursor) Reset() {
	*c = Cursor{kind: c.kind}
}

// Valid is true if the characters accepted so far form a complete literal.
func (c *Cursor) Valid() bool {
	return c.valid
}

// Value returns the numeric value of the characters accepted so far.
// It is meaningful only if the cursor is valid.
func (c *Cursor) Value() float64 {
	e := int(c.expValue)
	if c.expNeg {
		e = -e
	}
	v := scale(c.mantissa, e)
	if c.neg {
		v = -v
	}
	return v
}

// State returns the current state.
func (c *Cursor) State() State {
	return c.state
}

// Kind returns the target kind of the cursor.
func (c *Cursor) Kind() Kind {
	return c.kind
}

// Sign returns -1 for negative literals, 1 otherwise.
func (c *Cursor) Sign() int {
	if c.neg {
		return -1
	}
	return 1
}

// IntDigits returns the number of digits read for the integer part.
func (c *Cursor) IntDigits() int {
	return c.intDigits
}

// FracDigits returns the number of digits read for the fractional part.
func (c *Cursor) FracDigits() int {
	return c.fracDigits
}

// ExpDigits returns the number of digits read for the exponent.
func (c *Cursor) ExpDigits() int {
	return c.expDigits
}

// TrailingSpaces returns the number of whitespace characters accepted after a
// complete literal.
func (c *Cursor) TrailingSpaces() int {
	return c.trailing
}

func (c *Cursor) String() string {
	return fmt.Sprintf("float-cursor[%s %s valid=%v]", c.kind, c.state, c.valid)
}

// Snapshot is an exported copy of a cursor's state, for inspection and comparison.
type Snapshot struct {
	State          State
	Kind           Kind
	Valid          bool
	Sign           int
	Mantissa       float64
	FracScale      float64
	ExpSign        int
	Exponent       int32
	IntDigits      int
	FracDigits     int
	ExpDigits      int
	TrailingSpaces int
}

// Snapshot returns the current state of the cursor.
func (c *Cursor) Snapshot() Snapshot {
	s := Snapshot{
		State:          c.state,
		Kind:           c.kind,
		Valid:          c.valid,
		Sign:           c.Sign(),
		Mantissa:       c.mantissa,
		FracScale:      c.fracScale,
		ExpSign:        1,
		Exponent:       c.expValue,
		IntDigits:      c.intDigits,
		FracDigits:     c.fracDigits,
		ExpDigits:      c.expDigits,
		TrailingSpaces: c.trailing,
	}
	if c.expNeg {
		s.ExpSign = -1
	}
	return s
}

// scale computes m·10^e by repeated multiplication or division of m. It
// stops early once the result has over- or underflowed.
func scale(m float64, e int) float64 {
	if m == 0 {
		return 0
	}
	for ; e > 0 && !math.IsInf(m, 0); e-- {
		m *= 10
	}
	for ; e < 0 && m != 0; e++ {
		m /= 10
	}
	return m
}
