package intlex

import (
	"fmt"

	cc "github.com/npillmayer/numlex/charclass"
	"github.com/npillmayer/numlex/fsm"
	"github.com/npillmayer/schuko/gconf"
)

// Kind selects the target type of an integer cursor.
type Kind int8

// Target kinds. All kinds accumulate in an int64; narrowing is left to clients.
const (
	Long Kind = iota
	Int
	Short
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Short:
		return "short"
	}
	return "long"
}

// Cursor is the state of reading a single integer literal.
//
// The zero value is a dormant cursor of kind Long, without bare-zero mode.
type Cursor struct {
	state     State
	valid     bool
	neg       bool
	value     int64
	intDigits int
	hexDigits int
	trailing  int
	kind      Kind
	bareZero  bool
}

// Option configures a cursor.
type Option func(*Cursor)

// AcceptBareZero controls whether a lone "0" is a valid literal.
func AcceptBareZero(b bool) Option {
	return func(c *Cursor) {
		c.bareZero = b
	}
}

// New creates a dormant cursor for literals of kind k. Without option
// AcceptBareZero, bare-zero mode is taken from configuration key
// "numlex.bare-zero".
func New(k Kind, opts ...Option) *Cursor {
	c := &Cursor{kind: k, bareZero: gconf.GetBool("numlex.bare-zero")}
	for _, opt := range opts {
		opt(c)
	}
	if c.bareZero {
		tracer().Debugf("%s cursor accepts bare zero", k)
	}
	return c
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
		if ch == '0' && (c.state == Init || c.state == WaitDigitOrZero) {
			c.apply(effZero, ch)
			c.state = WaitHexMarkerConfirm
			return true
		}
		if c.apply(d.Effect, ch) {
			c.state = State(d.Next)
			return true
		}
	}
	c.Reset()
	return false
}

func (c *Cursor) apply(effect fsm.Effect, ch rune) bool {
	switch effect {
	case effSign:
		c.neg = ch == '-'
	case effZero:
		c.intDigits++
		c.valid = c.bareZero
	case effDigit:
		c.value = c.value*10 + int64(cc.DigitValue(ch))
		c.intDigits++
		c.valid = true
	case effHexMarker:
		c.valid = false
	case effHexDigit:
		c.value = c.value*16 + int64(cc.HexDigitValue(ch))
		c.hexDigits++
		c.valid = true
	case effZeroSuffix:
		return c.bareZero
	}
	return true
}

// Reset puts the cursor back to its dormant state. Kind and bare-zero mode
// are retained.
func (c *Cursor) Reset() {
	*c = Cursor{kind: c.kind, bareZero: c.bareZero}
}

// Valid is true if the characters accepted so far form a complete literal.
func (c *Cursor) Valid() bool {
	return c.valid
}

// Value returns the numeric value of the characters accepted so far.
func (c *Cursor) Value() int64 {
	if c.neg {
		return -c.value
	}
	return c.value
}

// State returns the current state.
func (c *Cursor) State() State {
	return c.state
}

// Kind returns the target kind of the cursor.
func (c *Cursor) Kind() Kind {
	return c.kind
}

// BareZero is true if the cursor accepts a lone "0".
func (c *Cursor) BareZero() bool {
	return c.bareZero
}

// Sign returns -1 for negative literals, 1 otherwise.
func (c *Cursor) Sign() int {
	if c.neg {
		return -1
	}
	return 1
}

// IntDigits returns the number of decimal digits read, including a leading zero.
func (c *Cursor) IntDigits() int {
	return c.intDigits
}

// HexDigits returns the number of hex digits read.
func (c *Cursor) HexDigits() int {
	return c.hexDigits
}

// TrailingSpaces returns the number of whitespace characters accepted after a
// complete literal.
func (c *Cursor) TrailingSpaces() int {
	return c.trailing
}

func (c *Cursor) String() string {
	return fmt.Sprintf("int-cursor[%s %s valid=%v]", c.kind, c.state, c.valid)
}

// Snapshot is an exported copy of a cursor's state.
type Snapshot struct {
	State          State
	Kind           Kind
	BareZero       bool
	Valid          bool
	Sign           int
	Value          int64
	IntDigits      int
	HexDigits      int
	TrailingSpaces int
}

// Snapshot returns the current state of the cursor.
func (c *Cursor) Snapshot() Snapshot {
	return Snapshot{
		State:          c.state,
		Kind:           c.kind,
		BareZero:       c.bareZero,
		Valid:          c.valid,
		Sign:           c.Sign(),
		Value:          c.value,
		IntDigits:      c.intDigits,
		HexDigits:      c.hexDigits,
		TrailingSpaces: c.trailing,
	}
}
