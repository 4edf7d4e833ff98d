package numlex

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/intlex"
)

// Reader is the common interface of the typed readers. Each reader
// additionally has a method Value, returning its numeric type.
type Reader interface {
	Feed(rune) bool // offer the next character, true if accepted
	Valid() bool    // do the characters read so far form a complete literal?
	Reset()         // start over
}

// FeedString feeds the runes of s to r until the first rejection. It returns
// the number of runes accepted.
func FeedString(r Reader, s string) int {
	n := 0
	for _, ch := range s {
		if !r.Feed(ch) {
			break
		}
		n++
	}
	return n
}

// --- Floating point ---------------------------------------------------

// Double reads literals of type double.
type Double struct {
	c floatlex.Cursor
}

// NewDouble creates a reader for literals of type double.
func NewDouble() *Double {
	return &Double{c: *floatlex.New(floatlex.Double)}
}

func (d *Double) Feed(ch rune) bool { return d.c.Feed(ch) }
func (d *Double) Valid() bool       { return d.c.Valid() }
func (d *Double) Reset()            { d.c.Reset() }

// Value returns the value of the literal read so far.
func (d *Double) Value() float64 { return d.c.Value() }

// Cursor returns the underlying float cursor.
func (d *Double) Cursor() *floatlex.Cursor { return &d.c }

// Float reads literals of type float, i.e. with optional suffix 'f'.
type Float struct {
	c floatlex.Cursor
}

// NewFloat creates a reader for literals of type float.
func NewFloat() *Float {
	return &Float{c: *floatlex.New(floatlex.Float)}
}

func (f *Float) Feed(ch rune) bool { return f.c.Feed(ch) }
func (f *Float) Valid() bool       { return f.c.Valid() }
func (f *Float) Reset()            { f.c.Reset() }

// Value returns the value of the literal read so far, rounded to float32.
func (f *Float) Value() float32 { return float32(f.c.Value()) }

// Cursor returns the underlying float cursor.
func (f *Float) Cursor() *floatlex.Cursor { return &f.c }

// LongDouble reads literals of type long double, i.e. with optional suffix 'l'.
// Values are float64, as Go has no wider floating point type.
type LongDouble struct {
	c floatlex.Cursor
}

// NewLongDouble creates a reader for literals of type long double.
func NewLongDouble() *LongDouble {
	return &LongDouble{c: *floatlex.New(floatlex.LongDouble)}
}

func (l *LongDouble) Feed(ch rune) bool { return l.c.Feed(ch) }
func (l *LongDouble) Valid() bool       { return l.c.Valid() }
func (l *LongDouble) Reset()            { l.c.Reset() }

// Value returns the value of the literal read so far.
func (l *LongDouble) Value() float64 { return l.c.Value() }

// Cursor returns the underlying float cursor.
func (l *LongDouble) Cursor() *floatlex.Cursor { return &l.c }

// --- Integers ---------------------------------------------------------

// Long reads literals of type long.
type Long struct {
	c intlex.Cursor
}

// NewLong creates a reader for literals of type long.
func NewLong(opts ...intlex.Option) *Long {
	return &Long{c: *intlex.New(intlex.Long, opts...)}
}

func (l *Long) Feed(ch rune) bool { return l.c.Feed(ch) }
func (l *Long) Valid() bool       { return l.c.Valid() }
func (l *Long) Reset()            { l.c.Reset() }

// Value returns the value of the literal read so far.
func (l *Long) Value() int64 { return l.c.Value() }

// Cursor returns the underlying integer cursor.
func (l *Long) Cursor() *intlex.Cursor { return &l.c }

// Int reads literals of type int.
type Int struct {
	c intlex.Cursor
}

// NewInt creates a reader for literals of type int.
func NewInt(opts ...intlex.Option) *Int {
	return &Int{c: *intlex.New(intlex.Int, opts...)}
}

func (i *Int) Feed(ch rune) bool { return i.c.Feed(ch) }
func (i *Int) Valid() bool       { return i.c.Valid() }
func (i *Int) Reset()            { i.c.Reset() }

// Value returns the value of the literal read so far, truncated to 32 bits.
func (i *Int) Value() int32 { return int32(i.c.Value()) }

// Checked returns the value of the literal read so far, or an error if it does
// not fit into 32 bits.
func (i *Int) Checked() (int32, error) {
	v, err := safecast.Conv[int32](i.c.Value())
	if err != nil {
		return v, fmt.Errorf("int literal out of range: %w", err)
	}
	return v, nil
}

// Cursor returns the underlying integer cursor.
func (i *Int) Cursor() *intlex.Cursor { return &i.c }

// Short reads literals of type short.
type Short struct {
	c intlex.Cursor
}

// NewShort creates a reader for literals of type short.
func NewShort(opts ...intlex.Option) *Short {
	return &Short{c: *intlex.New(intlex.Short, opts...)}
}

func (s *Short) Feed(ch rune) bool { return s.c.Feed(ch) }
func (s *Short) Valid() bool       { return s.c.Valid() }
func (s *Short) Reset()            { s.c.Reset() }

// Value returns the value of the literal read so far, truncated to 16 bits.
func (s *Short) Value() int16 { return int16(s.c.Value()) }

// Checked returns the value of the literal read so far, or an error if it does
// not fit into 16 bits.
func (s *Short) Checked() (int16, error) {
	v, err := safecast.Conv[int16](s.c.Value())
	if err != nil {
		return v, fmt.Errorf("short literal out of range: %w", err)
	}
	return v, nil
}

// Cursor returns the underlying integer cursor.
func (s *Short) Cursor() *intlex.Cursor { return &s.c }

var _ Reader = &Double{}
var _ Reader = &Float{}
var _ Reader = &LongDouble{}
var _ Reader = &Long{}
var _ Reader = &Int{}
var _ Reader = &Short{}
