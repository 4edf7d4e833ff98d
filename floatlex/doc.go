/*
Package floatlex reads floating point literals, one character at a time.

A Cursor is fed characters one by one. Each call to Feed tells whether the
character has been accepted. At any time clients may ask if the characters read
so far form a complete literal (Valid) and for its value (Value).

	c := floatlex.New(floatlex.Float)
	for _, ch := range "-3.14e+2f" {
		if !c.Feed(ch) {
			break
		}
	}
	if c.Valid() {
		fmt.Println(c.Value())   // -314
	}

Accepted grammar (whitespace before and, for complete literals, after the literal
is tolerated):

	literal  ::= sign? ( digits '.' | digits? '.' digits exp? suffix? | digits exp suffix? )
	exp      ::= ('e'|'E') sign? digits
	suffix   ::= 'f'|'F'   (kind Float only)
	           | 'l'|'L'   (kind LongDouble only)

A rejected character resets the cursor. The rejected character is not
re-considered: it is lost for the current cursor. Clients wanting to start a
new literal with it have to feed it again.

Cursors are plain values without references to shared mutable data; the
transition table is immutable and shared. Different goroutines may therefore
use different cursors without synchronization.

Value is computed as sign · mantissa · 10^exponent, with the power of ten computed
by repeated multiplication. For simple literals this is exact; in general it
is not IEEE-exact like strconv.ParseFloat.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package floatlex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numlex.floatlex'.
func tracer() tracing.Trace {
	return tracing.Select("numlex.floatlex")
}
