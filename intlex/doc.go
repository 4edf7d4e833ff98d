/*
Package intlex reads integer literals, one character at a time.

Literals are decimal or hexadecimal, optionally signed, and may carry a
size suffix 'l' or 'L':

	literal  ::= sign? ( [1-9] [0-9]* | '0' ('x'|'X') hexdigit+ ) suffix?

Whitespace is tolerated before a literal and after a complete one.

A leading zero is the start of a hex prefix. By default a lone "0" therefore
is not a valid literal. Clients who want "0" (and "0L") to be read as zero may
create cursors with option AcceptBareZero(true). The default of this option is
taken from configuration key "numlex.bare-zero".

Values are accumulated as int64 without overflow checks; literals out of range
silently wrap around.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intlex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numlex.intlex'.
func tracer() tracing.Trace {
	return tracing.Select("numlex.intlex")
}
