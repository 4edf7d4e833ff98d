/*
Package charclass maps input characters of numeric literals to semantic classes.

Classification is context sensitive: the letters 'e', 'f' (exponent marker and float
suffix) double as hexadecimal digits. Callers therefore pass a hex-context flag,
which is a property of the lexer state asking for classification; it is never
inferred from earlier input.

	charclass.Classify('e', false)  // Exponent
	charclass.Classify('e', true)   // HexDigit

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charclass

// Class is a category code for characters of numeric literals.
type Class int8

// Character classes. None is the zero value and is assigned to every character
// without a meaning for numeric literals, including whitespace.
const (
	None             Class = iota
	Sign                   // + -
	Digit                  // 0 … 9
	Point                  // .
	HexMarker              // x X
	Exponent               // e E, outside of hex context
	HexDigit               // a … f, A … F, inside of hex context
	SuffixFloat            // f F, outside of hex context
	SuffixLongDouble       // l L
	SuffixUnsigned         // u U
)

// Count is the number of character classes, including None.
const Count = int(SuffixUnsigned) + 1

var classNames = [Count]string{
	"none", "sign", "digit", "point", "hex-marker", "exponent", "hex-digit",
	"suffix-f", "suffix-l", "suffix-u",
}

func (c Class) String() string {
	if c < 0 || int(c) >= Count {
		return "?"
	}
	return classNames[c]
}

// Classify returns the character class of ch. hexContext has to be set by
// lexer states which expect hexadecimal digits. Classify is total: characters
// without a meaning are classified as None.
func Classify(ch rune, hexContext bool) Class {
	switch {
	case ch >= '0' && ch <= '9':
		return Digit
	case ch == '.':
		return Point
	case ch == '+' || ch == '-':
		return Sign
	case (ch == 'e' || ch == 'E') && !hexContext:
		return Exponent
	case (ch == 'f' || ch == 'F') && !hexContext:
		return SuffixFloat
	case ch == 'x' || ch == 'X':
		return HexMarker
	case ch == 'l' || ch == 'L':
		return SuffixLongDouble
	case ch == 'u' || ch == 'U':
		return SuffixUnsigned
	case hexContext && (ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'):
		return HexDigit
	}
	return None
}

// IsSpace is true for the whitespace characters tolerated before and after
// a literal: blank, tab, newline, carriage return and vertical tab.
func IsSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	}
	return false
}

// DigitValue returns the value of a decimal digit, or 0 for anything else.
func DigitValue(ch rune) int {
	if ch >= '0' && ch <= '9' {
		return int(ch - '0')
	}
	return 0
}

// HexDigitValue returns the value of a hexadecimal digit 0…9, a…f, A…F,
// or 0 for anything else.
func HexDigitValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 0
}
