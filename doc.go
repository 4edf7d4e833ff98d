/*
Package numlex reads numeric literals incrementally, one character at a time.

Clients feed characters from any source, without buffering a whole token,
and may ask at any time whether the characters read so far form a complete
literal and what its value is. Two literal families are supported:
floating point literals (with integer part, fractional part, exponent and size
suffix) and integer literals (decimal or hexadecimal, with size suffix).

Package structure is as follows:

■ charclass: Classification of input characters, dependent on a hex context.

■ fsm: Sparse transition tables and state diagrams, shared by the lexers.

■ floatlex: The float lexer, for kinds double, float and long double.

■ intlex: The integer lexer, for kinds long, int and short.

■ scanner: A tokenizer for numeric literals in a stream of runes, and an
adapter for lexmachine.

Commands numrepl (interactive exploration of the lexers) and numscan (batch
scanning of files) live under cmd/.

The base package contains typed readers for each numeric kind and the token
type used by the tokenizers.

	r := numlex.NewFloat()
	numlex.FeedString(r, "3.14f")
	if r.Valid() {
		fmt.Println(r.Value())   // 3.14 as float32
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numlex
