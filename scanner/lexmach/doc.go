/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
numeric literals.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The quickest way is NumberLexer, which registers regular expressions for float
and integer literals. Every match is run through the literal lexers of this
module, which compute its value and decide on suffixes the regular expressions
cannot judge (e.g., an 'f' suffix for a double).

	LM, err := lexmach.NewNumberLexer(lexmach.FloatKind(floatlex.Float))
	if err != nil {
		// do error handling
	}
	scan, err := LM.Scanner("12 0x1c 3.14f")
	if err != nil {
		// do error handling
	}
	for token := scan.NextToken(); token.TokType() != numlex.EOF; token = scan.NextToken() {
		…
	}

Clients who need numeric literals embedded in a larger language initialize
lexmachine on their own, using MakeNumberToken as the action for numeric
literals:

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip            is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken       is a pre-defined action which wraps a scanned match into a
		//                         numlex.Token
		// lexmach.MakeNumberToken wraps a numeric literal, together with its value
	}
	LM, err := lexmach.NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
