/*
Command numrepl is an interactive command line tool for numeric literals.

Every input line is fed to a literal reader, one character at a time, and
numrepl shows how the reader's state machine moves along. Lines starting with
a colon are commands:

	:kind <k>        select reader kind: double, float, longdouble, long, int, short
	:scan <text>     split text into literal tokens
	:lex <text>      split text into literal tokens, using lexmachine
	:dot float|int   print the state diagram of a lexer in GraphViz format
	:help            list commands
	:quit            leave numrepl (as does <ctrl>D)

Flags:

	-trace <level>   trace level [Debug|Info|Error]
	-config <file>   TOML configuration file
	-init <file>     file with input lines to process before going interactive

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numlex.repl'
func tracer() tracing.Trace {
	return tracing.Select("numlex.repl")
}
