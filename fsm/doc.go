/*
Package fsm implements the transition-table plumbing shared by the numeric
literal lexers.

A Table maps (state, character class) to a pair (next state, effect), using a
sparse triplet encoding (a.k.a. COO encoding), as only a few of all possible
pairs carry a transition. Effects are opaque integer codes, interpreted by the
lexer which owns the table. Each state additionally carries a whitespace policy
and a flag telling whether characters are to be classified in hex context.

Tables are built once, then frozen. A frozen table is immutable and may be
shared between any number of goroutines. All per-parse data lives in cursors
owned by the lexer packages; tables never hold cursor data.

	T := fsm.NewTable("demo", 3)
	T.State(1, "Init", fsm.SpaceLeading, false)
	T.State(2, "Digits", fsm.SpaceTrailing, false)
	T.On(1, charclass.Digit, 2, addDigit)
	T.On(2, charclass.Digit, 2, addDigit)
	T.Freeze()
	d := T.Decide(1, '7', false, 0)    // d.Action == fsm.Move, d.Next == 2

Graph is an introspection view of a table: the states reachable from a start
state and the edges between them. Graphs may be exported to GraphViz.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'numlex.fsm'.
func tracer() tracing.Trace {
	return tracing.Select("numlex.fsm")
}
