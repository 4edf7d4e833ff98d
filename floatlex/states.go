package floatlex

import (
	cc "github.com/npillmayer/numlex/charclass"
	"github.com/npillmayer/numlex/fsm"
)

// State is a state of the float lexer.
type State int8

// States of the float lexer. Dormant is the state of a fresh or reset cursor;
// the next character fed will move it to Init.
const (
	Dormant               State = iota
	Init                        // leading whitespace, sign, digit or point
	WaitIntOrPoint              // after sign
	WaitIntOrPointOrExp         // in integer part
	WaitFracDigit               // after point
	WaitFracOrExpOrSuffix       // in fractional part
	WaitExpSignOrDigit          // after exponent marker
	WaitExpDigit                // in exponent
	WaitSuffixOrEnd             // after size suffix
	stateCount
)

func (s State) String() string {
	return table.StateName(int(s))
}

// Effects of transitions on a cursor.
const (
	effSign fsm.Effect = iota + 1
	effIntDigit
	effPoint
	effFracDigit
	effExpMarker
	effExpSign
	effExpDigit
	effSuffixFloat      // accepted for kind Float only
	effSuffixLongDouble // accepted for kind LongDouble only
)

var table = makeTable()

func makeTable() *fsm.Table {
	T := fsm.NewTable("float", int(stateCount))
	T.State(int(Dormant), "Dormant", fsm.SpaceRejects, false)
	T.State(int(Init), "Init", fsm.SpaceLeading, false)
	T.State(int(WaitIntOrPoint), "WaitIntOrPoint", fsm.SpaceRejects, false)
	T.State(int(WaitIntOrPointOrExp), "WaitIntOrPointOrExp", fsm.SpaceRejects, false)
	T.State(int(WaitFracDigit), "WaitFracDigit", fsm.SpaceRejects, false)
	T.State(int(WaitFracOrExpOrSuffix), "WaitFracOrExpOrSuffix", fsm.SpaceTrailing, false)
	T.State(int(WaitExpSignOrDigit), "WaitExpSignOrDigit", fsm.SpaceRejects, false)
	T.State(int(WaitExpDigit), "WaitExpDigit", fsm.SpaceTrailing, false)
	T.State(int(WaitSuffixOrEnd), "WaitSuffixOrEnd", fsm.SpaceTrailing, false)
	T.Accepting(int(WaitFracDigit), int(WaitFracOrExpOrSuffix), int(WaitExpDigit), int(WaitSuffixOrEnd))
	//
	on := func(from State, c cc.Class, to State, effect fsm.Effect) {
		T.On(int(from), c, int(to), effect)
	}
	on(Init, cc.Sign, WaitIntOrPoint, effSign)
	on(Init, cc.Digit, WaitIntOrPointOrExp, effIntDigit)
	on(Init, cc.Point, WaitFracDigit, effPoint)
	//
	on(WaitIntOrPoint, cc.Digit, WaitIntOrPointOrExp, effIntDigit)
	on(WaitIntOrPoint, cc.Point, WaitFracDigit, effPoint)
	//
	on(WaitIntOrPointOrExp, cc.Digit, WaitIntOrPointOrExp, effIntDigit)
	on(WaitIntOrPointOrExp, cc.Point, WaitFracDigit, effPoint)
	on(WaitIntOrPointOrExp, cc.Exponent, WaitExpSignOrDigit, effExpMarker)
	//
	on(WaitFracDigit, cc.Digit, WaitFracOrExpOrSuffix, effFracDigit)
	//
	on(WaitFracOrExpOrSuffix, cc.Digit, WaitFracOrExpOrSuffix, effFracDigit)
	on(WaitFracOrExpOrSuffix, cc.Exponent, WaitExpSignOrDigit, effExpMarker)
	on(WaitFracOrExpOrSuffix, cc.SuffixFloat, WaitSuffixOrEnd, effSuffixFloat)
	on(WaitFracOrExpOrSuffix, cc.SuffixLongDouble, WaitSuffixOrEnd, effSuffixLongDouble)
	//
	on(WaitExpSignOrDigit, cc.Sign, WaitExpDigit, effExpSign)
	on(WaitExpSignOrDigit, cc.Digit, WaitExpDigit, effExpDigit)
	//
	on(WaitExpDigit, cc.Digit, WaitExpDigit, effExpDigit)
	on(WaitExpDigit, cc.SuffixFloat, WaitSuffixOrEnd, effSuffixFloat)
	on(WaitExpDigit, cc.SuffixLongDouble, WaitSuffixOrEnd, effSuffixLongDouble)
	return T.Freeze()
}

// Table returns the (immutable) transition table of the float lexer.
func Table() *fsm.Table {
	return table
}

// Graph returns the state diagram of the float lexer, starting at Init.
func Graph() *fsm.Graph {
	tracer().Debugf("building state diagram for %s lexer", table.Name())
	return fsm.NewGraph(table, int(Init))
}
