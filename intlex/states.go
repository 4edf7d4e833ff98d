package intlex

import (
	cc "github.com/npillmayer/numlex/charclass"
	"github.com/npillmayer/numlex/fsm"
)

// State is a state of the integer lexer.
type State int8

// States of the integer lexer.
const (
	Dormant                State = iota
	Init                         // leading whitespace, sign or digit
	WaitDigitOrZero              // after sign
	WaitMoreDigitsOrSuffix       // in decimal digits
	WaitHexMarkerConfirm         // after leading zero
	WaitHexDigitsOrSuffix        // in hex digits
	WaitSuffixOrEnd              // after size suffix
	stateCount
)

func (s State) String() string {
	return table.StateName(int(s))
}

const (
	effSign fsm.Effect = iota + 1
	effDigit
	effZero      // leading zero, not accumulated
	effHexMarker // 'x' after leading zero
	effHexDigit
	effSuffix
	effZeroSuffix // suffix directly after a leading zero, bare-zero mode only
)

var table = makeTable()

func makeTable() *fsm.Table {
	T := fsm.NewTable("int", int(stateCount))
	T.State(int(Dormant), "Dormant", fsm.SpaceRejects, false)
	T.State(int(Init), "Init", fsm.SpaceLeading, false)
	T.State(int(WaitDigitOrZero), "WaitDigitOrZero", fsm.SpaceRejects, false)
	T.State(int(WaitMoreDigitsOrSuffix), "WaitMoreDigitsOrSuffix", fsm.SpaceTrailing, false)
	// whitespace after a leading zero is accepted only if the zero made the
	// literal valid, i.e. in bare-zero mode
	T.State(int(WaitHexMarkerConfirm), "WaitHexMarkerConfirm", fsm.SpaceTrailing, false)
	T.State(int(WaitHexDigitsOrSuffix), "WaitHexDigitsOrSuffix", fsm.SpaceTrailing, true)
	T.State(int(WaitSuffixOrEnd), "WaitSuffixOrEnd", fsm.SpaceTrailing, false)
	T.Accepting(int(WaitMoreDigitsOrSuffix), int(WaitHexDigitsOrSuffix), int(WaitSuffixOrEnd))
	//
	on := func(from State, c cc.Class, to State, effect fsm.Effect) {
		T.On(int(from), c, int(to), effect)
	}
	// a digit leads to WaitHexMarkerConfirm or WaitMoreDigitsOrSuffix,
	// depending on its value; see Cursor.Feed
	on(Init, cc.Sign, WaitDigitOrZero, effSign)
	on(Init, cc.Digit, WaitMoreDigitsOrSuffix, effDigit)
	//
	on(WaitDigitOrZero, cc.Digit, WaitMoreDigitsOrSuffix, effDigit)
	//
	on(WaitMoreDigitsOrSuffix, cc.Digit, WaitMoreDigitsOrSuffix, effDigit)
	on(WaitMoreDigitsOrSuffix, cc.SuffixLongDouble, WaitSuffixOrEnd, effSuffix)
	//
	on(WaitHexMarkerConfirm, cc.HexMarker, WaitHexDigitsOrSuffix, effHexMarker)
	on(WaitHexMarkerConfirm, cc.SuffixLongDouble, WaitSuffixOrEnd, effZeroSuffix)
	//
	on(WaitHexDigitsOrSuffix, cc.Digit, WaitHexDigitsOrSuffix, effHexDigit)
	on(WaitHexDigitsOrSuffix, cc.HexDigit, WaitHexDigitsOrSuffix, effHexDigit)
	on(WaitHexDigitsOrSuffix, cc.SuffixLongDouble, WaitSuffixOrEnd, effSuffix)
	return T.Freeze()
}

// Table returns the (immutable) transition table of the integer lexer.
func Table() *fsm.Table {
	return table
}

// Graph returns the state diagram of the integer lexer, starting at Init.
// It includes the leading-zero edges, which are not stored in the table.
func Graph() *fsm.Graph {
	tracer().Debugf("building state diagram for %s lexer", table.Name())
	return fsm.NewGraph(table, int(Init),
		fsm.Edge{From: int(Init), To: int(WaitHexMarkerConfirm), Class: cc.Digit, Effect: effZero},
		fsm.Edge{From: int(WaitDigitOrZero), To: int(WaitHexMarkerConfirm), Class: cc.Digit, Effect: effZero},
	)
}
