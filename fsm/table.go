package fsm

import (
	"fmt"
	"sort"

	"github.com/npillmayer/numlex/charclass"
)

// Effect is a lexer-specific code for the side effect of a transition.
// Package fsm does not interpret effects.
type Effect int32

// NoEffect is a transition which just changes state.
const NoEffect Effect = 0

// SpacePolicy determines how a state treats whitespace input.
type SpacePolicy int8

// Whitespace policies. With SpaceRejects, whitespace is classified like every
// other character (i.e., as charclass.None).
const (
	SpaceRejects  SpacePolicy = iota
	SpaceLeading              // accept and ignore whitespace
	SpaceTrailing             // accept whitespace for valid literals only, count it
)

// Action is the outcome of consulting a table for an input character.
type Action int8

// Possible actions. Reject means the cursor has to be reset.
const (
	Reject       Action = iota
	Skip                // whitespace accepted, nothing else to do
	SkipTrailing        // whitespace accepted, has to be counted as trailing space
	Move                // apply effect and go to next state
)

func (a Action) String() string {
	switch a {
	case Skip:
		return "skip"
	case SkipTrailing:
		return "skip-trailing"
	case Move:
		return "move"
	}
	return "reject"
}

// Decision is the result of Table.Decide for a single input character.
type Decision struct {
	Action Action
	Class  charclass.Class // class of the input character, if classified
	Next   int             // next state, if Action is Move
	Effect Effect          // effect to apply, if Action is Move
}

// Table is a sparse transition table. Rows are states, columns are character
// classes. Create one with NewTable, then define states and transitions and
// freeze it.
type Table struct {
	name    string
	states  []stateInfo
	entries []triplet // sorted by (row, col)
	frozen  bool
}

type stateInfo struct {
	name      string
	spaces    SpacePolicy
	hex       bool // classify in hex context
	accepting bool // a literal may be valid in this state
}

// triplet values to store
type triplet struct {
	row, col int
	value    transition
}

// we store a target state and an effect in one position
type transition struct {
	next   int32
	effect Effect
}

func (tr transition) String() string {
	return fmt.Sprintf("[→%d,%d]", tr.next, tr.effect)
}

// NewTable creates an empty table with room for n states, numbered 0…n-1.
func NewTable(name string, n int) *Table {
	return &Table{
		name:    name,
		states:  make([]stateInfo, n),
		entries: []triplet{},
	}
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// StateCount returns the number of states, i.e. the row count.
func (t *Table) StateCount() int {
	return len(t.states)
}

// TransitionCount returns the number of transitions stored in the table.
func (t *Table) TransitionCount() int {
	return len(t.entries)
}

// State defines name, whitespace policy and classification context of state s.
func (t *Table) State(s int, name string, spaces SpacePolicy, hexContext bool) *Table {
	t.mustBeMutable()
	t.checkState(s)
	t.states[s].name = name
	t.states[s].spaces = spaces
	t.states[s].hex = hexContext
	return t
}

// Accepting marks states in which a literal may be valid. This is informational
// only (it is used for graph output); validity is tracked by cursors.
func (t *Table) Accepting(states ...int) *Table {
	t.mustBeMutable()
	for _, s := range states {
		t.checkState(s)
		t.states[s].accepting = true
	}
	return t
}

// On sets the transition for state s and character class cc.
// An existing transition is overwritten.
func (t *Table) On(s int, cc charclass.Class, next int, effect Effect) *Table {
	t.mustBeMutable()
	t.checkState(s)
	t.checkState(next)
	if cc == charclass.None {
		panic(fmt.Sprintf("fsm.Table(%s): no transitions for class none", t.name))
	}
	tr := transition{next: int32(next), effect: effect}
	at := t.search(s, int(cc))
	if at < len(t.entries) && t.entries[at].storedAt(s, int(cc)) {
		t.entries[at].value = tr
		return t
	}
	tnew := triplet{row: s, col: int(cc), value: tr}
	// the following 3 lines have to work for at being the right edge of entries or not
	t.entries = append(t.entries, tnew)
	copy(t.entries[at+1:], t.entries[at:])
	t.entries[at] = tnew
	return t
}

// Freeze makes the table immutable. Further calls to State, Accepting or On
// will panic.
func (t *Table) Freeze() *Table {
	t.frozen = true
	tracer().Debugf("table %s frozen with %d states and %d transitions",
		t.name, len(t.states), len(t.entries))
	return t
}

// Frozen is true if the table has been frozen.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Lookup returns the transition for (s, cc), if any.
func (t *Table) Lookup(s int, cc charclass.Class) (next int, effect Effect, ok bool) {
	at := t.search(s, int(cc))
	if at < len(t.entries) && t.entries[at].storedAt(s, int(cc)) {
		tr := t.entries[at].value
		return int(tr.next), tr.effect, true
	}
	return 0, NoEffect, false
}

// Decide determines what to do with input character ch in state s, given the
// validity of the literal read so far and the number of trailing spaces seen.
//
// Whitespace is handled according to the state's policy. States with policy
// SpaceTrailing reject every non-space character once a trailing space has been
// seen. Otherwise ch is classified (in hex context, if the state asks for it) and
// the transition for its class is looked up. A missing transition is a rejection.
func (t *Table) Decide(s int, ch rune, valid bool, trailing int) Decision {
	st := t.states[s]
	if charclass.IsSpace(ch) {
		switch st.spaces {
		case SpaceLeading:
			return Decision{Action: Skip}
		case SpaceTrailing:
			if valid {
				return Decision{Action: SkipTrailing}
			}
		}
	}
	if st.spaces == SpaceTrailing && trailing > 0 {
		return Decision{Action: Reject}
	}
	cc := charclass.Classify(ch, st.hex)
	if cc == charclass.None {
		return Decision{Action: Reject, Class: cc}
	}
	next, effect, ok := t.Lookup(s, cc)
	if !ok {
		return Decision{Action: Reject, Class: cc}
	}
	return Decision{Action: Move, Class: cc, Next: next, Effect: effect}
}

// StateName returns the name of state s.
func (t *Table) StateName(s int) string {
	if s < 0 || s >= len(t.states) {
		return fmt.Sprintf("state-%d", s)
	}
	if t.states[s].name == "" {
		return fmt.Sprintf("state-%d", s)
	}
	return t.states[s].name
}

// Spaces returns the whitespace policy of state s.
func (t *Table) Spaces(s int) SpacePolicy {
	return t.states[s].spaces
}

// HexContext is true if state s classifies input in hex context.
func (t *Table) HexContext(s int) bool {
	return t.states[s].hex
}

// IsAccepting is true if s has been marked as accepting.
func (t *Table) IsAccepting(s int) bool {
	return t.states[s].accepting
}

// Each calls f for every transition, ordered by state and character class.
func (t *Table) Each(f func(from int, cc charclass.Class, to int, effect Effect)) {
	for _, e := range t.entries {
		f(e.row, charclass.Class(e.col), int(e.value.next), e.value.effect)
	}
}

// Fingerprint is a flat, exported representation of a table's content. It is
// intended for comparing and hashing tables.
type Fingerprint struct {
	Name        string
	States      []string
	Transitions []string
}

// Fingerprint returns a representation of t suitable for comparison.
func (t *Table) Fingerprint() Fingerprint {
	fp := Fingerprint{Name: t.name}
	for i, st := range t.states {
		fp.States = append(fp.States, fmt.Sprintf("%d:%s/%d/%v/%v", i, st.name, st.spaces, st.hex, st.accepting))
	}
	for _, e := range t.entries {
		fp.Transitions = append(fp.Transitions, fmt.Sprintf("%d,%d%s", e.row, e.col, e.value))
	}
	return fp
}

// search returns the index of (i,j) or of the position where (i,j) would have
// to be inserted.
func (t *Table) search(i, j int) int {
	return sort.Search(len(t.entries), func(k int) bool {
		return !t.entries[k].storedLeftOf(i, j)
	})
}

func (t *Table) mustBeMutable() {
	if t.frozen {
		panic(fmt.Sprintf("fsm.Table(%s) is frozen", t.name))
	}
}

func (t *Table) checkState(s int) {
	if s < 0 || s >= len(t.states) {
		panic(fmt.Sprintf("fsm.Table(%s): state %d out of range", t.name, s))
	}
}

func (tr *triplet) storedLeftOf(i, j int) bool {
	return tr.row < i || tr.row == i && tr.col < j
}

func (tr *triplet) storedAt(i, j int) bool {
	return tr.row == i && tr.col == j
}
