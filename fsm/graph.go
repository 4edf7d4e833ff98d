package fsm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/numlex/charclass"
)

// Edge is a transition between two states of a Graph. Whitespace self-loops
// are edges with Space set and Class None.
type Edge struct {
	From, To int
	Class    charclass.Class
	Effect   Effect
	Space    bool
}

func (e Edge) label() string {
	if e.Space {
		return "ws"
	}
	return e.Class.String()
}

// Graph is the state diagram of a table, restricted to the states reachable
// from a start state.
type Graph struct {
	table  *Table
	states *treeset.Set    // all reachable states
	edges  *arraylist.List // all the edges between states
	Start  int             // start state
}

// We need this for the set of states. It sorts states by ID.
func stateComparator(s1, s2 interface{}) int {
	return utils.IntComparator(s1.(int), s2.(int))
}

// NewGraph constructs the state diagram of t, starting at state start.
// Lexers which take decisions outside of the table may provide additional
// edges with extra.
func NewGraph(t *Table, start int, extra ...Edge) *Graph {
	g := &Graph{
		table:  t,
		states: treeset.NewWith(stateComparator),
		edges:  arraylist.New(),
		Start:  start,
	}
	g.states.Add(start)
	S := treeset.NewWith(stateComparator) // work list
	S.Add(start)
	for S.Size() > 0 {
		s := S.Values()[0].(int)
		S.Remove(s)
		if t.Spaces(s) != SpaceRejects {
			g.edges.Add(Edge{From: s, To: s, Space: true})
		}
		for cc := charclass.Class(1); int(cc) < charclass.Count; cc++ {
			next, effect, ok := t.Lookup(s, cc)
			if !ok {
				continue
			}
			g.add(Edge{From: s, To: next, Class: cc, Effect: effect}, S)
		}
		for _, e := range extra {
			if e.From == s {
				g.add(e, S)
			}
		}
	}
	return g
}

func (g *Graph) add(e Edge, worklist *treeset.Set) {
	g.edges.Add(e)
	if !g.states.Contains(e.To) {
		tracer().Debugf("%s: %s -%s-> %s", g.table.Name(), g.table.StateName(e.From),
			e.label(), g.table.StateName(e.To))
		g.states.Add(e.To)
		worklist.Add(e.To)
	}
}

// Table returns the underlying table.
func (g *Graph) Table() *Table {
	return g.table
}

// States returns all reachable states, ordered by ID.
func (g *Graph) States() []int {
	r := make([]int, 0, g.states.Size())
	for _, x := range g.states.Values() {
		r = append(r, x.(int))
	}
	return r
}

// Edges returns all edges, in order of discovery.
func (g *Graph) Edges() []Edge {
	r := make([]Edge, 0, g.edges.Size())
	it := g.edges.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Edge))
	}
	return r
}

// EdgesFrom returns all edges leaving state s.
func (g *Graph) EdgesFrom(s int) []Edge {
	r := make([]Edge, 0, 4)
	it := g.edges.Iterator()
	for it.Next() {
		e := it.Value().(Edge)
		if e.From == s {
			r = append(r, e)
		}
	}
	return r
}

// WriteGraphViz exports the graph in GraphViz Dot format.
func (g *Graph) WriteGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `digraph %q {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`, g.table.Name())
	for _, s := range g.States() {
		fmt.Fprintf(bw, "s%02d [fillcolor=%s label=\"{%02d | %s}\"]\n",
			s, g.nodecolor(s), s, g.table.StateName(s))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "s%02d -> s%02d [label=\"%s\"]\n", e.From, e.To, e.label())
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func (g *Graph) nodecolor(s int) string {
	if g.table.IsAccepting(s) {
		return "lightgray"
	}
	return "white"
}
