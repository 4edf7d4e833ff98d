package intlex

import (
	"math"
	"sync"
	"testing"

	"github.com/cnf/structhash"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func feed(c *Cursor, s string) int {
	for i, ch := range s {
		if !c.Feed(ch) {
			return i
		}
	}
	return -1
}

func TestHexAndDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	for i, test := range []struct {
		input    string
		valid    bool
		value    int64
		rejectAt int
	}{
		{"0", false, 0, -1},
		{"0x", false, 0, -1},
		{"0x1c", true, 28, -1},
		{"0X5A3B6E", true, 5921134, -1},
		{"0xff", true, 255, -1},
		{"0xFFL", true, 255, -1},
		{"0xef", true, 239, -1},
		{"-0x10", true, -16, -1},
		{"536", true, 536, -1},
		{"536L", true, 536, -1},
		{"536l  ", true, 536, -1},
		{"-42", true, -42, -1},
		{"+7", true, 7, -1},
		{"  12 ", true, 12, -1},
		{"05", false, 0, 1},
		{"0L", false, 0, 1},
		{"0 ", false, 0, 1},
		{"0xg", false, 0, 2},
		{"0x1.", false, 0, 3},
		{"12.5", false, 0, 2},
		{"1e3", false, 0, 1},
		{"12u", false, 0, 2},
		{"12L3", false, 0, 3},
		{"1 2", false, 0, 2},
		{"- 1", false, 0, 1},
		{"--1", false, 0, 1},
	} {
		c := New(Long, AcceptBareZero(false))
		at := feed(c, test.input)
		if at != test.rejectAt {
			t.Errorf("test %d: expected %q to be rejected at %d, was at %d", i, test.input, test.rejectAt, at)
		}
		if c.Valid() != test.valid {
			t.Errorf("test %d: expected validity of %q to be %v", i, test.input, test.valid)
		} else if test.valid && c.Value() != test.value {
			t.Errorf("test %d: expected %q to have value %d, has %d", i, test.input, test.value, c.Value())
		}
	}
}

func TestValidAfterEveryDigit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	c := New(Int)
	var want int64
	for _, ch := range "536" {
		if !c.Feed(ch) {
			t.Fatalf("expected digit %q to be accepted", ch)
		}
		want = want*10 + int64(ch-'0')
		if !c.Valid() || c.Value() != want {
			t.Errorf("expected valid value %d after %q, have %v/%d", want, ch, c.Valid(), c.Value())
		}
	}
	if !c.Feed('L') || !c.Valid() || c.Value() != 536 || c.State() != WaitSuffixOrEnd {
		t.Errorf("expected 536L to be valid with value 536")
	}
	if c.IntDigits() != 3 || c.HexDigits() != 0 {
		t.Errorf("expected 3 decimal digits, have %d/%d", c.IntDigits(), c.HexDigits())
	}
}

func TestBareZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	for i, test := range []struct {
		input    string
		valid    bool
		rejectAt int
	}{
		{"0", true, -1},
		{"-0", true, -1},
		{"0L", true, -1},
		{"0 ", true, -1},
		{"0L  ", true, -1},
		{"0x", false, -1},
		{"0x0", true, -1},
		{"05", false, 1},
		{"0 x", false, 2},
	} {
		c := New(Short, AcceptBareZero(true))
		at := feed(c, test.input)
		if at != test.rejectAt || c.Valid() != test.valid {
			t.Errorf("test %d: expected %q to be valid=%v/rejected at %d, is %v/%d", i, test.input,
				test.valid, test.rejectAt, c.Valid(), at)
		}
		if c.Valid() && c.Value() != 0 {
			t.Errorf("test %d: expected value 0, have %d", i, c.Value())
		}
	}
}

func TestBareZeroConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"numlex.bare-zero": true})
	defer gconf.Initialize(testconfig.Conf{})
	//
	c := New(Long)
	if !c.BareZero() {
		t.Fatalf("expected bare-zero mode to be taken from configuration")
	}
	feed(c, "0")
	if !c.Valid() {
		t.Errorf("expected bare zero to be valid")
	}
	c.Reset()
	if !c.BareZero() {
		t.Errorf("expected reset to retain bare-zero mode")
	}
	if New(Long, AcceptBareZero(false)).BareZero() {
		t.Errorf("expected option to override configuration")
	}
}

func TestIdempotentReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	for _, bz := range []bool{false, true} {
		initial := New(Int, AcceptBareZero(bz)).Snapshot()
		for _, input := range []string{"0x1g", "-12.", "536L7", "  +x", "0x.", "12 3"} {
			c := New(Int, AcceptBareZero(bz))
			if feed(c, input) < 0 {
				t.Fatalf("expected %q to be rejected", input)
			}
			if diff := cmp.Diff(initial, c.Snapshot()); diff != "" {
				t.Errorf("cursor not reset after %q (-want +got):\n%s", input, diff)
			}
		}
	}
}

func TestTerminalState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	for _, next := range "0123456789abcdefLlxX+-." {
		c := New(Long)
		feed(c, "0x1fL")
		if c.State() != WaitSuffixOrEnd {
			t.Fatalf("expected cursor in terminal state, is in %s", c.State())
		}
		if c.Feed(next) {
			t.Errorf("expected terminal state to reject %q", next)
		}
	}
	c := New(Long)
	feed(c, "0x1fL \t")
	if !c.Valid() || c.Value() != 31 || c.TrailingSpaces() != 2 {
		t.Errorf("expected 0x1fL with 2 trailing spaces to be valid, is %v", c)
	}
}

func TestWraparound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	c := New(Long)
	feed(c, "9223372036854775807")
	if !c.Valid() || c.Value() != math.MaxInt64 {
		t.Errorf("expected max int64, have %d", c.Value())
	}
	c.Feed('0')
	var max int64 = math.MaxInt64
	if !c.Valid() || c.Value() != max*10 {
		t.Errorf("expected silent wraparound, have %d", c.Value())
	}
	c.Reset()
	feed(c, "0xFFFFFFFFFFFFFFFF")
	if !c.Valid() || c.Value() != -1 {
		t.Errorf("expected 64 bit hex literal to wrap to -1, have %d", c.Value())
	}
}

func TestConcurrentCursors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	before, err := structhash.Hash(Table().Fingerprint(), 1)
	if err != nil {
		t.Fatal(err)
	}
	inputs := []string{"0x1c", "536L", "-42", "0X5A3B6E", " 7 "}
	values := []int64{28, 536, -42, 5921134, 7}
	var wg sync.WaitGroup
	failed := make(chan string, 16)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			c := New(Long, AcceptBareZero(g%2 == 0))
			for n := 0; n < 250; n++ {
				i := (g + n) % len(inputs)
				c.Reset()
				feed(c, inputs[i])
				if !c.Valid() || c.Value() != values[i] {
					failed <- inputs[i]
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(failed)
	for input := range failed {
		t.Errorf("concurrent parse of %q failed", input)
	}
	after, err := structhash.Hash(Table().Fingerprint(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("transition table changed during concurrent use")
	}
}

func TestGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.intlex")
	defer teardown()
	//
	G := Graph()
	if n := len(G.States()); n != int(stateCount)-1 {
		t.Errorf("expected %d reachable states, have %d", stateCount-1, n)
	}
	if n := len(G.EdgesFrom(int(Init))); n != 4 { // ws, sign, digit, zero
		t.Errorf("expected 4 edges from Init, have %d", n)
	}
}
