package scanner

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/numlex"
)

// --- Rune source -----------------------------------------------------------

// runeSource reads runes with one rune of lookahead. Matched runes are
// collected as the current lexeme.
type runeSource struct {
	isEof      bool
	hasNext    bool
	next       rune
	nextSize   int    // size of next in bytes
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

func newRuneSource(r io.RuneReader) *runeSource {
	return &runeSource{
		reader: r,
	}
}

// OutputString returns the runes matched since the last call to ResetOutput.
func (rs *runeSource) OutputString() string {
	return rs.writer.String()
}

// ResetOutput starts a new lexeme at the current position.
func (rs *runeSource) ResetOutput() {
	if rs == nil {
		return
	}
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the byte positions of the current lexeme.
func (rs *runeSource) Span() numlex.Span {
	return numlex.Span{rs.start, rs.end}
}

// Pos returns the byte position of the lookahead rune.
func (rs *runeSource) Pos() uint64 {
	return rs.end
}

func (rs *runeSource) lookahead() (r rune, err error) {
	if rs == nil || rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	var sz int
	r, sz, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return utf8.RuneError, fmt.Errorf("scanner cannot read input (%w)", err)
	}
	rs.next, rs.nextSize, rs.hasNext = r, sz, true
	return r, nil
}

func (rs *runeSource) match(r rune) {
	if rs == nil {
		return
	}
	if !rs.hasNext || r != rs.next {
		panic(fmt.Sprintf("scanner: match of %#U does not correspond to lookahead", r))
	}
	rs.writer.WriteRune(r)
	rs.end += uint64(rs.nextSize)
	rs.hasNext = false
}
