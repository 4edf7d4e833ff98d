package numlex

import (
	"testing"

	"github.com/npillmayer/numlex/intlex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatReaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex")
	defer teardown()
	//
	d := NewDouble()
	assert.Equal(t, 4, FeedString(d, "3.14f"), "double reader should stop at suffix f")
	assert.False(t, d.Valid())
	//
	d.Reset()
	assert.Equal(t, 6, FeedString(d, "536e+2"))
	require.True(t, d.Valid())
	assert.Equal(t, 53600.0, d.Value())
	//
	f := NewFloat()
	assert.Equal(t, 5, FeedString(f, "3.14f"))
	require.True(t, f.Valid())
	assert.InDelta(t, float32(3.14), f.Value(), 1e-6)
	//
	l := NewLongDouble()
	assert.Equal(t, 4, FeedString(l, "2.5L"))
	require.True(t, l.Valid())
	assert.Equal(t, 2.5, l.Value())
	assert.Equal(t, "WaitSuffixOrEnd", l.Cursor().State().String())
}

func TestIntReaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex")
	defer teardown()
	//
	lg := NewLong()
	FeedString(lg, "0X5A3B6E")
	require.True(t, lg.Valid())
	assert.Equal(t, int64(5921134), lg.Value())
	//
	i := NewInt()
	FeedString(i, "536L")
	require.True(t, i.Valid())
	assert.Equal(t, int32(536), i.Value())
	v, err := i.Checked()
	assert.NoError(t, err)
	assert.Equal(t, int32(536), v)
	//
	i.Reset()
	FeedString(i, "0x100000001")
	require.True(t, i.Valid())
	assert.Equal(t, int32(1), i.Value(), "int reader should truncate to 32 bits")
	_, err = i.Checked()
	assert.Error(t, err)
	//
	s := NewShort()
	FeedString(s, "-32768")
	require.True(t, s.Valid())
	sv, err := s.Checked()
	assert.NoError(t, err)
	assert.Equal(t, int16(-32768), sv)
	s.Reset()
	FeedString(s, "70000")
	assert.Equal(t, int16(70000-65536), s.Value())
	_, err = s.Checked()
	assert.Error(t, err)
}

func TestBareZeroReaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex")
	defer teardown()
	//
	strict, lenient := NewLong(intlex.AcceptBareZero(false)), NewLong(intlex.AcceptBareZero(true))
	FeedString(strict, "0")
	FeedString(lenient, "0")
	assert.False(t, strict.Valid())
	assert.True(t, lenient.Valid())
	assert.Equal(t, int64(0), lenient.Value())
}

func TestReaderInterface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex")
	defer teardown()
	//
	// floats reject a space directly after integer digits, ints take it as trailing space
	for _, test := range []struct {
		r Reader
		n int
	}{
		{NewDouble(), 2}, {NewFloat(), 2}, {NewLongDouble(), 2},
		{NewLong(), 3}, {NewInt(), 3}, {NewShort(), 3},
	} {
		assert.Equal(t, test.n, FeedString(test.r, "12 x"), "%T", test.r)
		assert.False(t, test.r.Valid(), "%T should be reset after rejection", test.r)
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	assert.Equal(t, uint64(4), s.Len())
	assert.Equal(t, Span{1, 7}, s.Extend(Span{1, 5}))
	assert.True(t, Span{}.IsNull())
	assert.Equal(t, "(3…7)", s.String())
}
