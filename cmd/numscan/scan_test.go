package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/numlex/floatlex"
	"github.com/npillmayer/numlex/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func writeInputs(t *testing.T, contents ...string) []string {
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, "input"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(paths[i], []byte(c), 0o644))
	}
	return paths
}

func defaultOptions() scanOptions {
	return scanOptions{mode: scanner.ScanAuto, engine: "fsm", jobs: 2}
}

func TestScanFilesInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.scan")
	defer teardown()
	//
	paths := writeInputs(t, "1 2 3", "4.5\n6.25", "0x10 bad", "", "-7L")
	results, err := scanFiles(context.Background(), paths, defaultOptions())
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	counts := []int{3, 2, 4, 0, 1}
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.Len(t, r.Tokens, counts[i], "token count of %s", filepath.Base(r.Path))
	}
	assert.Equal(t, int64(3), results[0].Tokens[2].Value)
	assert.Equal(t, 6.25, results[1].Tokens[1].Value)
	assert.Equal(t, "invalid", results[2].Tokens[1].Type)
	assert.Len(t, results[2].Errors, 3, "each of 'b', 'a', 'd' is an invalid literal")
	assert.Equal(t, int64(-7), results[4].Tokens[0].Value)
}

func TestScanEngines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.scan")
	defer teardown()
	//
	paths := writeInputs(t, "12 0x1c 3.5e2 .25 1.5f")
	for _, engine := range []string{"fsm", "lexmachine"} {
		opts := defaultOptions()
		opts.engine = engine
		opts.floatKind = floatlex.Float
		results, err := scanFiles(context.Background(), paths, opts)
		require.NoError(t, err)
		toks := results[0].Tokens
		require.Len(t, toks, 5, "engine %s", engine)
		assert.Equal(t, int64(28), toks[1].Value, "engine %s", engine)
		assert.Equal(t, "1.5f", toks[4].Lexeme, "engine %s", engine)
		assert.Equal(t, uint64(18), toks[4].From, "engine %s", engine)
		assert.Empty(t, results[0].Errors, "engine %s", engine)
	}
}

func TestScanMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.scan")
	defer teardown()
	//
	paths := writeInputs(t, "1")
	paths = append(paths, filepath.Join(t.TempDir(), "missing.txt"))
	_, err := scanFiles(context.Background(), paths, defaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.scan")
	defer teardown()
	//
	paths := writeInputs(t, "1 2.5 x")
	results, err := scanFiles(context.Background(), paths, defaultOptions())
	require.NoError(t, err)
	//
	var text bytes.Buffer
	require.NoError(t, writeText(&text, results))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "# "+paths[0]))
	assert.Contains(t, lines[2], "2.5")
	//
	var bin bytes.Buffer
	require.NoError(t, writeMsgpack(&bin, results))
	var decoded fileResult
	require.NoError(t, msgpack.NewDecoder(&bin).Decode(&decoded))
	assert.Equal(t, paths[0], decoded.Path)
	require.Len(t, decoded.Tokens, 3)
	assert.Equal(t, "float", decoded.Tokens[1].Type)
	assert.Equal(t, uint64(2), decoded.Tokens[1].From)
	assert.Len(t, decoded.Errors, 1)
}

func TestFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.scan")
	defer teardown()
	//
	cmd := rootCmd
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "ints", "--int-kind", "short", "--bare-zero"}))
	opts, err := optionsFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, scanner.ScanInts, opts.mode)
	assert.True(t, opts.bareZero)
	//
	require.NoError(t, cmd.ParseFlags([]string{"--engine", "regexp"}))
	_, err = optionsFromFlags(cmd)
	assert.Error(t, err)
}
