package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.repl")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "numrepl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
tracing = "go"

[numlex]
bare-zero = true
kind = "short"
`), 0o644))
	conf, err := loadConfig(path)
	require.NoError(t, err)
	conf.InitDefaults()
	assert.True(t, conf.GetBool("numlex.bare-zero"))
	assert.Equal(t, "short", conf.GetString("numlex.kind"))
	assert.Equal(t, "auto", conf.GetString("numlex.scanmode"), "default expected")
	assert.False(t, conf.IsSet("numlex.missing"))
}

func TestLoadConfigMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.repl")
	defer teardown()
	//
	_, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	conf, err := loadConfig("")
	require.NoError(t, err)
	conf.InitDefaults()
	assert.Equal(t, "double", conf.GetString("numlex.kind"))
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "numlex.repl")
	defer teardown()
	//
	intp := &Intp{out: os.Stderr}
	require.NoError(t, intp.setKind("int"))
	quit, err := intp.Eval("0x1F")
	assert.False(t, quit)
	assert.NoError(t, err)
	_, err = intp.Eval("12a")
	assert.Error(t, err, "rejected character expected")
	_, err = intp.Eval(":kind quad")
	assert.Error(t, err)
	_, err = intp.Eval(":dot")
	assert.ErrorIs(t, err, errUsage)
	quit, _ = intp.Eval(":quit")
	assert.True(t, quit)
}
