package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
definition:
  flag: bool
  size: ImpreciseInteger
individuals:
  x: {flag: true, size: 4}
  y: {}
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "context.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "types")
}

func TestShowTable(t *testing.T) {
	out, _, err := run(t, "", "show", writeDoc(t))
	require.NoError(t, err)
	assert.Contains(t, out, "[4:4]")
	assert.Contains(t, out, "2 individuals, 2 attributes")
}

func TestShowString(t *testing.T) {
	out, _, err := run(t, doc, "show", "--format", "string", "-")
	require.NoError(t, err)
	assert.Equal(t, "{'population': ['x', 'y'], 'model': {'flag': bool, 'size': ImpreciseInteger}}\n", out)
}

func TestShowDebug(t *testing.T) {
	_, logs, err := run(t, doc, "show", "--debug", "-")
	require.NoError(t, err)
	assert.Contains(t, logs, "attribute added")
	assert.Contains(t, logs, "individual set")
}

func TestShowErrors(t *testing.T) {
	_, _, err := run(t, doc, "show", "--format", "xml", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValue))

	_, _, err = run(t, "definition:\n  a: decimal\n", "show", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "-:")

	_, _, err = run(t, "", "show", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	_, _, err = run(t, "", "show")
	require.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "", "types")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ImpreciseBoolean", "ImpreciseFloat", "ImpreciseInteger",
		"bool", "float", "int", "string",
	}, strings.Fields(out))
}
