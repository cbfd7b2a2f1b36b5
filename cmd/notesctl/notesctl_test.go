package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dataDir, "--name", "clidb"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestInit_SeedsOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "database clidb ready")
	assert.Contains(t, out, "(5 notes, 4 categories)")

	_, err = os.Stat(filepath.Join(dir, "clidb.db"))
	assert.NoError(t, err)

	out, err = runCLI(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "(5 notes, 4 categories)")
}

func TestNotesCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "--seed=false", "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes found.")

	out, err = runCLI(t, dir, "notes", "add", "--title", "Alpha", "--content", "first")
	require.NoError(t, err)
	assert.Contains(t, out, "created note 1")

	out, err = runCLI(t, dir, "notes", "add", "-t", "Beta", "--category", "2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "created note 2")

	out, err = runCLI(t, dir, "notes", "swap", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "swapped notes 1 and 2")

	out, err = runCLI(t, dir, "notes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "[2 3]")
	assert.Less(t, bytes.Index([]byte(out), []byte("Beta")), bytes.Index([]byte(out), []byte("Alpha")))

	out, err = runCLI(t, dir, "notes", "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted note 1")

	out, err = runCLI(t, dir, "notes", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Beta")
}

func TestNotesCommands_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "--seed=false", "notes", "swap", "1", "x")
	assert.ErrorContains(t, err, "must be a positive integer")

	_, err = runCLI(t, dir, "--seed=false", "notes", "swap", "1", "2")
	assert.ErrorContains(t, err, "record not found")

	_, err = runCLI(t, dir, "--seed=false", "notes", "add")
	assert.ErrorContains(t, err, "required flag(s) \"title\" not set")
}

func TestCategoriesCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "--seed=false", "categories", "add", "Errands", "-d", "Things to do")
	require.NoError(t, err)
	assert.Contains(t, out, "created category 1")

	out, err = runCLI(t, dir, "cat", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Errands")
	assert.Contains(t, out, "Things to do")
}

func TestDrop(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "init")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "drop")
	require.NoError(t, err)
	assert.Contains(t, out, "database clidb deleted")

	_, err = os.Stat(filepath.Join(dir, "clidb.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = runCLI(t, dir, "drop")
	assert.NoError(t, err)
}
