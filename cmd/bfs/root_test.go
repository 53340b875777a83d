package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hybridbfs/hybrid"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("0")
	require.NoError(t, err)
	require.Equal(t, hybrid.MethodTopDown, m)

	m, err = parseMethod("1")
	require.NoError(t, err)
	require.Equal(t, hybrid.MethodBottomUp, m)

	m, err = parseMethod("2")
	require.NoError(t, err)
	require.Equal(t, hybrid.MethodHybrid, m)

	_, err = parseMethod("3")
	require.Error(t, err)
}

func TestRunBFS_EdgeListEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n0 2\n"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"0", path, "2", "2"})

	var stdout bytes.Buffer
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.Execute()

	w.Close()
	os.Stdout = oldStdout
	_, _ = stdout.ReadFrom(r)

	require.NoError(t, execErr)
	require.Regexp(t, `^\d+\.\d{4} \d+\.\d{4}\n$`, stdout.String())
}

func TestRunBFS_RejectsBadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edge.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"-1", path, "1", "2"})
	cmd.SilenceErrors = true
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRunBFS_RejectsUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edge.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"0", path, "1", "9"})
	cmd.SilenceErrors = true
	err := cmd.Execute()
	require.Error(t, err)
}
