package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	aoc "github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/y2021"
)

const day1Input = "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// Keep a stray aoc.yaml in the package directory out of the tests.
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "aoc.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func inputDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func TestSolveDay(t *testing.T) {
	dir := inputDir(t, map[string]string{"day01": day1Input})

	out, err := execute(t, "--inputs", dir, "1")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 7\npart 2: 5\n", out)
}

func TestDayRequired(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a day is required")

	_, err = execute(t, "1", "2")
	assert.Error(t, err)
}

func TestInvalidDay(t *testing.T) {
	_, err := execute(t, "eight")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid day "eight"`)
}

func TestUnregisteredDay(t *testing.T) {
	dir := inputDir(t, map[string]string{"day01": day1Input, "day25": day1Input})

	out, err := execute(t, "--inputs", dir, "25")
	require.Error(t, err)
	assert.ErrorIs(t, err, aoc.ErrNoSolver)
	assert.Empty(t, out, "no answers may be printed for an unknown day")
}

func TestMissingInput(t *testing.T) {
	out, err := execute(t, "--inputs", t.TempDir(), "4")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "day04")
	assert.Empty(t, out)
}

func TestSampleMode(t *testing.T) {
	out, err := execute(t, "--sample", "8")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 26\npart 2: 61229\n", out)
}

func TestAllSamples(t *testing.T) {
	out, err := execute(t, "--sample", "--all")
	require.NoError(t, err)
	for _, day := range []string{"day 1\n", "day 6\npart 1: 5934\npart 2: 26984457539\n", "day 9\n"} {
		assert.Contains(t, out, day)
	}
	assert.Equal(t, 9, strings.Count(out, "part 1:"))
}

func TestAllRejectsDay(t *testing.T) {
	_, err := execute(t, "--all", "3")
	assert.Error(t, err)
}

func TestConfigInputDir(t *testing.T) {
	dir := inputDir(t, map[string]string{"day01": day1Input})
	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\nlog_level: warn\n"), 0644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "part 1: 7\npart 2: 5\n", out.String())
}

func TestBadLogLevel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", cfgPath, "1"})
	assert.Error(t, cmd.Execute())
}

func TestRun(t *testing.T) {
	dir := inputDir(t, map[string]string{"day06": "3,4,3,1,2\n"})
	r := &aoc.Runner{Days: y2021.Solvers(), InputDir: dir, Logger: zap.NewNop()}

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, run(cmd, r, options{}, []string{"6"}))
	assert.Equal(t, "part 1: 5934\npart 2: 26984457539\n", out.String())
}
