package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/bethropolis/project2txt/internal/config"
	"github.com/bethropolis/project2txt/internal/merge"
	"github.com/bethropolis/project2txt/internal/printer"
	"github.com/bethropolis/project2txt/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// run executes one App run and returns its console output
func run(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	a := New(cfg, WithOutput(&stdout), WithErrorOutput(&bytes.Buffer{}), WithLogger(utils.NoopLogger{}))
	err := a.Run(context.Background())
	return stdout.String(), err
}

func newConfig(root, out, ignoreFile string) *config.Config {
	cfg := config.Default()
	cfg.RootDir = root
	cfg.OutputDir = out
	cfg.IgnoreFile = ignoreFile
	cfg.NoColor = true
	return cfg
}

func TestRunPrunesIgnoredDirectory(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "text_output")
	writeFile(t, root, "a.py", "x=1")
	writeFile(t, root, "build/b.py", "y=2")
	ignoreFile := filepath.Join(t.TempDir(), "ignore.txt")
	writeFile(t, filepath.Dir(ignoreFile), "ignore.txt", "build/\n")

	stdout, err := run(t, newConfig(root, out, ignoreFile))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", merge.FileName}, listDir(t, out))

	artifact := "// Filename: a.py\n\nx=1\n// End of a.py\n\n"
	assert.Equal(t, artifact, readFile(t, filepath.Join(out, "a.txt")))
	assert.Equal(t, "Total Word Count: 8\n\n"+artifact+"\n", readFile(t, filepath.Join(out, merge.FileName)))

	assert.Equal(t,
		"Ignoring [build/]\nMerged text file created at "+filepath.Join(out, merge.FileName)+"\n",
		stdout)
}

func TestRunEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "text_output")

	stdout, err := run(t, newConfig(root, out, ""))
	require.NoError(t, err)

	assert.Equal(t, printer.NoFilesNotice+"\n", stdout)
	assert.Empty(t, listDir(t, out))
	assert.NoFileExists(t, filepath.Join(out, merge.FileName))
}

func TestRunBareNamePattern(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, root, "secret.txt", "top secret")
	writeFile(t, root, "sub/secret.txt", "nested secret")
	writeFile(t, root, "secret.txt.bak", "backup")
	ignoreFile := filepath.Join(t.TempDir(), "ignore")
	writeFile(t, filepath.Dir(ignoreFile), "ignore", "secret.txt\n")

	_, err := run(t, newConfig(root, out, ignoreFile))
	require.NoError(t, err)

	assert.Equal(t, []string{merge.FileName, "secret.txt.txt"}, listDir(t, out))
	assert.Contains(t, readFile(t, filepath.Join(out, "secret.txt.txt")), "// Filename: secret.txt.bak")
	assert.NotContains(t, readFile(t, filepath.Join(out, merge.FileName)), "secret\n")
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "pkg/util.go", "package pkg\n\nfunc A() {}\n")
	writeFile(t, root, "vendor/dep.go", "package dep\n")
	ignoreFile := filepath.Join(t.TempDir(), "ignore")
	writeFile(t, filepath.Dir(ignoreFile), "ignore", "vendor\n")

	out1 := filepath.Join(t.TempDir(), "out")
	out2 := filepath.Join(t.TempDir(), "out")
	_, err := run(t, newConfig(root, out1, ignoreFile))
	require.NoError(t, err)
	_, err = run(t, newConfig(root, out2, ignoreFile))
	require.NoError(t, err)

	names := listDir(t, out1)
	assert.Equal(t, []string{"main.txt", merge.FileName, "util.txt"}, names)
	assert.Equal(t, names, listDir(t, out2))
	for _, name := range names {
		assert.Equal(t, readFile(t, filepath.Join(out1, name)), readFile(t, filepath.Join(out2, name)), name)
	}
}

func TestRunMergeOrderFollowsTraversal(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, root, "z.txt", "zz")
	writeFile(t, root, "a/b.txt", "bb")

	_, err := run(t, newConfig(root, out, ""))
	require.NoError(t, err)

	merged := readFile(t, filepath.Join(out, merge.FileName))
	assert.Equal(t,
		"Total Word Count: 16\n\n"+
			"// Filename: z.txt\n\nzz\n// End of z.txt\n\n\n"+
			"// Filename: b.txt\n\nbb\n// End of b.txt\n\n\n",
		merged)
}

func TestRunOutputInsideRootIsNotExported(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "text_output")
	writeFile(t, root, "a.py", "x=1")

	_, err := run(t, newConfig(root, out, ""))
	require.NoError(t, err)
	first := readFile(t, filepath.Join(out, merge.FileName))

	_, err = run(t, newConfig(root, out, ""))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", merge.FileName}, listDir(t, out))
	assert.Equal(t, first, readFile(t, filepath.Join(out, merge.FileName)))
}

func TestRunMissingIgnoreFileContinues(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, root, "a.py", "x=1")

	stdout, err := run(t, newConfig(root, out, filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)

	assert.NotContains(t, stdout, "Ignoring")
	assert.FileExists(t, filepath.Join(out, "a.txt"))
}

func TestRunMissingRoot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	_, err := run(t, newConfig(filepath.Join(t.TempDir(), "nope"), out, ""))
	assert.Error(t, err)
	assert.NoDirExists(t, out)
}

func TestRunUniqueNames(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, root, "a.py", "one")
	writeFile(t, root, "sub/a.py", "two")

	cfg := newConfig(root, out, "")
	cfg.UniqueNames = true
	_, err := run(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", merge.FileName, "sub_a.txt"}, listDir(t, out))
}

func TestRunJSONSummary(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, root, "a.py", "x=1")
	writeFile(t, root, "build/b.py", "y=2")
	ignoreFile := filepath.Join(t.TempDir(), "ignore")
	writeFile(t, filepath.Dir(ignoreFile), "ignore", "build/\n")

	cfg := newConfig(root, out, ignoreFile)
	cfg.JSONOutput = true
	stdout, err := run(t, cfg)
	require.NoError(t, err)

	var got printer.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{filepath.Join(out, "a.txt")}, got.Artifacts)
	assert.Equal(t, []string{"build/"}, got.Patterns)
	assert.Equal(t, 8, got.WordCount)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, "build", got.Skipped[0].Path)
}

func TestNewBuildsLoggerFromConfig(t *testing.T) {
	var stderr bytes.Buffer
	cfg := newConfig(t.TempDir(), filepath.Join(t.TempDir(), "out"), "")
	cfg.LogFormat = config.LogFormatJSON
	cfg.Verbose = true

	a := New(cfg, WithOutput(&bytes.Buffer{}), WithErrorOutput(&stderr))
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, stderr.String(), `"level":"debug"`)
	assert.Contains(t, stderr.String(), `"appName":"project2txt"`)
}

type debugRecorder struct {
	utils.NoopLogger
	lines []string
}

func (l *debugRecorder) Debug(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRunReportsProgress(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "x=1")
	writeFile(t, root, "sub/b.py", "y=2")

	log := &debugRecorder{}
	a := New(newConfig(root, filepath.Join(t.TempDir(), "out"), ""),
		WithOutput(&bytes.Buffer{}), WithErrorOutput(&bytes.Buffer{}), WithLogger(log))
	require.NoError(t, a.Run(context.Background()))

	var progress []string
	for _, line := range log.lines {
		if strings.HasPrefix(line, "Progress: ") {
			progress = append(progress, line)
		}
	}
	require.Len(t, progress, 2)
	assert.True(t, strings.HasPrefix(progress[0], "Progress: a.py "), progress[0])
	assert.True(t, strings.HasPrefix(progress[1], "Progress: sub/b.py "), progress[1])
}

func TestRunNoticesFollowStdoutColour(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "x=1")

	// Terminal on stderr, stdout redirected to a file
	cfg := newConfig(root, filepath.Join(t.TempDir(), "out"), "")
	cfg.UseColors = true
	cfg.ColorOutput = false
	stdout, err := run(t, cfg)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
	assert.Contains(t, stdout, "Merged text file created at ")
}
