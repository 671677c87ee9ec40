// Package export turns source files into annotated text artifacts.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bethropolis/project2txt/internal/utils"
)

// Extension is appended to every artifact name.
const Extension = ".txt"

// Exporter writes one artifact per source file into a single directory.
type Exporter struct {
	outputDir   string
	uniqueNames bool
	logger      utils.Logger

	// artifact name -> relative path of the source that last wrote it
	written map[string]string
}

// Option configures an Exporter
type Option func(*Exporter)

// WithLogger sets the logger collisions and failures are reported to
func WithLogger(logger utils.Logger) Option {
	return func(e *Exporter) {
		e.logger = utils.OrNoop(logger)
	}
}

// WithUniqueNames names artifacts after the source's relative path instead
// of its stem, so same-named files in different directories don't collide.
func WithUniqueNames(enabled bool) Option {
	return func(e *Exporter) {
		e.uniqueNames = enabled
	}
}

// New creates an Exporter writing into outputDir, which must exist.
func New(outputDir string, opts ...Option) *Exporter {
	e := &Exporter{
		outputDir: outputDir,
		logger:    utils.NoopLogger{},
		written:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export reads srcPath and writes its artifact, returning the artifact's
// path. relPath is the slash-separated path of the source below the walk
// root; it is only used for naming when unique names are on, and for
// collision reporting.
func (e *Exporter) Export(srcPath, relPath string) (string, error) {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("export: failed to read '%s': %w", srcPath, err)
	}

	name := ArtifactName(srcPath)
	if e.uniqueNames && relPath != "" {
		name = UniqueArtifactName(relPath)
	}
	artifactPath := filepath.Join(e.outputDir, name)

	if prev, ok := e.written[name]; ok && prev != relPath {
		e.logger.Warn("Artifact %s from %q overwrites the one written for %q", name, relPath, prev)
	}

	if err := os.WriteFile(artifactPath, Render(filepath.Base(srcPath), content), 0644); err != nil {
		return "", fmt.Errorf("export: failed to write '%s': %w", artifactPath, err)
	}
	e.written[name] = relPath

	e.logger.Debug("Exported %s -> %s (%d bytes)", srcPath, artifactPath, len(content))
	return artifactPath, nil
}

// Render wraps content in the artifact banner for a file called name.
func Render(name string, content []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content) + 2*len(name) + 32)
	fmt.Fprintf(&buf, "// Filename: %s\n\n", name)
	buf.Write(content)
	fmt.Fprintf(&buf, "\n// End of %s\n\n", name)
	return buf.Bytes()
}

// ArtifactName is the source's base name without its final extension, plus
// Extension. A name whose only dot is the leading one (".bashrc") has no
// extension and is kept whole.
func ArtifactName(srcPath string) string {
	return stem(filepath.Base(srcPath)) + Extension
}

// UniqueArtifactName flattens a relative path into an artifact name:
// "pkg/util/a.go" becomes "pkg_util_a.txt".
func UniqueArtifactName(relPath string) string {
	relPath = filepath.ToSlash(relPath)
	dir, base := path.Split(relPath)
	flat := strings.ReplaceAll(dir, "/", "_")
	return flat + stem(base) + Extension
}

// stem drops the final extension. A dot that is the first or the last
// character does not start an extension.
func stem(base string) string {
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return base
	}
	return base[:i]
}
