// Package printer handles the user-facing console notices of a run
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/project2txt/internal/walker"
	"github.com/fatih/color"
)

// Notices printed to the console
const (
	NoFilesNotice = "No text files created."
	MergedNotice  = "Merged text file created at %s"
	IgnoreNotice  = "Ignoring %v"
)

// Printer writes run notices, or a single JSON summary, to its output
type Printer struct {
	output     io.Writer
	useColors  bool
	jsonOutput bool
	summary    Summary
}

// Summary is the JSON document printed in JSON mode
type Summary struct {
	Root      string               `json:"root"`
	OutputDir string               `json:"output_dir"`
	Patterns  []string             `json:"ignore_patterns"`
	Artifacts []string             `json:"artifacts"`
	Merged    string               `json:"merged,omitempty"`
	WordCount int                  `json:"word_count"`
	Skipped   []walker.SkippedItem `json:"skipped,omitempty"`
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output: os.Stdout,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// Start records where the run reads from and writes to
func (p *Printer) Start(root, outputDir string) {
	p.summary.Root = root
	p.summary.OutputDir = outputDir
}

// IgnoreList announces the patterns loaded from the ignore file
func (p *Printer) IgnoreList(patterns []string) {
	p.summary.Patterns = append([]string(nil), patterns...)
	if p.jsonOutput {
		return
	}
	fmt.Fprintf(p.output, IgnoreNotice+"\n", patterns)
}

// Artifact records one exported artifact
func (p *Printer) Artifact(path string) {
	p.summary.Artifacts = append(p.summary.Artifacts, path)
}

// Skipped records the walk's skipped items for the JSON summary
func (p *Printer) Skipped(items []walker.SkippedItem) {
	p.summary.Skipped = items
}

// Merged announces the merged document
func (p *Printer) Merged(path string, wordCount int) {
	p.summary.Merged = path
	p.summary.WordCount = wordCount
	if p.jsonOutput {
		return
	}
	if p.useColors {
		paint(color.FgGreen).Fprintf(p.output, MergedNotice+"\n", path)
		return
	}
	fmt.Fprintf(p.output, MergedNotice+"\n", path)
}

// paint returns a colour that ignores the package-wide color.NoColor switch,
// which follows stderr; the printer decides for its own output.
func paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// NoFiles announces that nothing was exported
func (p *Printer) NoFiles() {
	if p.jsonOutput {
		return
	}
	if p.useColors {
		paint(color.FgYellow).Fprintln(p.output, NoFilesNotice)
		return
	}
	fmt.Fprintln(p.output, NoFilesNotice)
}

// Finalize writes the JSON summary when JSON mode is on
func (p *Printer) Finalize() error {
	if !p.jsonOutput {
		return nil
	}
	if p.summary.Artifacts == nil {
		p.summary.Artifacts = []string{}
	}
	if p.summary.Patterns == nil {
		p.summary.Patterns = []string{}
	}
	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.summary); err != nil {
		return fmt.Errorf("printer: failed to encode summary: %w", err)
	}
	return nil
}

// GetCount returns the number of artifacts recorded
func (p *Printer) GetCount() int {
	return len(p.summary.Artifacts)
}
