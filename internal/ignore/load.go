package ignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ParseIgnoreFile reads an ignore-list file: one pattern per line, trailing
// whitespace stripped. There is no comment or escape syntax.
func ParseIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to open ignore file '%s': %w", path, err)
	}
	defer f.Close()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to read ignore file '%s': %w", path, err)
	}
	return patterns, nil
}

// ParsePatterns reads patterns from r. Lines that are empty after stripping
// trailing whitespace are skipped.
func ParsePatterns(r io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
