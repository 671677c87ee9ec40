// Package merge concatenates exported artifacts into one document.
package merge

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// FileName is the merged document's name inside the output directory.
const FileName = "merged_output.txt"

// HeaderFormat is the first line of the merged document.
const HeaderFormat = "Total Word Count: %d\n\n"

// Merge writes the artifacts, in the given order and each followed by a
// newline, to dest, prefixed with the total word count of that content.
// It returns the word count. On error the state of dest is unspecified.
func Merge(artifacts []string, dest string) (int, error) {
	var body bytes.Buffer
	total := 0

	for _, artifact := range artifacts {
		content, err := os.ReadFile(artifact)
		if err != nil {
			return 0, fmt.Errorf("merge: failed to read artifact '%s': %w", artifact, err)
		}
		total += CountWords(content)
		body.Write(content)
		body.WriteByte('\n')
	}

	out := make([]byte, 0, body.Len()+32)
	out = fmt.Appendf(out, HeaderFormat, total)
	out = append(out, body.Bytes()...)

	if err := os.WriteFile(dest, out, 0644); err != nil {
		return 0, fmt.Errorf("merge: failed to write '%s': %w", dest, err)
	}
	return total, nil
}

// CountWords counts whitespace-delimited tokens
func CountWords(content []byte) int {
	return len(strings.Fields(string(content)))
}
