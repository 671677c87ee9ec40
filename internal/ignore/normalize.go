package ignore

import "strings"

// Separator is the path separator used in patterns and in the candidate
// paths handed to the matcher, regardless of host OS.
const Separator = "/"

// Normalize expands raw ignore patterns into the set actually matched
// against candidate paths.
//
// A pattern without a trailing separator yields p, p/, */p and */p/, so it
// matches a file or directory of that name at the root or at any depth.
// A pattern with a trailing separator is directory-only and yields p and */p.
// Nothing is dropped; an empty input yields an empty set.
func Normalize(patterns []string) []string {
	out := make([]string, 0, len(patterns)*4)
	for _, p := range patterns {
		if strings.HasSuffix(p, Separator) {
			out = append(out, p, "*"+Separator+p)
			continue
		}
		out = append(out, p, p+Separator, "*"+Separator+p, "*"+Separator+p+Separator)
	}
	return out
}
