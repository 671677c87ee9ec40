package ignore

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// DefaultFlags are the fnmatch flags used for ignore matching: '*' crosses
// path separators and backslash is an ordinary character.
const DefaultFlags = fnmatch.FNM_NOESCAPE

// MatchAny reports whether path matches any pattern in set.
//
// Patterns use shell-glob syntax: '*' matches any run of characters
// (including '/'), '?' matches one character and bracket expressions such as
// [abc], [a-z] and [!x] match a character class. Add fnmatch.FNM_CASEFOLD to
// flags for case-insensitive matching.
func MatchAny(path string, set []string, flags int) bool {
	for _, pattern := range set {
		if fnmatch.Match(pattern, path, flags) {
			return true
		}
	}
	return false
}

// LiteralBrackets rewrites every '[' that never closes into the class "[[]",
// so it matches a literal bracket the way POSIX globs do. fnmatch on its own
// fails any comparison that reaches an unterminated class.
func LiteralBrackets(pattern string) string {
	if !strings.Contains(pattern, "[") {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 4)
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '[' {
			b.WriteByte(pattern[i])
			continue
		}
		end := classEnd(pattern, i+1)
		if end < 0 {
			b.WriteString("[[]")
			continue
		}
		b.WriteString(pattern[i : end+1])
		i = end
	}
	return b.String()
}

// classEnd returns the index of the ']' closing a class whose body starts at
// start, or -1. A backslash hides the next character, as in fnmatch's own scan.
func classEnd(pattern string, start int) int {
	for j := start; j < len(pattern); j++ {
		switch pattern[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	return -1
}
