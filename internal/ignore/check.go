package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore checks if a path relative to the root should be ignored.
//
// Directories are tested both as "rel" and "rel/", so directory-only
// patterns (those ending in a separator) match them; files are tested
// only as "rel". Each form is also tried anchored at the root ("/rel"), so
// a pattern such as */tests/* matches tests/x.py as well as pkg/tests/x.py.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || m.disabled {
		return false
	}

	unixPath := filepath.ToSlash(relativePath)
	unixPath = strings.TrimSuffix(unixPath, Separator)
	if unixPath == "" || unixPath == "." {
		return false // Never ignore the root itself
	}

	if m.matchesList(unixPath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (ignore list)", unixPath)
		return true
	}

	if !m.useGitIgnore {
		return false
	}

	if isPathInGitDir(unixPath, isDir) {
		m.logger.Debug("ignore.ShouldIgnore: Ignored %q (.git rule)", unixPath)
		return true
	}

	return m.ignoredByRepo(unixPath, isDir)
}

// matchesList tests the path against the normalized ignore list. The
// root-anchored forms only go to patterns that open with "*/", the ones a
// parent directory prefix could satisfy.
func (m *Matcher) matchesList(unixPath string, isDir bool) bool {
	if MatchAny(unixPath, m.normalized, m.flags) || MatchAny(Separator+unixPath, m.anchored, m.flags) {
		return true
	}
	if !isDir {
		return false
	}
	return MatchAny(unixPath+Separator, m.normalized, m.flags) ||
		MatchAny(Separator+unixPath+Separator, m.anchored, m.flags)
}

// ignoredByRepo consults the .gitignore rules under the root
func (m *Matcher) ignoredByRepo(unixPath string, isDir bool) (ignored bool) {
	if m.repoIgnore == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Absolute(filepath.Join(m.rootDir, filepath.FromSlash(unixPath)), isDir)
	if match == nil {
		return false
	}
	if match.Ignore() {
		m.logger.Debug("ignore.ShouldIgnore: Path %q ignored by .gitignore rule", unixPath)
		return true
	}
	return false
}

// isPathInGitDir checks if a path is inside a .git directory
func isPathInGitDir(unixPath string, isDir bool) bool {
	parts := strings.Split(unixPath, Separator)
	for i, part := range parts {
		if part == ".git" {
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
