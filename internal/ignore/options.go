package ignore

import "github.com/bethropolis/project2txt/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithPatterns sets the raw ignore patterns. They are normalized when the
// matcher is built.
func WithPatterns(patterns []string) Option {
	return func(m *Matcher) {
		m.patterns = append([]string(nil), patterns...)
	}
}

func WithCaseFold(fold bool) Option {
	return func(m *Matcher) {
		m.caseFold = fold
	}
}

// WithGitIgnore additionally honors .gitignore files found under the root.
func WithGitIgnore(enabled bool) Option {
	return func(m *Matcher) {
		m.useGitIgnore = enabled
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
