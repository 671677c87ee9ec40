// Package ignore provides file/directory pattern matching for exclusion
//
// Patterns come from a flat ignore-list file, one per line. Each raw pattern
// is expanded by Normalize into a small set of shell-glob patterns so that a
// bare name also matches when it appears nested below the traversal root.
// Matching is done by MatchAny with an explicit fnmatch engine, so behavior is
// identical on every platform. Optionally, .gitignore files found under the
// root are honored as well.
package ignore

// NewFromConfig creates a Matcher from a Config struct
func NewFromConfig(cfg Config) (*Matcher, error) {
	options := []Option{
		WithPatterns(cfg.Patterns),
		WithCaseFold(cfg.CaseFold),
		WithGitIgnore(cfg.GitIgnore),
		WithDisabled(cfg.Disabled),
	}

	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}

	return New(cfg.RootDir, options...)
}
