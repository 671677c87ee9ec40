package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/project2txt/internal/utils"
	"github.com/danwakefield/fnmatch"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates and initializes a Matcher for paths below rootDir
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &Matcher{
		rootDir: absRootDir,
		flags:   DefaultFlags,
		logger:  utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init builds the normalized pattern set and, if requested, the gitignore engine
func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: Initializing for root: %s", m.rootDir)

	if m.disabled {
		m.logger.Debug("ignore.New: Matcher is disabled, nothing will be ignored")
		return nil
	}

	if m.caseFold {
		m.flags |= fnmatch.FNM_CASEFOLD
	}
	literal := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		literal[i] = LiteralBrackets(p)
	}
	m.normalized = Normalize(literal)
	for _, p := range m.normalized {
		if strings.HasPrefix(p, "*"+Separator) {
			m.anchored = append(m.anchored, p)
		}
	}
	m.logger.Debug("ignore.New: %d raw patterns expanded to %d", len(m.patterns), len(m.normalized))

	if !m.useGitIgnore {
		return nil
	}

	repoMatcher, repoErr := gitignore.NewRepository(m.rootDir)
	if repoErr != nil {
		m.logger.Warn("ignore.New: Error loading repository ignores from '%s': %v", m.rootDir, repoErr)
		if repoMatcher != nil {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
		// No .gitignore found; keep an empty engine so lookups stay valid
		repoMatcher = gitignore.New(nil, m.rootDir, nil)
	}
	m.repoIgnore = repoMatcher
	m.logger.Debug("ignore.New: Loaded repository ignores.")

	return nil
}

// Patterns returns the normalized pattern set
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.normalized...)
}
