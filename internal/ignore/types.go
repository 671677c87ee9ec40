package ignore

import (
	"github.com/bethropolis/project2txt/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a path below the root is excluded from the dump
type Matcher struct {
	// Raw patterns as loaded, their normalized expansion, and the part of
	// that expansion tried against root-anchored paths
	patterns   []string
	normalized []string
	anchored   []string

	// fnmatch flags used for every comparison
	flags int

	// Repository .gitignore rules, only set when useGitIgnore is on
	repoIgnore   gitignore.GitIgnore
	useGitIgnore bool

	rootDir  string
	caseFold bool
	logger   utils.Logger
	disabled bool
}

// Config holds configuration options for the ignore matcher
type Config struct {
	RootDir   string
	Patterns  []string
	CaseFold  bool
	GitIgnore bool
	Logger    utils.Logger
	Disabled  bool
}
