package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Version is reported by --version
const Version = "1.0.0"

// Defaults for the traversal flags
const (
	DefaultRootDir   = "."
	DefaultOutputDir = "./text_output"
)

// Log formats accepted by --log-format
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all application configuration settings
type Config struct {
	// Traversal settings
	RootDir     string
	IgnoreFile  string
	OutputDir   string
	GitIgnore   bool
	IgnoreCase  bool
	UniqueNames bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	LogFormat string
	NoColor   bool
	UseColors bool // logs on stderr

	// ColorOutput colours the console notices on stdout
	ColorOutput bool

	// Output format
	ShowSkipped bool
	JSONOutput  bool

	Version string
}

// Default returns a Config with every flag at its default value
func Default() *Config {
	return &Config{
		RootDir:   DefaultRootDir,
		OutputDir: DefaultOutputDir,
		LogFormat: LogFormatText,
		Version:   Version,
	}
}

// Validate checks flag combinations and derives computed settings
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RootDir) == "" {
		c.RootDir = DefaultRootDir
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("config: output directory must not be empty")
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q (want %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	if c.Verbose && c.Quiet {
		return fmt.Errorf("config: --verbose and --quiet are mutually exclusive")
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && c.LogFormat == LogFormatText && isTerminal(os.Stderr)
	c.ColorOutput = !c.NoColor && isTerminal(os.Stdout)

	return nil
}

// EffectiveLogLevel resolves --log-level, --verbose and --quiet into a
// single level name. An explicit --log-level wins.
func (c *Config) EffectiveLogLevel() string {
	switch {
	case c.LogLevel != "":
		return c.LogLevel
	case c.Verbose:
		return "debug"
	case c.Quiet:
		return "warn"
	default:
		return "info"
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
