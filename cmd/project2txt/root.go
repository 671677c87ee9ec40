package main

import (
	"github.com/bethropolis/project2txt/internal/app"
	"github.com/bethropolis/project2txt/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the project2txt command with its flags bound to a fresh Config
func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "project2txt",
		Short: "Convert files to text and merge them",
		Long: `project2txt walks a directory tree, writes every file that is not ignored
as an annotated text snapshot into the output directory, and merges the
snapshots into merged_output.txt headed by a total word count.`,
		Args:          cobra.NoArgs,
		Version:       cfg.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			a := app.New(cfg,
				app.WithOutput(cmd.OutOrStdout()),
				app.WithErrorOutput(cmd.ErrOrStderr()),
			)
			return a.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.RootDir, "directory", "d", cfg.RootDir, "Path to the directory.")
	flags.StringVarP(&cfg.IgnoreFile, "ignore", "i", cfg.IgnoreFile, "Path to the file containing a list of files/directories to ignore.")
	flags.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Output directory for text files.")
	flags.BoolVar(&cfg.GitIgnore, "gitignore", false, "Also honor .gitignore files under the directory")
	flags.BoolVar(&cfg.IgnoreCase, "ignore-case", false, "Match ignore patterns case-insensitively")
	flags.BoolVar(&cfg.UniqueNames, "unique-names", false, "Name artifacts after the file's relative path so same-named files don't overwrite each other")
	flags.BoolVar(&cfg.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "Print the run summary as JSON")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only log warnings and errors")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Set the logging level (debug, info, warn, error, none); overrides --verbose/--quiet")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable color output")

	return cmd
}
