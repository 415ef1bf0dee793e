package cli

import (
	"fmt"
	"log/slog"

	"github.com/frontkit/pagegen/internal/branding"
	"github.com/frontkit/pagegen/internal/config"
	"github.com/spf13/cobra"
)

// BuildInfo carries the values injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootOptions struct {
	verbose    bool
	projectDir string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds front-end pages: a component, its view-model provider,
an optional search-condition form and the page wrapper, plus the barrel
index.ts files that re-export them up the directory tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if err := config.Load(opts.projectDir); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			slog.Debug("config loaded", "project_dir", opts.projectDir, "settings", config.Current())
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&opts.projectDir, "dir", "C", ".", "Project directory to generate into")

	rootCmd.AddCommand(
		newPageCmd(opts),
		newNewCmd(opts),
		newApplyCmd(opts),
		newConfigCmd(),
		newVersionCmd(info),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date}).Execute()
}
