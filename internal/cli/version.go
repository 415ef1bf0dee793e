package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/frontkit/pagegen/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(info BuildInfo) *cobra.Command {
	var (
		versionShort bool
		versionJSON  bool
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := displayVersion(info.Version)

			if versionShort {
				fmt.Fprintln(out, version)
				return nil
			}

			if versionJSON {
				data, err := json.MarshalIndent(map[string]string{
					"version": version,
					"commit":  info.Commit,
					"date":    info.Date,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), version, info.Commit, info.Date)
			return nil
		},
	}

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	return versionCmd
}

// displayVersion normalizes release versions to "vX.Y.Z" and passes
// anything that is not semver (e.g., "dev") through unchanged.
func displayVersion(raw string) string {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return raw
	}
	return "v" + v.String()
}
