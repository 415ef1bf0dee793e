package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/frontkit/pagegen/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
		Long: `Read and write pagegen settings. "set" writes ~/.pagegen/config.yaml; a
.pagegen.yaml in the project directory and PAGEGEN_* environment variables
take precedence when reading.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsKnown(args[0]) {
				return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys())
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, key := range config.Keys() {
				fmt.Fprintf(w, "%s\t%s\n", key, config.Get(key))
			}
			return w.Flush()
		},
	})

	return configCmd
}
