package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/frontkit/pagegen/internal/config"
	"github.com/frontkit/pagegen/internal/manifest"
	"github.com/frontkit/pagegen/internal/naming"
	"github.com/frontkit/pagegen/internal/scaffold"
	"github.com/frontkit/pagegen/internal/templates"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newApplyCmd(root *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <manifest.yaml>",
		Short: "Scaffold every page listed in a manifest",
		Long: `Validate a batch manifest and scaffold each page it lists, in order.

Example manifest:
  schema_version: "1.0.0"
  defaults:
    interfaces: true
  pages:
    - path: order/list
      name: OrderList
      search_condition: true
    - path: order/detail
      name: OrderDetail`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			m, result, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if !result.Valid {
				fmt.Fprintf(out, "Manifest %s is invalid:\n", args[0])
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
				return fmt.Errorf("manifest %s has %d issue(s)", args[0], len(result.Issues))
			}

			settings := config.Current()
			roots := scaffold.DefaultRoots(filepath.Join(root.projectDir, settings.SrcDir))
			gen := scaffold.New(afero.NewOsFs(), roots,
				scaffold.WithLogger(slog.Default()),
				scaffold.WithDryRun(dryRun),
			)

			for i, page := range m.Pages {
				req := scaffold.Request{
					Options: templates.Options{
						PagePath:       naming.NormalizePath(page.Path),
						PageName:       naming.ToPascalCase(page.Name),
						ComponentAlias: settings.ComponentAlias,
					},
					Features: page.Features(m.Defaults),
				}
				slog.Debug("applying manifest page", "index", i, "path", req.Options.PagePath, "name", req.Options.PageName)

				res, err := gen.Generate(req)
				if err != nil {
					return fmt.Errorf("page %d (%s): %w", i, page.Name, err)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printResult(out, req.Options, res)
			}

			fmt.Fprintf(out, "\n%d page(s) from %s\n", len(m.Pages), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be written without writing")
	return cmd
}
