package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/frontkit/pagegen/internal/config"
	"github.com/frontkit/pagegen/internal/naming"
	"github.com/frontkit/pagegen/internal/prompt"
	"github.com/frontkit/pagegen/internal/scaffold"
	"github.com/frontkit/pagegen/internal/templates"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Question keys.
const (
	keyPath       = "path"
	keyName       = "name"
	keySearch     = "search_condition"
	keyInterfaces = "interfaces"
	keyTypes      = "types"
	keyHooks      = "hooks"
)

type pageOptions struct {
	root *rootOptions

	searchCondition bool
	interfaces      bool
	types           bool
	hooks           bool
	yes             bool
	dryRun          bool
}

func (o *pageOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&o.searchCondition, "search-condition", false, "Generate a search-condition form")
	f.BoolVar(&o.interfaces, "interfaces", false, "Create the models/interfaces directory")
	f.BoolVar(&o.types, "types", false, "Create the models/types directory")
	f.BoolVar(&o.hooks, "hooks", false, "Create the hooks/client directory")
	f.BoolVarP(&o.yes, "yes", "y", false, "Never prompt; unanswered options default to no")
	f.BoolVar(&o.dryRun, "dry-run", false, "Print what would be written without writing")
}

// presetFlags turns explicitly set feature flags into answers so their
// questions are skipped.
func (o *pageOptions) presetFlags(cmd *cobra.Command, preset prompt.Answers) {
	flags := map[string]struct {
		flag  string
		value bool
	}{
		keySearch:     {"search-condition", o.searchCondition},
		keyInterfaces: {"interfaces", o.interfaces},
		keyTypes:      {"types", o.types},
		keyHooks:      {"hooks", o.hooks},
	}
	for key, f := range flags {
		if cmd.Flags().Changed(f.flag) {
			preset[key] = yesNo(f.value)
		}
	}
}

func newPageCmd(root *rootOptions) *cobra.Command {
	o := &pageOptions{root: root}
	cmd := &cobra.Command{
		Use:   "page [path] [name]",
		Short: "Scaffold a page from a path and a name",
		Long: `Scaffold a page component, view-model, page wrapper and barrel files.

Missing arguments and feature options are asked for interactively.

Examples:
  pagegen page
  pagegen page order/list OrderList --search-condition --hooks
  pagegen page admin/user-settings user_settings --yes`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := prompt.Answers{}
			if len(args) > 0 {
				preset[keyPath] = args[0]
			}
			if len(args) > 1 {
				preset[keyName] = args[1]
			}
			return o.run(cmd, preset)
		},
	}
	o.register(cmd)
	return cmd
}

func newNewCmd(root *rootOptions) *cobra.Command {
	o := &pageOptions{root: root}
	cmd := &cobra.Command{
		Use:   "new [path/name]",
		Short: "Scaffold a page from a combined path/name argument",
		Long: `Scaffold a page from a single "path/name" argument. The part after the
last slash is the page name; everything before it is the page path.

Examples:
  pagegen new order/list/OrderList
  pagegen new dashboard/Dashboard --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := prompt.Answers{}
			if len(args) == 1 {
				preset[keyPath], preset[keyName] = naming.SplitCombined(args[0])
			}
			return o.run(cmd, preset)
		},
	}
	o.register(cmd)
	return cmd
}

func pageQuestions(roots scaffold.Roots, srcDir string) []prompt.Question {
	rel := func(root string) string {
		if r, err := filepath.Rel(srcDir, root); err == nil {
			return filepath.ToSlash(r)
		}
		return filepath.ToSlash(root)
	}
	confirm := func(key, what, root string) prompt.Question {
		return prompt.Question{
			Key:  key,
			Kind: prompt.Confirm,
			Label: func(a prompt.Answers) string {
				return fmt.Sprintf("Create %s directory? (%s/%s) (y/N): ", what, rel(root), a[keyPath])
			},
		}
	}

	return []prompt.Question{
		{Key: keyPath, Kind: prompt.Text, Label: prompt.Static("Page path (e.g. test/path): ")},
		{Key: keyName, Kind: prompt.Text, Label: prompt.Static("Page name (e.g. TestPage): ")},
		{Key: keySearch, Kind: prompt.Confirm, Label: prompt.Static("Does the page need a search condition? (y/N): ")},
		confirm(keyInterfaces, "model interface", roots.Interfaces),
		confirm(keyTypes, "model type", roots.Types),
		confirm(keyHooks, "hooks", roots.Hooks),
	}
}

func (o *pageOptions) run(cmd *cobra.Command, preset prompt.Answers) error {
	o.presetFlags(cmd, preset)

	settings := config.Current()
	srcDir := filepath.Join(o.root.projectDir, settings.SrcDir)
	roots := scaffold.DefaultRoots(srcDir)

	out := cmd.OutOrStdout()
	questions := pageQuestions(roots, srcDir)
	if !o.yes && len(preset) < len(questions) {
		fmt.Fprintln(out, "\nChoose page generation options:")
	}

	asker := prompt.NewAsker(cmd.InOrStdin(), out, o.yes)
	answers, err := asker.Resolve(questions, preset)
	if err != nil {
		return err
	}

	req := scaffold.Request{
		Options: templates.Options{
			PagePath:       naming.NormalizePath(answers[keyPath]),
			PageName:       naming.ToPascalCase(answers[keyName]),
			ComponentAlias: settings.ComponentAlias,
		},
		Features: scaffold.Features{
			SearchCondition: answers.Bool(keySearch),
			Interfaces:      answers.Bool(keyInterfaces),
			Types:           answers.Bool(keyTypes),
			Hooks:           answers.Bool(keyHooks),
		},
	}
	if req.Options.PageName == "" {
		slog.Warn("page name is empty; generated files will have bare suffix names")
	}
	slog.Debug("generating page", "path", req.Options.PagePath, "name", req.Options.PageName, "features", req.Features)

	gen := scaffold.New(afero.NewOsFs(), roots,
		scaffold.WithLogger(slog.Default()),
		scaffold.WithDryRun(o.dryRun),
	)
	result, err := gen.Generate(req)
	if err != nil {
		return err
	}

	printResult(out, req.Options, result)
	return nil
}

func printResult(w io.Writer, opts templates.Options, result *scaffold.Result) {
	verb := "Created"
	if result.DryRun {
		verb = "Would create"
	}
	fmt.Fprintf(w, "%s page %s at %s\n", verb, opts.PageName, displayPath(opts.PagePath))

	fmt.Fprintln(w, "\nGenerated files:")
	for _, f := range result.Files {
		fmt.Fprintf(w, "  - %s\n", f)
	}

	if len(result.Barrels) > 0 {
		fmt.Fprintln(w, "\nUpdated parent index.ts files:")
		for _, b := range result.Barrels {
			action := "appended"
			if b.Created {
				action = "created"
			}
			fmt.Fprintf(w, "  - %s (%s, exports ./%s)\n", b.Path, action, b.Child)
		}
	} else {
		fmt.Fprintln(w, "\nParent index.ts files already up to date.")
	}
}

func displayPath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
