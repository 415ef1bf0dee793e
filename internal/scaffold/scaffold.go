package scaffold

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/frontkit/pagegen/internal/templates"
	"github.com/spf13/afero"
)

// IndexFile is the barrel file name written into every generated directory.
const IndexFile = "index.ts"

// Roots holds the five fixed directories pages are generated under.
type Roots struct {
	Components string // e.g., "src/components/pages"
	Pages      string // e.g., "src/pages"
	Interfaces string // e.g., "src/models/interfaces"
	Types      string // e.g., "src/models/types"
	Hooks      string // e.g., "src/hooks/client"
}

// DefaultRoots returns the conventional roots under srcDir.
func DefaultRoots(srcDir string) Roots {
	return Roots{
		Components: filepath.Join(srcDir, "components", "pages"),
		Pages:      filepath.Join(srcDir, "pages"),
		Interfaces: filepath.Join(srcDir, "models", "interfaces"),
		Types:      filepath.Join(srcDir, "models", "types"),
		Hooks:      filepath.Join(srcDir, "hooks", "client"),
	}
}

// Features selects the optional parts of a page.
type Features struct {
	SearchCondition bool
	Interfaces      bool
	Types           bool
	Hooks           bool
}

// Request describes one page to generate. Options must already be
// normalized; the generator embeds them verbatim.
type Request struct {
	Options  templates.Options
	Features Features
}

// BarrelUpdate records one ancestor index.ts that was created or appended to.
type BarrelUpdate struct {
	Path    string
	Child   string
	Created bool
}

// Result holds the outcome of a page generation.
type Result struct {
	Files   []string
	Barrels []BarrelUpdate
	DryRun  bool
}

// Generator writes page skeletons to a filesystem.
type Generator struct {
	fs     afero.Fs
	roots  Roots
	logger *slog.Logger
	dryRun bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithDryRun makes the generator report what it would write without
// touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

// New creates a Generator over fsys rooted at roots.
func New(fsys afero.Fs, roots Roots, opts ...Option) *Generator {
	g := &Generator{
		fs:     fsys,
		roots:  roots,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Roots returns the roots the generator writes under.
func (g *Generator) Roots() Roots { return g.roots }

// Generate materializes one page. The first failure aborts the remaining
// steps; files written before it are left in place.
func (g *Generator) Generate(req Request) (*Result, error) {
	opts := req.Options
	rel := filepath.FromSlash(opts.PagePath)
	name := opts.PageName

	componentDir := filepath.Join(g.roots.Components, rel)
	pagesDir := filepath.Join(g.roots.Pages, rel)

	result := &Result{DryRun: g.dryRun}

	if err := g.EnsureDirectoryExists(componentDir); err != nil {
		return result, err
	}
	if err := g.EnsureDirectoryExists(pagesDir); err != nil {
		return result, err
	}

	type leaf struct {
		path    string
		content string
	}
	var leaves []leaf
	if req.Features.SearchCondition {
		leaves = append(leaves, leaf{filepath.Join(componentDir, name+"Condition.tsx"), templates.Condition(opts)})
	}
	leaves = append(leaves,
		leaf{filepath.Join(componentDir, name+"Component.tsx"), templates.Component(opts, req.Features.SearchCondition)},
		leaf{filepath.Join(componentDir, name+"ViewModel.tsx"), templates.ViewModel(opts)},
		leaf{filepath.Join(componentDir, IndexFile), templates.ComponentIndex(opts)},
		leaf{filepath.Join(pagesDir, name+"Page.tsx"), templates.Page(opts)},
		leaf{filepath.Join(pagesDir, IndexFile), templates.PageIndex(opts)},
	)

	// Model and hook directories start with an empty barrel.
	optional := g.optionalRoots(req.Features)
	for _, root := range optional {
		dir := filepath.Join(root, rel)
		if err := g.EnsureDirectoryExists(dir); err != nil {
			return result, err
		}
		leaves = append(leaves, leaf{filepath.Join(dir, IndexFile), ""})
	}

	for _, l := range leaves {
		if err := g.writeFile(l.path, l.content); err != nil {
			return result, err
		}
		result.Files = append(result.Files, l.path)
	}

	bases := append([]string{g.roots.Components, g.roots.Pages}, optional...)
	for _, base := range bases {
		updates, err := g.EnsureParentIndexFiles(base, opts.PagePath)
		result.Barrels = append(result.Barrels, updates...)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func (g *Generator) optionalRoots(f Features) []string {
	var roots []string
	if f.Interfaces {
		roots = append(roots, g.roots.Interfaces)
	}
	if f.Types {
		roots = append(roots, g.roots.Types)
	}
	if f.Hooks {
		roots = append(roots, g.roots.Hooks)
	}
	return roots
}

// EnsureDirectoryExists creates dir and any missing parents. It is a no-op
// when dir already exists.
func (g *Generator) EnsureDirectoryExists(dir string) error {
	exists, err := afero.DirExists(g.fs, dir)
	if err != nil {
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	g.logger.Debug("creating directory", "path", dir, "dry_run", g.dryRun)
	if g.dryRun {
		return nil
	}
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// writeFile overwrites path unconditionally.
func (g *Generator) writeFile(path, content string) error {
	g.logger.Debug("writing file", "path", path, "bytes", len(content), "dry_run", g.dryRun)
	if g.dryRun {
		return nil
	}
	if err := afero.WriteFile(g.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
