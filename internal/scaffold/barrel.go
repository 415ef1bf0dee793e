package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frontkit/pagegen/internal/templates"
	"github.com/spf13/afero"
)

// EnsureParentIndexFiles walks relPath below base and makes every ancestor
// of the leaf directory export its child. A missing index.ts is created
// with the export line. An existing one gets the line appended unless it
// already contains the child name anywhere; that substring test is the
// only duplicate check, so "user" is considered exported by a file that
// exports "./userList".
//
// The returned updates list every barrel that was created or appended to.
func (g *Generator) EnsureParentIndexFiles(base, relPath string) ([]BarrelUpdate, error) {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	current := base
	var updates []BarrelUpdate

	// The leaf directory owns its own index.ts, so stop one short.
	for i := 0; i < len(parts)-1; i++ {
		current = filepath.Join(current, parts[i])

		if err := g.EnsureDirectoryExists(current); err != nil {
			return updates, err
		}

		indexPath := filepath.Join(current, IndexFile)
		child := parts[i+1]

		update, changed, err := g.ensureExport(indexPath, child)
		if err != nil {
			return updates, err
		}
		if changed {
			updates = append(updates, update)
		}
	}
	return updates, nil
}

func (g *Generator) ensureExport(indexPath, child string) (BarrelUpdate, bool, error) {
	line := templates.ParentIndex(child)
	update := BarrelUpdate{Path: indexPath, Child: child}

	exists, err := afero.Exists(g.fs, indexPath)
	if err != nil {
		return update, false, fmt.Errorf("checking %s: %w", indexPath, err)
	}

	if !exists {
		update.Created = true
		g.logger.Debug("creating barrel", "path", indexPath, "child", child, "dry_run", g.dryRun)
		if g.dryRun {
			return update, true, nil
		}
		if err := afero.WriteFile(g.fs, indexPath, []byte(line), 0644); err != nil {
			return update, false, fmt.Errorf("writing %s: %w", indexPath, err)
		}
		return update, true, nil
	}

	content, err := afero.ReadFile(g.fs, indexPath)
	if err != nil {
		return update, false, fmt.Errorf("reading %s: %w", indexPath, err)
	}
	if strings.Contains(string(content), child) {
		g.logger.Debug("barrel already exports child", "path", indexPath, "child", child)
		return update, false, nil
	}

	g.logger.Debug("appending to barrel", "path", indexPath, "child", child, "dry_run", g.dryRun)
	if g.dryRun {
		return update, true, nil
	}
	if err := appendFile(g.fs, indexPath, line); err != nil {
		return update, false, err
	}
	return update, true, nil
}

func appendFile(fsys afero.Fs, path, text string) error {
	f, err := fsys.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
