// Package scaffold materializes a page skeleton on disk. It writes the
// component, view-model, optional search-condition, page wrapper and leaf
// barrel files under the fixed roots, optionally creates the model and hook
// directories, and patches every ancestor index.ts so each directory
// re-exports its child. It powers the "pagegen page", "pagegen new" and
// "pagegen apply" commands.
package scaffold
