// Package cli defines the Cobra command tree for the pagegen CLI. Each file
// registers one command with the root. Commands only parse flags, collect
// answers and format output; generation itself lives in internal/scaffold.
package cli
