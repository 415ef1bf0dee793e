// Package manifest handles batch page manifests: YAML files that list the
// pages "pagegen apply" should generate. Manifests are validated against an
// embedded JSON Schema and their schema_version must fall inside the range
// this build understands.
package manifest
