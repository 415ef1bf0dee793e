package manifest

import "github.com/frontkit/pagegen/internal/scaffold"

// SupportedVersions is the semver range of schema_version values this
// build accepts.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// Flags holds optional feature switches. A nil field is unset and
// inherits from the manifest defaults.
type Flags struct {
	SearchCondition *bool `yaml:"search_condition,omitempty"`
	Interfaces      *bool `yaml:"interfaces,omitempty"`
	Types           *bool `yaml:"types,omitempty"`
	Hooks           *bool `yaml:"hooks,omitempty"`
}

// Page is one page entry.
type Page struct {
	Path  string `yaml:"path"`
	Name  string `yaml:"name"`
	Flags `yaml:",inline"`
}

// Manifest is a parsed batch manifest.
type Manifest struct {
	SchemaVersion string `yaml:"schema_version"`
	Defaults      Flags  `yaml:"defaults,omitempty"`
	Pages         []Page `yaml:"pages"`
}

// Features resolves the page's flags against defaults.
func (p Page) Features(defaults Flags) scaffold.Features {
	return scaffold.Features{
		SearchCondition: pick(p.SearchCondition, defaults.SearchCondition),
		Interfaces:      pick(p.Interfaces, defaults.Interfaces),
		Types:           pick(p.Types, defaults.Types),
		Hooks:           pick(p.Hooks, defaults.Hooks),
	}
}

func pick(v, fallback *bool) bool {
	if v != nil {
		return *v
	}
	if fallback != nil {
		return *fallback
	}
	return false
}
