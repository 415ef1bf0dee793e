package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without validating it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and decodes a manifest file without validating it.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load reads, validates and decodes a manifest. When validation finds
// issues the manifest is nil and the result lists them; the error return
// is reserved for I/O and parse failures.
func Load(path string) (*Manifest, *ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, result, nil
	}

	m, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, result, nil
}

// CheckSchemaVersion returns an error unless version satisfies
// SupportedVersions. A leading "v" is tolerated.
func CheckSchemaVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("schema_version %s is not supported (want %s)", version, SupportedVersions)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
