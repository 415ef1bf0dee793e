package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/frontkit/pagegen/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeySrcDir is the source directory the fixed page roots live under.
	KeySrcDir = "src_dir"
	// KeyComponentAlias is the import alias generated pages use to reach
	// their components.
	KeyComponentAlias = "component_alias"
)

var defaultValues = map[string]string{
	KeySrcDir:         "src",
	KeyComponentAlias: "@components/pages",
}

var v = newViper()

// Settings is the resolved configuration for one invocation.
type Settings struct {
	SrcDir         string
	ComponentAlias string
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetConfigType(fileType)
	nv.SetEnvPrefix(branding.EnvPrefix())
	nv.AutomaticEnv()
	for k, val := range defaultValues {
		nv.SetDefault(k, val)
	}
	return nv
}

// Dir returns the path to the pagegen config directory (~/.pagegen/).
// PAGEGEN_HOME overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file (~/.pagegen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// ProjectFilePath returns the project config file path inside projectDir.
func ProjectFilePath(projectDir string) string {
	return filepath.Join(projectDir, branding.ProjectConfig())
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes the settings for a run in projectDir. Missing files are
// not an error; malformed ones are.
func Load(projectDir string) error {
	envFile := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v = newViper()

	if err := readInto(v, FilePath(), false); err != nil {
		return err
	}
	if err := readInto(v, ProjectFilePath(projectDir), true); err != nil {
		return err
	}
	return nil
}

func readInto(nv *viper.Viper, path string, merge bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	nv.SetConfigFile(path)
	var err error
	if merge {
		err = nv.MergeInConfig()
	} else {
		err = nv.ReadInConfig()
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		SrcDir:         v.GetString(KeySrcDir),
		ComponentAlias: v.GetString(KeyComponentAlias),
	}
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Set writes a config key-value pair to the user config file. Project and
// environment values are left out of the written file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// A bare instance so the merged project file is not written back.
	uv := viper.New()
	uv.SetConfigType(fileType)
	if err := readInto(uv, configFile, false); err != nil {
		return err
	}
	uv.Set(key, value)

	if err := uv.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	v.Set(key, value)
	return nil
}
