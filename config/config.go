package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FenceTagAuto derives the fence language tag from each file's extension.
const FenceTagAuto = "auto"

// Binary handling modes for files that fail the text sniff.
const (
	BinaryFail = "fail"
	BinarySkip = "skip"
)

// Config holds all configuration for the overview tool.
type Config struct {
	Scan     ScanConfig     `yaml:"scan"`
	Render   RenderConfig   `yaml:"render"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScanConfig holds directory traversal configuration.
type ScanConfig struct {
	Root     string   `yaml:"root"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// RenderConfig holds output formatting configuration.
type RenderConfig struct {
	FenceTag string `yaml:"fence_tag"` // "auto" or a literal tag such as "rust"
	Header   string `yaml:"header"`
	Binary   string `yaml:"binary"` // "fail" or "skip"
	Output   string `yaml:"output"` // empty means stdout
}

// SnapshotConfig holds snapshot store configuration. When enabled,
// generate refreshes the snapshot after each run.
type SnapshotConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Root:     "src",
			Includes: []string{"**/*"},
			Excludes: []string{},
		},
		Render: RenderConfig{
			FenceTag: FenceTagAuto,
			Header:   "Directory tree:",
			Binary:   BinaryFail,
		},
		Snapshot: SnapshotConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Verbose: false,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for overview.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "overview.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".overview", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SnapshotDBPath returns the path to the snapshot database.
func SnapshotDBPath(dir string) string {
	return filepath.Join(dir, ".overview", "snapshot.db")
}

// EnsureStateDir ensures the .overview directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".overview"), 0755)
}
