package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Formatting settings
	Format FormatConfig `yaml:"format"`

	// Export settings
	Export ExportConfig `yaml:"export"`

	// AI text suggestion settings
	AI AIConfig `yaml:"ai"`
}

type StorageConfig struct {
	Path string `yaml:"path"` // Path to encrypted SQLite database
}

type FormatConfig struct {
	Locale string `yaml:"locale"` // BCP 47 locale for currency formatting
}

type ExportConfig struct {
	OutputDir string `yaml:"output_dir"` // Directory for exported PDFs
}

type AIConfig struct {
	Model          string `yaml:"model"`           // Generation model id
	TimeoutSeconds int    `yaml:"timeout_seconds"` // Per-request timeout
}

// DefaultConfigPath returns ~/.config/invoicegenius/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "invoicegenius", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "invoicegenius", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(homeDir, ".config", "invoicegenius", "invoicegenius.db"),
		},
		Format: FormatConfig{
			Locale: "en-IN",
		},
		Export: ExportConfig{
			OutputDir: filepath.Join(homeDir, ".config", "invoicegenius", "exports"),
		},
		AI: AIConfig{
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 20,
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML over defaults so absent keys keep their default values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (for storage, exports, etc.)
func (c *Config) EnsureDirectories() error {
	// Create database directory
	dbDir := filepath.Dir(c.Storage.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	// Create export output directory
	if err := os.MkdirAll(c.Export.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
