package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for ecotech.
type Config struct {
	BaseDir string        `toml:"base_dir"`
	LogDir  string        `toml:"log_dir"`
	Storage StorageConfig `toml:"storage"`
	Auth    AuthConfig    `toml:"auth"`
	Air     AirConfig     `toml:"air"`
	Report  ReportConfig  `toml:"report"`
}

// StorageConfig selects the relational backend.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type StorageConfig struct {
	Type string `toml:"type"` // "sqlite", "postgres", or "memory"

	// SQLite-specific (only used when Type == "sqlite")
	DataDir string `toml:"data_dir,omitempty"`

	// Postgres-specific (only used when Type == "postgres")
	DSN string `toml:"dsn,omitempty"`
}

// AuthConfig holds credential-handling settings.
type AuthConfig struct {
	// EmployeeHash selects the digest strategy for the employee table:
	// "bcrypt" (default) or "sha256" for legacy-compatible digests.
	// Account digests always use bcrypt.
	EmployeeHash string `toml:"employee_hash"`
	// MaxAttempts bounds interactive login retries before the process exits.
	MaxAttempts int `toml:"max_attempts"`
}

// AirConfig holds the air-quality API settings.
type AirConfig struct {
	BaseURL     string `toml:"base_url"`
	Token       string `toml:"token"`
	DefaultCity string `toml:"default_city"`
}

// ReportConfig holds report export settings.
type ReportConfig struct {
	// OutputDir is where exported CSV reports land; defaults to BaseDir.
	OutputDir string `toml:"output_dir,omitempty"`
}

// NewConfig creates a Config with defaults rooted at baseDir.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		Storage: StorageConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Auth: AuthConfig{
			EmployeeHash: "bcrypt",
			MaxAttempts:  3,
		},
		Air: AirConfig{
			BaseURL:     "https://api.waqi.info",
			Token:       "demo",
			DefaultCity: "Mexico",
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
