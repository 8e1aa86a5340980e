// Package config resolves the application configuration. This is the only
// place the environment is consulted; everything below the CLI receives
// explicit values.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Backend names a storage implementation.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Output format names.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the resolved application configuration.
type Config struct {
	// DataDir is where the collections live.
	DataDir string `mapstructure:"data_dir"`

	Storage StorageConfig `mapstructure:"storage"`
	Output  OutputConfig  `mapstructure:"output"`

	// MaxListItems caps list command output; zero means no limit.
	MaxListItems int `mapstructure:"max_list_items"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// OutputConfig controls rendering in the command layer.
type OutputConfig struct {
	Format     string `mapstructure:"format"`
	Colors     bool   `mapstructure:"colors"`
	Timestamps bool   `mapstructure:"timestamps"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Storage: StorageConfig{Backend: BackendJSON},
		Output: OutputConfig{
			Format:     FormatTable,
			Colors:     true,
			Timestamps: true,
		},
		MaxListItems: 0,
	}
}

// Load reads the config file, falling back to defaults when it does not
// exist. An empty path means the standard location.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ideavault", "config.yaml")
}

// defaultDataDir resolves the XDG data directory, falling back to
// ~/.local/share.
func defaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "ideavault-data"
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "ideavault")
}

// DatabasePath returns the SQLite file location inside the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "ideavault.db")
}
