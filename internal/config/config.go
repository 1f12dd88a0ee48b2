package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aoiro-dev/aoiro/internal/accounts"
)

// FileName is the config file kept in every book directory.
const FileName = "aoiro.yaml"

// EnvFile holds per-book overrides next to the config file.
const EnvFile = ".env"

// Environment variables that override the file.
const (
	EnvDatabase      = "AOIRO_DATABASE"
	EnvBackupDir     = "AOIRO_BACKUP_DIR"
	EnvLogLevel      = "AOIRO_LOG_LEVEL"
	EnvSalesCode     = "AOIRO_SALES_CODE"
	EnvPurchasesCode = "AOIRO_PURCHASES_CODE"
)

// Config represents the top-level aoiro.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Storage   StorageConfig   `yaml:"storage"`
	Statement StatementConfig `yaml:"statement"`
	Log       LogConfig       `yaml:"log"`
}

// BusinessConfig identifies the sole proprietor's business.
type BusinessConfig struct {
	Name  string `yaml:"name"`
	Owner string `yaml:"owner,omitempty"`
}

// StorageConfig locates the database and its backups. Relative paths are
// resolved against the book directory.
type StorageConfig struct {
	Database  string `yaml:"database"`
	BackupDir string `yaml:"backup_dir"`
}

// StatementConfig picks the accounts broken out monthly on the annual statement.
type StatementConfig struct {
	SalesCode     int `yaml:"sales_code"`
	PurchasesCode int `yaml:"purchases_code"`
}

// LogConfig sets the logrus level name.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads an aoiro.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Storage: StorageConfig{
			Database:  "books.db",
			BackupDir: "backups",
		},
		Statement: StatementConfig{
			SalesCode:     accounts.SalesCode,
			PurchasesCode: accounts.PurchasesCode,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyEnv overrides cfg from the process environment and then from
// envFile. Variables already set in the process win over the file. A
// missing envFile is not an error.
func ApplyEnv(cfg *Config, envFile string) error {
	vars, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup(EnvDatabase); ok {
		cfg.Storage.Database = v
	}
	if v, ok := lookup(EnvBackupDir); ok {
		cfg.Storage.BackupDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	for key, dst := range map[string]*int{
		EnvSalesCode:     &cfg.Statement.SalesCode,
		EnvPurchasesCode: &cfg.Statement.PurchasesCode,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		code, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = code
	}
	return nil
}

// LoadDir loads the config of the book in dir and applies its overrides.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, filepath.Join(dir, EnvFile)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabasePath resolves the database file against the book directory.
func (c *Config) DatabasePath(dir string) string {
	return resolve(dir, c.Storage.Database)
}

// BackupPath resolves the backup directory against the book directory.
func (c *Config) BackupPath(dir string) string {
	return resolve(dir, c.Storage.BackupDir)
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
