// Package config loads the tracker's settings from .env files, the YAML
// config file, the environment and command-line flags, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/apimgr/employee-tracker/src/database"
	"github.com/apimgr/employee-tracker/src/logging"
	"github.com/apimgr/employee-tracker/src/paths"
)

// Config is the effective configuration
type Config struct {
	Database database.Config `mapstructure:"database" yaml:"database"`
	Logging  logging.Config  `mapstructure:"logging" yaml:"logging"`
	Output   OutputConfig    `mapstructure:"output" yaml:"output"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color string `mapstructure:"color" yaml:"color"` // auto, always, never
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	db := database.DefaultConfig()
	v.SetDefault("database.driver", db.Driver)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", db.Host)
	v.SetDefault("database.port", db.Port)
	v.SetDefault("database.name", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", db.SSLMode)
	v.SetDefault("database.data_dir", paths.DataDir())
	v.SetDefault("database.max_open", db.MaxOpen)
	v.SetDefault("database.max_idle", db.MaxIdle)
	v.SetDefault("database.lifetime", db.Lifetime)
	v.SetDefault("database.auto_migrate", db.AutoMigrate)

	lg := logging.DefaultConfig()
	v.SetDefault("logging.level", lg.Level)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", lg.MaxSize)
	v.SetDefault("logging.max_files", lg.MaxFiles)

	v.SetDefault("output.color", "auto")
}

// New builds a viper instance with defaults, environment bindings and, when
// it exists, the config file at configFile. A missing file is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	if err := BindEnv(v); err != nil {
		return nil, err
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config %s: %w", configFile, err)
			}
		}
	}
	return v, nil
}

// Decode unmarshals the configuration held by v without validating it
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Masked returns a copy safe to print: the password and any password inside
// the DSN are hidden
func (c *Config) Masked() *Config {
	out := *c
	if out.Database.Password != "" {
		out.Database.Password = database.MaskedPassword
	}
	out.Database.DSN = database.MaskDSN(out.Database.DSN)
	return &out
}

// YAML renders the masked configuration
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c.Masked())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const defaultFile = `# employee-tracker configuration
database:
  # postgres, mysql, sqlite, libsql, mssql
  driver: postgres
  # a full connection string wins over the fields below
  dsn: ""
  host: localhost
  # 0 picks the driver default (5432, 3306, 1433)
  port: 0
  name: ""
  user: ""
  password: ""
  ssl_mode: disable
  max_open: 1
  max_idle: 1
  lifetime: 0
  auto_migrate: true

logging:
  # debug, info, warn, error
  level: warn
  file: ""
  max_size: 10
  max_files: 5

output:
  # auto, always, never
  color: auto
`

// WriteDefault creates a commented default config file at path. An existing
// file is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := paths.EnsureFile(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultFile), 0600)
}
