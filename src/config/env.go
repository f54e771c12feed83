package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the generic environment overrides, e.g.
// EMPLOYEE_TRACKER_DATABASE_DRIVER
const EnvPrefix = "EMPLOYEE_TRACKER"

// DefaultEnvFiles are read from the working directory on startup
var DefaultEnvFiles = []string{".env.local", ".env"}

// envAliases maps config keys to the conventional variables also honored
var envAliases = map[string][]string{
	"database.dsn":      {"DATABASE_URL"},
	"database.host":     {"PG_HOST"},
	"database.port":     {"PG_PORT"},
	"database.name":     {"PG_DATABASE"},
	"database.user":     {"PG_USER"},
	"database.password": {"PG_PASSWORD"},
}

// LoadEnv loads .env style files into the process environment. Variables
// already set are kept, so earlier files and the real environment win.
// Missing files are skipped.
func LoadEnv(files ...string) ([]string, error) {
	var loaded []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("load %s: %w", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}

// BindEnv binds every config key to EMPLOYEE_TRACKER_<KEY> and, where one
// exists, to its conventional alias. The prefixed name wins.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, aliases := range envAliases {
		names := append([]string{envName(key)}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
