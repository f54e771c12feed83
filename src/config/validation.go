package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apimgr/employee-tracker/src/database"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

var colorModes = map[string]bool{"auto": true, "always": true, "never": true}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the settings needed before connecting
func (c *Config) Validate() error {
	if !database.IsSupportedDriver(c.Database.Driver) {
		return fmt.Errorf("%w: unsupported database driver %q (supported: %s)",
			ErrInvalid, c.Database.Driver, strings.Join(database.SupportedDrivers(), ", "))
	}
	if _, err := c.Database.BuildDSN(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port %d out of range", ErrInvalid, c.Database.Port)
	}
	if c.Database.MaxOpen < 0 || c.Database.MaxIdle < 0 || c.Database.Lifetime < 0 {
		return fmt.Errorf("%w: database pool settings must not be negative", ErrInvalid)
	}

	if lvl := strings.ToLower(c.Logging.Level); lvl != "" && !logLevels[lvl] {
		return fmt.Errorf("%w: logging.level %q (use debug, info, warn or error)", ErrInvalid, c.Logging.Level)
	}
	if mode := strings.ToLower(c.Output.Color); mode != "" && !colorModes[mode] {
		return fmt.Errorf("%w: output.color %q (use auto, always or never)", ErrInvalid, c.Output.Color)
	}
	return nil
}

// NoColor reports whether output.color disables colors
func (c *Config) NoColor() bool {
	return strings.EqualFold(c.Output.Color, "never")
}
