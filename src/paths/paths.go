// Package paths resolves where the tracker keeps its config, data and logs.
// Linux and macOS follow XDG; Windows uses APPDATA/LOCALAPPDATA.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	projectOrg  = "apimgr"
	projectName = "employee-tracker"
)

// homeDir is replaced in tests
var homeDir = os.UserHomeDir

func home() string {
	h, _ := homeDir()
	return h
}

// ConfigDir returns the config directory
// Linux: ~/.config/apimgr/employee-tracker/
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), projectOrg, projectName)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, projectOrg, projectName)
	}
	return filepath.Join(home(), ".config", projectOrg, projectName)
}

// DataDir returns the data directory holding the SQLite file
// Linux: ~/.local/share/apimgr/employee-tracker/
func DataDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectOrg, projectName, "data")
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, projectOrg, projectName)
	}
	return filepath.Join(home(), ".local", "share", projectOrg, projectName)
}

// LogDir returns the log directory
// Linux: ~/.local/log/apimgr/employee-tracker/
func LogDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), projectOrg, projectName, "log")
	}
	return filepath.Join(home(), ".local", "log", projectOrg, projectName)
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "cli.yml")
}

// LogFile returns the default log file path
func LogFile() string {
	return filepath.Join(LogDir(), "cli.log")
}

// EnsureDirs creates the config, data and log directories
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), DataDir(), LogDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureFile creates the parent directories of path
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the home directory
func ExpandHome(path string) string {
	if path == "~" {
		return home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home(), path[2:])
	}
	return path
}

// ResolveConfigPath resolves the --config flag. Empty means the default
// file; relative names resolve inside ConfigDir.
func ResolveConfigPath(configFlag string) string {
	if configFlag == "" {
		return ConfigFile()
	}

	configFlag = ExpandHome(configFlag)
	if !filepath.IsAbs(configFlag) {
		configFlag = filepath.Join(ConfigDir(), configFlag)
	}
	return addExtIfNeeded(configFlag)
}

// addExtIfNeeded adds .yml when no extension was given, preferring an
// existing .yaml file
func addExtIfNeeded(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	if _, err := os.Stat(path + ".yaml"); err == nil {
		return path + ".yaml"
	}
	return path + ".yml"
}
