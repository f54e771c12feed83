// Package logging sets up the structured file logger and the operation ids
// that correlate the log lines of one menu cycle.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apimgr/employee-tracker/src/paths"
)

// Config holds logging configuration
type Config struct {
	Level    string `mapstructure:"level" yaml:"level"`         // debug, info, warn, error (default: warn)
	File     string `mapstructure:"file" yaml:"file"`           // log file path (empty = {log_dir}/cli.log)
	MaxSize  int    `mapstructure:"max_size" yaml:"max_size"`   // max log file size in MB (default: 10)
	MaxFiles int    `mapstructure:"max_files" yaml:"max_files"` // max rotated files to keep (default: 5)
	Debug    bool   `mapstructure:"-" yaml:"-"`                 // --debug: force debug level and mirror to stderr
}

// DefaultConfig returns default logging configuration
func DefaultConfig() Config {
	return Config{
		Level:    "warn",
		MaxSize:  10,
		MaxFiles: 5,
	}
}

// ParseLevel maps a config level name to a slog level, defaulting to warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Logger wraps the slog logger and its rotating file
type Logger struct {
	*slog.Logger
	file *lumberjack.Logger
	path string
}

// Init creates the JSON logger writing to a rotating file. With Debug set the
// level is forced to debug and every line is mirrored to stderr.
func Init(cfg Config) (*Logger, error) {
	logPath := cfg.File
	if logPath == "" {
		logPath = paths.LogFile()
	}
	logPath = paths.ExpandHome(logPath)

	if err := paths.EnsureFile(logPath); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 5
	}

	rotating := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize, // MB
		MaxBackups: maxFiles,
		MaxAge:     30, // days
		Compress:   true,
	}

	level := ParseLevel(cfg.Level)
	var w io.Writer = rotating
	if cfg.Debug {
		level = slog.LevelDebug
		w = io.MultiWriter(rotating, os.Stderr)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler),
		file:   rotating,
		path:   logPath,
	}, nil
}

// Path returns the log file path
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything, for tests and
// commands that run before logging is configured
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewOpID returns a new, time-sortable operation id
func NewOpID() string {
	return ulid.Make().String()
}
