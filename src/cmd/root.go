// Package cmd wires the employee-tracker command line
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/employee-tracker/src/common/terminal"
	"github.com/apimgr/employee-tracker/src/common/version"
	"github.com/apimgr/employee-tracker/src/config"
	"github.com/apimgr/employee-tracker/src/database"
	"github.com/apimgr/employee-tracker/src/display"
	"github.com/apimgr/employee-tracker/src/logging"
	"github.com/apimgr/employee-tracker/src/paths"
	"github.com/apimgr/employee-tracker/src/prompt"
	"github.com/apimgr/employee-tracker/src/tracker"
)

// ErrNotInteractive is returned when the menu is started without a terminal
var ErrNotInteractive = errors.New("stdin is not a terminal; the menu needs an interactive session")

// options holds the global flags
type options struct {
	cfgFile string
	driver  string
	dsn     string
	debug   bool
	noColor bool

	envFiles []string
	stdin    *os.File
	stdout   *os.File
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{
		envFiles: config.DefaultEnvFiles,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
	}

	root := &cobra.Command{
		Use:           version.ProjectName,
		Short:         "Manage departments, roles and employees from the terminal",
		Long:          `employee-tracker is an interactive menu for viewing and editing a company's departments, roles and employees stored in a SQL database.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file path (default "+paths.ConfigFile()+")")
	flags.StringVar(&opts.driver, "driver", "", "database driver: "+strings.Join(database.SupportedDrivers(), ", "))
	flags.StringVar(&opts.dsn, "dsn", "", "database connection string")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level and mirror logs to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

// settings loads .env files, the config file, the environment and the
// flags into one viper instance
func (o *options) settings(cmd *cobra.Command) (*viper.Viper, error) {
	if _, err := config.LoadEnv(o.envFiles...); err != nil {
		return nil, err
	}

	v, err := config.New(paths.ResolveConfigPath(o.cfgFile))
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("database.driver", flags.Lookup("driver")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("database.dsn", flags.Lookup("dsn")); err != nil {
		return nil, err
	}
	return v, nil
}

// load returns the validated configuration
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	v, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	cfg.Logging.Debug = o.debug
	return cfg, nil
}

// colorEnabled resolves --no-color, output.color and the terminal
func (o *options) colorEnabled(cfg *config.Config) bool {
	if o.noColor || cfg.NoColor() {
		return false
	}
	if strings.EqualFold(cfg.Output.Color, "always") {
		return true
	}
	return display.ColorEnabled(o.stdout, false)
}

// openDatabase connects and, when enabled, applies pending migrations
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Database.Describe(), err)
	}
	logger.Info("database connected", "driver", db.Driver(), "target", cfg.Database.Describe(), "remote", db.IsRemote())

	if cfg.Database.AutoMigrate {
		applied, err := database.NewMigrator(db).Migrate(ctx)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		if applied > 0 {
			logger.Info("migrations applied", "count", applied)
		}
	}
	return db, nil
}

// session is what a command gets once config, logging and the database are up
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *database.DB
	out    io.Writer
}

// withDatabase runs fn with logging and an open database, closing both
// after. autoMigrate false skips the startup migration regardless of config.
func (o *options) withDatabase(cmd *cobra.Command, autoMigrate bool, fn func(ctx context.Context, s *session) error) error {
	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}
	if !autoMigrate {
		cfg.Database.AutoMigrate = false
	}

	logger, err := logging.Init(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Debug("logging started", "command", cmd.Name(), "path", logger.Path())

	ctx := cmd.Context()
	db, err := openDatabase(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Error("startup failed", "command", cmd.Name(), "error", err)
		return err
	}
	defer db.Close()

	return fn(ctx, &session{cfg: cfg, logger: logger.Logger, db: db, out: cmd.OutOrStdout()})
}

func runTracker(cmd *cobra.Command, opts *options) error {
	if !terminal.IsInteractive(opts.stdin) {
		return ErrNotInteractive
	}

	return opts.withDatabase(cmd, true, func(ctx context.Context, s *session) error {
		out := display.NewPrinter(opts.stdout, opts.colorEnabled(s.cfg))
		out.PrintBanner(display.Banner{
			Version:  version.Get().Version,
			Database: s.cfg.Database.Describe(),
		}, terminal.GetSize(opts.stdout))
		if err := warnPendingMigrations(ctx, s.db, out); err != nil {
			return err
		}

		repo := database.NewRepository(s.db)
		return tracker.New(repo, prompt.NewTerminal(opts.stdin, opts.stdout), out, s.logger).Run(ctx)
	})
}

// warnPendingMigrations tells the user when the schema is behind and
// auto_migrate is off
func warnPendingMigrations(ctx context.Context, db *database.DB, out *display.Printer) error {
	m := database.NewMigrator(db)
	v, err := m.GetVersion(ctx)
	if err != nil {
		return err
	}
	if v < m.Latest() {
		out.Warn(fmt.Sprintf("Schema version %d is behind %d; run `%s migrate` to update it.", v, m.Latest(), version.ProjectName))
	}
	return nil
}
