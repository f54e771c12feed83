package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/apimgr/employee-tracker/src/database"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|version]",
		Short:     "Apply, roll back or show the schema version",
		Long:      "migrate applies pending migrations (up, the default), rolls back the latest one (down) or prints the current schema version along with every known migration (version).",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			return opts.withDatabase(cmd, false, func(ctx context.Context, s *session) error {
				return migrate(ctx, database.NewMigrator(s.db), action, s.out)
			})
		},
	}
}

func migrate(ctx context.Context, m *database.Migrator, action string, out io.Writer) error {
	switch action {
	case "up":
		applied, err := m.Migrate(ctx)
		if err != nil {
			return err
		}
		if applied == 0 {
			fmt.Fprintln(out, "Schema is up to date.")
		} else {
			fmt.Fprintf(out, "Applied %d migration(s).\n", applied)
		}
	case "down":
		if err := m.Rollback(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Rolled back 1 migration.")
	case "version":
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}

	v, err := m.GetVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Schema version: %d (latest %d)\n", v, m.Latest())

	if action == "version" {
		for _, mig := range m.GetMigrations() {
			state := "pending"
			if mig.Version <= v {
				state = "applied"
			}
			fmt.Fprintf(out, "  %3d  %-8s %s\n", mig.Version, state, mig.Description)
		}
	}
	return nil
}
