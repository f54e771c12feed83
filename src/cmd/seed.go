package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apimgr/employee-tracker/src/database"
)

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo departments, roles and employees",
		Long:  "seed fills an empty database with four departments, their roles and a small manager chain. It refuses to run when any department, role or employee already exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDatabase(cmd, true, func(ctx context.Context, s *session) error {
				err := database.NewRepository(s.db).Seed(ctx)
				if errors.Is(err, database.ErrNotEmpty) {
					return fmt.Errorf("%w; seed only runs on an empty database", err)
				}
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				s.logger.Info("demo data inserted")
				fmt.Fprintln(s.out, "Demo data inserted.")
				return nil
			})
		},
	}
}
