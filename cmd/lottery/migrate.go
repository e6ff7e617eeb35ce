package main

import (
	pgStorage "solana-lottery/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(cc *cliContext, load func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Apply the embedded PostgreSQL schema",
		Args:    cobra.NoArgs,
		PreRunE: load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := pgStorage.NewPool(cmd.Context(), cc.cfg.Database, cc.log)
			if err != nil {
				return err
			}
			defer pool.Close()

			return pgStorage.Migrate(cmd.Context(), pool, cc.log)
		},
	}
}
