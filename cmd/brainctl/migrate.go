package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/config"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := openPool(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := postgres.MigrationStatus(ctx, pool)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tFILE\tSTATE\tAPPLIED AT")
			for _, s := range statuses {
				at := ""
				if !s.AppliedAt.IsZero() {
					at = s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.Source.Path, s.State, at)
			}
			return w.Flush()
		},
	})
	return cmd
}

func openPool(cmd *cobra.Command) (*pgxpool.Pool, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Backend != config.StorePostgres {
		return nil, errors.New("migrate needs store.backend = postgres")
	}
	dbCfg := cfg.Database
	dbCfg.AutoMigrate = false
	return postgres.NewPool(cmd.Context(), newLogger(cmd, cfg), dbCfg)
}
