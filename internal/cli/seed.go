package cli

import (
	"context"
	"fmt"
	"log"

	"ethics-quiz-service/internal/config"
	"ethics-quiz-service/internal/infra/memory"
	pgcatalog "ethics-quiz-service/internal/infra/postgres"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
)

// NewSeedCmd loads the built-in question catalog into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the question catalog into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	catalog := memory.DefaultCatalog()
	if err := pgcatalog.SeedCatalog(ctx, pool, catalog); err != nil {
		return err
	}
	log.Printf("seeded %d questions", len(catalog))
	return nil
}
