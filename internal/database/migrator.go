package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded PostgreSQL migrations. The MongoDB store
// needs no migrations; its indexes are created at startup.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	if cfg.Database.Driver != config.DriverPostgres {
		logger.Info().Str("driver", cfg.Database.Driver).Msg("no migrations for driver, skipping")
		return nil
	}

	conn, err := pgx.Connect(ctx, PostgresDSN(cfg.Database.Postgres))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
