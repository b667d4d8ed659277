package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"trendx-service/internal/repository"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending *.up.sql migration in lexical order and
// records it in schema_migrations.
func Migrate(ctx context.Context, db repository.DBTX, logger *slog.Logger) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	return migrate(ctx, db, sub, logger)
}

func migrate(ctx context.Context, db repository.DBTX, fsys fs.FS, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	var upMigrations []string
	for _, file := range files {
		if name := file.Name(); strings.HasSuffix(name, ".up.sql") {
			upMigrations = append(upMigrations, name)
		}
	}

	sort.Strings(upMigrations)

	query := "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)"

	for _, migration := range upMigrations {
		var exists bool

		if err := db.QueryRow(ctx, query, migration).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", migration, err)
		}

		if exists {
			logger.Debug("migration already applied", "version", migration)
			continue
		}

		sqlBytes, err := fs.ReadFile(fsys, migration)
		if err != nil {
			return fmt.Errorf("failed to read sql file %s: %w", migration, err)
		}

		if _, err := db.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration, err)
		}

		insertQuery := "INSERT INTO schema_migrations (version) VALUES ($1)"
		if _, err := db.Exec(ctx, insertQuery, migration); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", migration, err)
		}

		logger.Info("migration applied", "version", migration)
	}

	return nil
}
