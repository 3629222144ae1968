package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ledger-agent/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

var (
	ErrMigrationsNotFound = errors.New("migrations directory not found")
	ErrDatabaseNotReady   = errors.New("database not ready")
)

// MigrationStatus is the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Pristine is true when no migration has ever been applied.
	Pristine bool
}

// MigrationRunner applies db/migrations and loads db/seeds
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
	logger         *slog.Logger
}

// NewMigrationRunner creates a runner; empty paths fall back to db/migrations and db/seeds
func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) *MigrationRunner {
	if logger == nil {
		logger = slog.Default()
	}

	runner := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		logger:         logger,
	}

	if cfg != nil {
		if cfg.MigrationsPath != "" {
			runner.migrationsPath = cfg.MigrationsPath
		}
		if cfg.SeedsPath != "" {
			runner.seedsPath = cfg.SeedsPath
		}
		runner.seed = cfg.Seed
	}

	return runner
}

// WaitForDatabase pings until the database answers, the retries run out or ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	mr.logger.Info("waiting for database")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			mr.logger.Info("database is ready")
			return nil
		}

		mr.logger.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrDatabaseNotReady, ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("%w after %d attempts", ErrDatabaseNotReady, maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// Up applies every pending migration. A missing migrations directory is skipped.
func (mr *MigrationRunner) Up() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("applied migrations", "from_version", version, "to_version", newVersion)

	return nil
}

// Down rolls back the given number of migrations
func (mr *MigrationRunner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}

	mr.logger.Info("rolled back migrations", "steps", steps)
	return nil
}

// LoadSeeds executes every db/seeds/*.sql file in name order. A failing file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) error {
	if !mr.seed {
		mr.logger.Info("seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Warn("seeds directory not found, skipping seed data", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	if len(files) == 0 {
		mr.logger.Info("no seed files found", "path", mr.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			mr.logger.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		mr.logger.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// Status returns the current migration version
func (mr *MigrationRunner) Status() (MigrationStatus, error) {
	m, err := mr.newMigrate()
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{Pristine: true}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to get migration version: %w", err)
	}

	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

// RunMigrationsIfEnabled waits for the database, migrates and seeds when AUTO_MIGRATE is set
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) error {
	if cfg == nil || !cfg.AutoMigrate {
		slog.Info("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg, slog.Default())

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(ctx); err != nil {
		slog.Warn("seed data loading failed", "error", err)
	}

	return nil
}
