package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"ledger-agent/internal/config"
	"ledger-agent/internal/database"

	_ "github.com/lib/pq"
)

const usage = `usage: ledger-migrate <command>

commands:
  up           apply every pending migration
  down [n]     roll back n migrations (default 1)
  status       print the current schema version
  seed         load db/seeds/*.sql
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Args(), logger); err != nil {
		logger.Error("ledger-migrate failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, logger *slog.Logger) error {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	command := args[0]
	if command == "seed" {
		cfg.Database.Seed = true
	}

	runner := database.NewMigrationRunner(db, &cfg.Database, logger)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.Up()

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[1], err)
			}
		}
		return runner.Down(steps)

	case "status":
		status, err := runner.Status()
		if err != nil {
			return err
		}
		if status.Pristine {
			fmt.Println("no migrations applied")
			return nil
		}
		fmt.Printf("version %d (dirty: %t)\n", status.Version, status.Dirty)
		return nil

	case "seed":
		return runner.LoadSeeds(ctx)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
