package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"walletlink/internal/config"
	"walletlink/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	command := flag.String("command", "up", "migration command: up, down, status or seed")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -command=down")
	migrationsDir := flag.String("migrations", "", "migrations directory (default db/migrations)")
	seedsDir := flag.String("seeds", "", "seeds directory (default db/seeds)")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	dbCfg := config.LoadDatabaseConfig()

	db, err := sql.Open("postgres", dbCfg.URL())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	err = run(database.NewMigrationRunner(db).WithPaths(*migrationsDir, *seedsDir), *command, *steps)
	db.Close()
	if err != nil {
		logger.Error("Migration command failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(runner *database.MigrationRunner, command string, steps int) error {
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := runner.RunMigrations(); err != nil {
			return err
		}
		return runner.LoadSeeds()
	case "down":
		return runner.Rollback(steps)
	case "seed":
		return runner.LoadSeeds()
	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		slog.Info("Migration status", "version", version, "dirty", dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
