// Command migrate applies the embedded goose migrations to the configured database.
//
//	migrate [-config config.yaml] up|down|status|version|redo|reset
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/maxviazov/mghl-recap-service/internal/config"
	"github.com/maxviazov/mghl-recap-service/internal/logger"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	"github.com/maxviazov/mghl-recap-service/migrations"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  .env not loaded: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	l := appLogger.With().Str("module", "migrate").Str("command", command).Logger()

	db, err := sql.Open("pgx", repository.DSN(cfg.Postgres))
	if err != nil {
		l.Fatal().Err(err).Msg("open database failed")
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		l.Fatal().Err(err).Msg("goose dialect")
	}
	if err := goose.RunContext(context.Background(), command, db, migrations.Dir, flag.Args()[min(1, flag.NArg()):]...); err != nil {
		l.Fatal().Err(err).Msg("migration failed")
	}
	l.Info().Msg("✅ migrations done")
}
