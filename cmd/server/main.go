package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/maxviazov/mghl-recap-service/internal/config"
	"github.com/maxviazov/mghl-recap-service/internal/handler"
	"github.com/maxviazov/mghl-recap-service/internal/logger"
	"github.com/maxviazov/mghl-recap-service/internal/recap"
	"github.com/maxviazov/mghl-recap-service/internal/repository"
	pgrepo "github.com/maxviazov/mghl-recap-service/internal/repository/postgres"
	"github.com/maxviazov/mghl-recap-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  .env not loaded: %v", err)
	}

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectPgx, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Postgres connection failed")
	}
	defer connectPgx.Close()

	srv := newServer(cfg, appLogger, connectPgx)

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Int("window_hours", cfg.Recap.WindowHours).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Error().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.HTTP.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("👋 Service stopped")
}

// newServer wires repositories, services and routes into an http.Server.
func newServer(cfg *config.Config, appLogger zerolog.Logger, conn *repository.Repository) *http.Server {
	pool := conn.Pool()
	teams := pgrepo.NewTeamRepository(pool)
	players := pgrepo.NewPlayerRepository(pool)
	matches := pgrepo.NewMatchRepository(pool)
	stats := pgrepo.NewStatsRepository(pool)
	tx := pgrepo.NewTxManager(pool)

	engine := recap.NewEngine(cfg.Recap.Options, appLogger)
	svcs := handler.Services{
		Teams:   service.NewTeamService(teams, appLogger),
		Players: service.NewPlayerService(players, teams, appLogger),
		Matches: service.NewMatchService(matches, teams, tx, appLogger),
		Stats:   service.NewStatsService(stats, players, matches, tx, appLogger),
		Recaps: service.NewRecapService(service.RecapRepos{
			Matches: matches,
			Teams:   teams,
			Stats:   stats,
			Archive: pgrepo.NewRecapRepository(pool),
			Tx:      tx,
		}, engine, clockwork.NewRealClock(), time.Duration(cfg.Recap.WindowHours)*time.Hour, appLogger),
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger(appLogger))
	handler.Register(r, pgrepo.NewPinger(pool), svcs, handler.RateLimit(cfg.HTTP.RecapRate, cfg.HTTP.RecapBurst))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", handler.RequestIDHeader},
		ExposedHeaders: []string{handler.RequestIDHeader, "Retry-After"},
	})

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      c.Handler(r),
		ReadTimeout:  seconds(cfg.HTTP.ReadTimeout),
		WriteTimeout: seconds(cfg.HTTP.WriteTimeout),
		IdleTimeout:  seconds(cfg.HTTP.IdleTimeout),
	}
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
