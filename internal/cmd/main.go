package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/gateway"
	"github.com/eugeneboyah/LIb-Score/internal/scheduler"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := setupDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer pool.Close()

	// Hub fans events out to local viewer sessions
	hub := gateway.NewHub(gateway.DefaultConfig())
	go hub.Run(ctx)

	// The bus carries every notification: always the local hub, plus
	// the NATS bridge when other instances need the events too
	bus := events.Fanout{hub}

	if config.NATS.Enabled {
		natsConfig := gateway.DefaultNATSConfig()
		natsConfig.URL = getEnv("NATS_URL", config.NATS.URL)
		if config.NATS.SubjectPrefix != "" {
			natsConfig.SubjectPrefix = config.NATS.SubjectPrefix
		}

		bridge, err := gateway.NewNATSBridge(hub, natsConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start NATS bridge")
		}
		defer bridge.Close()

		bus = append(bus, bridge)
	}

	services := setupServices(pool, bus, hub)

	schedOpts := []scheduler.Option{}
	if config.Scheduler.Interval > 0 {
		schedOpts = append(schedOpts, scheduler.WithInterval(config.Scheduler.Interval))
	}
	if config.Scheduler.MatchDuration > 0 {
		schedOpts = append(schedOpts, scheduler.WithMatchDuration(config.Scheduler.MatchDuration))
	}
	sched := scheduler.New(services.MatchRepo, bus, schedOpts...)
	go func() {
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("scheduler exited")
		}
	}()

	server := setupServer(services)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
