package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/event"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/handler/http"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/metrics"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository"
	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/document"
	"github.com/vncsmyrnk/ballotbox/internal/config"
	"github.com/vncsmyrnk/ballotbox/internal/core/ports"
	"github.com/vncsmyrnk/ballotbox/internal/core/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		logger.Error("failed to open document store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("document store ready", "driver", cfg.Store.Driver, "database", cfg.Store.Database)

	var publisher ports.VotePublisher
	if cfg.Kafka.Enabled() {
		publisher = event.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		logger.Info("publishing vote events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("ballotbox", registry)

	userRepo := document.NewUserRepository(store)
	voteRepo := document.NewVoteRepository(store)

	handler := http.NewHandler(http.Dependencies{
		Users:   services.NewUserService(userRepo, m),
		Votes:   services.NewVoteService(voteRepo, publisher, m, logger),
		Results: services.NewResultsService(voteRepo),
		Store:   store,
		Metrics: m,
		Logger:  logger,
	})
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
