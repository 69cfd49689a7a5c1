package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/eventos/internal/config"
	"github.com/geocoder89/eventos/internal/db"
	httpx "github.com/geocoder89/eventos/internal/http"
	"github.com/geocoder89/eventos/internal/http/handlers"
	"github.com/geocoder89/eventos/internal/observability"
	"github.com/geocoder89/eventos/internal/redisclient"
	"github.com/geocoder89/eventos/internal/repo/memory"
	"github.com/geocoder89/eventos/internal/repo/postgres"
	"github.com/geocoder89/eventos/internal/repo/redisrepo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type storage interface {
	handlers.EventsRepository
	Ping(ctx context.Context) error
}

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if cfg.OtelEnabled {
		shutdownTracer, err := observability.InitTracer(context.Background(), observability.TracerConfig{
			ServiceName: cfg.ServiceName,
			Environment: cfg.Env,
			Endpoint:    cfg.OtelEndpoint,
			SampleRatio: cfg.OtelSampleRatio,
		})
		if err != nil {
			log.Error("tracer init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := config.WithTimeout(5 * time.Second)
				defer cancel()
				_ = shutdownTracer(ctx)
			}()
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	prom := observability.NewProm(reg)

	store, closeStore, err := openStorage(cfg, prom)
	if err != nil {
		log.Error("storage init failed", "backend", cfg.Storage, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	router := httpx.NewRouter(log, cfg, httpx.Deps{
		Repo:     store,
		Ping:     store.Ping,
		Registry: reg,
		Prom:     prom,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
		return
	}

	log.Info("shutdown complete")
}

func openStorage(cfg config.Config, prom *observability.Prom) (storage, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := db.NewPool(cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		ctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()

		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return postgres.NewEventsRepo(pool, prom), pool.Close, nil

	case config.StorageRedis:
		client := redisclient.New(redisclient.Config{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.RedisNamespace,
			Timeout:   cfg.RedisTimeout,
		})

		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}

		return redisrepo.NewEventsRepo(client, ""), func() { _ = client.Close() }, nil

	default:
		return memory.NewEventsRepo(), func() {}, nil
	}
}
