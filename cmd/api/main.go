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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/pradom/storefront/api/routes"
	"github.com/pradom/storefront/internal/basket"
	"github.com/pradom/storefront/internal/catalog"
	"github.com/pradom/storefront/internal/storefront"
	"github.com/pradom/storefront/pkg/config"
	"github.com/pradom/storefront/pkg/instance"
	"github.com/pradom/storefront/pkg/logger"
	"github.com/pradom/storefront/pkg/metrics"
	"github.com/pradom/storefront/pkg/redis"
)

const janitorInterval = 5 * time.Minute

func main() {
	os.Exit(run())
}

// run wires and serves the API until a signal arrives. It returns the process exit code so
// deferred cleanup, such as closing Redis, happens before main exits.
func run() int {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		return 1
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Instance:    instance.ID(),
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		return 1
	}
	logg.Info(logg.WithFields(context.Background(), map[string]any{
		"products":   cat.Len(),
		"categories": len(cat.Categories()),
		"source":     catalogSource(cfg.Catalog.Path),
	}), "catalog loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	basketMetrics := metrics.NewBasketMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	var (
		store       storefront.Store
		memoryStore *storefront.MemoryStore
		redisPinger redis.Pinger
	)
	if cfg.Session.UsesRedis() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			return 1
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		store = storefront.NewRedisStore(redisClient, cfg.Session.TTL, logg)
		redisPinger = redisClient
	} else {
		memoryStore = storefront.NewMemoryStore(cfg.Session.TTL)
		store = memoryStore
	}

	service, err := storefront.NewService(storefront.ServiceParams{
		Catalog:   cat,
		Store:     store,
		Observers: []basket.Observer{storefront.RecorderObserver(basketMetrics)},
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create storefront service", err)
		return 1
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"session_store": cfg.Session.Store,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, redisPinger, cat, service, httpMetrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		logg.Info(ctx, "api server shutting down gracefully")
		return server.Shutdown(shutdownCtx)
	})
	if memoryStore != nil {
		group.Go(func() error {
			return memoryStore.RunJanitor(groupCtx, janitorInterval)
		})
	}

	if err := group.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		return 1
	}
	return 0
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
