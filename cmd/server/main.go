package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"consentry/internal/consent"
	consenthandler "consentry/internal/consent/handler"
	"consentry/internal/jwttoken"
	"consentry/internal/location"
	locationhandler "consentry/internal/location/handler"
	"consentry/internal/platform/config"
	"consentry/internal/platform/database"
	"consentry/internal/platform/httpserver"
	"consentry/internal/platform/logger"
	"consentry/internal/platform/metrics"
	"consentry/internal/platform/redis"
	"consentry/internal/user"
	"consentry/migrations"

	httptransport "consentry/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Memory stores are the default so the binary runs with zero
	// infrastructure; DATABASE_URL and REDIS_URL switch on the real backends.
	var (
		consentStore  consent.Store  = consent.NewInMemoryStore()
		userStore     user.Store     = user.NewInMemoryStore()
		locationStore location.Store = location.NewInMemoryStore()
	)

	if cfg.DatabaseURL != "" {
		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
		pool, err := database.New(dbCfg)
		if err != nil {
			log.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool.DB(), migrations.FS); err != nil {
			log.Error("database migration failed", "error", err)
			os.Exit(1)
		}

		consentStore = consent.NewPostgresStore(pool.DB())
		userStore = user.NewPostgresStore(pool.DB())
		log.Info("using postgres-backed stores")
	}

	if cfg.RedisURL != "" {
		redisClient, err := redis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		locationStore = location.NewRedisStore(redisClient.Client)
		log.Info("using redis-backed location store")
	}

	tokenService := jwttoken.NewService(cfg.JWTSigningKey, "consentry", "consentry")
	verifier := jwttoken.NewVerifierAdapter(tokenService)

	consentService := consent.NewService(consentStore, userStore)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Metrics:        m,
		AllowedOrigins: cfg.CORSOrigins,
		Consent:        consenthandler.New(consentService, log, m, verifier),
		Location:       locationhandler.New(locationStore, log, m),
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
