// Package app wires the storefront's dependencies together and runs the
// HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/furnworld/storefront/internal/auth"
	"github.com/furnworld/storefront/internal/catalog"
	"github.com/furnworld/storefront/internal/catalog/remote"
	"github.com/furnworld/storefront/internal/config"
	"github.com/furnworld/storefront/internal/event"
	handler "github.com/furnworld/storefront/internal/handler/http"
	postgresrepo "github.com/furnworld/storefront/internal/repository/postgres"
	redisrepo "github.com/furnworld/storefront/internal/repository/redis"
	"github.com/furnworld/storefront/internal/service"
	"github.com/furnworld/storefront/migrations"
	"github.com/furnworld/storefront/pkg/database"
	"github.com/furnworld/storefront/pkg/health"
	pkgkafka "github.com/furnworld/storefront/pkg/kafka"
	"github.com/furnworld/storefront/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	pool           *pgxpool.Pool
	producer       *pkgkafka.Producer
	store          *catalog.Store
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Initialize Redis client.
	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize PostgreSQL connection pool.
	pgCfg := database.PostgresConfig{
		Host:            cfg.PostgresHost,
		Port:            cfg.PostgresPort,
		User:            cfg.PostgresUser,
		Password:        cfg.PostgresPass,
		DBName:          cfg.PostgresDB,
		SSLMode:         cfg.PostgresSSL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: time.Duration(cfg.DBMaxConnLifetimeMins) * time.Minute,
		MaxConnIdleTime: time.Duration(cfg.DBMaxConnIdleTimeMins) * time.Minute,
	}

	pool, err := database.NewPostgresPool(ctx, &pgCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.Int("port", cfg.PostgresPort),
		slog.String("database", cfg.PostgresDB),
	)
	database.RegisterPoolMetrics(pool, "storefront")

	// Run database migrations.
	if err := database.RunMigrations(ctx, pool, migrations.FS, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("database migrations completed")

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Catalog store, optionally refreshed from the remote backend.
	var provider catalog.Provider
	if cfg.CatalogBackendURL != "" {
		provider = remote.New(remote.DefaultConfig(cfg.CatalogBackendURL), logger)
		logger.Info("remote catalog backend configured",
			slog.String("url", cfg.CatalogBackendURL),
		)
	}
	store := catalog.NewStore(provider, logger)

	// Build the dependency graph.
	cartTTL := time.Duration(cfg.CartTTL) * time.Hour
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Hour

	cartRepo := redisrepo.NewCartRepository(rdb, cartTTL)
	sessionRepo := redisrepo.NewSessionRepository(rdb, sessionTTL)
	productRepo := postgresrepo.NewProductRepository(pool)
	categoryRepo := postgresrepo.NewCategoryRepository(pool)
	bannerRepo := postgresrepo.NewBannerRepository(pool)
	offerRepo := postgresrepo.NewOfferRepository(pool)

	eventProducer := event.NewProducer(producer, logger)

	verifier, err := auth.NewStaticVerifier(auth.DefaultAccounts())
	if err != nil {
		return nil, fmt.Errorf("init credential verifier: %w", err)
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTAccessExpiryMin)*time.Minute)

	cartService := service.NewCartService(cartRepo, store, eventProducer, logger)
	catalogService := service.NewCatalogService(store, logger)
	authService := service.NewAuthService(verifier, jwtManager, sessionRepo, logger)
	adminService := service.NewAdminService(productRepo, categoryRepo, bannerRepo, offerRepo, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})

	// HTTP router.
	router := handler.NewRouter(
		cartService,
		catalogService,
		authService,
		adminService,
		healthHandler,
		logger,
		cfg.PprofAllowedCIDRs,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		pool:           pool,
		producer:       producer,
		store:          store,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and the catalog refresh loop, blocking until
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.refreshCatalog(ctx)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// refreshCatalog keeps the catalog store in sync with the remote backend.
// The initial refresh runs immediately so a configured backend takes over
// from the sample data as soon as it is reachable.
func (a *App) refreshCatalog(ctx context.Context) {
	if a.cfg.CatalogBackendURL == "" {
		return
	}

	interval := time.Duration(a.cfg.CatalogRefreshMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	a.store.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.store.Refresh(ctx)
		}
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	// Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	// Close database clients.
	a.pool.Close()
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	// Flush pending spans.
	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(shutdownCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
