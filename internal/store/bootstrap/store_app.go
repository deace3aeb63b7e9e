package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkgcache "github.com/ByeoliKim/star-shop/internal/pkg/cache"
	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/ByeoliKim/star-shop/internal/pkg/jwt"
	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/pkg/metrics"
	"github.com/ByeoliKim/star-shop/internal/store/application"
	storecache "github.com/ByeoliKim/star-shop/internal/store/infrastructure/cache"
	httpwrap "github.com/ByeoliKim/star-shop/internal/store/infrastructure/http"
	"github.com/ByeoliKim/star-shop/internal/store/infrastructure/postgres"
	"github.com/ByeoliKim/star-shop/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	shutdownTimeout = 5 * time.Second
)

type StoreApp struct {
	cfg    StoreConfig
	logger logging.Logger

	server *http.Server
	dbPool *pgxpool.Pool
}

func NewStoreApp(cfg StoreConfig, logger logging.Logger) *StoreApp {
	return &StoreApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *StoreApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	databaseURL := cfg.DBSettings.GetURL()

	if err := database.MigrateDatabase(databaseURL, migrations.FS, ".", "pgx", "postgres"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbPool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	a.dbPool = dbPool

	txManager := database.NewDelegateTxManager(dbPool, logger)

	catalogRepository := postgres.NewCatalogRepository(dbPool)
	profilesRepository := postgres.NewProfilesRepository(dbPool)
	ownershipRepository := postgres.NewOwnershipRepository(dbPool)
	purchaseProcessor := postgres.NewPurchaseProcessor()

	var catalogCache pkgcache.Cache
	switch cfg.CacheKind {
	case "redis":
		catalogCache = pkgcache.NewRedisCache(cfg.RedisSettings)
	default:
		catalogCache = pkgcache.NewMemoryCache()
	}
	cachedCatalog := storecache.NewCachedCatalog(catalogRepository, catalogCache, cfg.CacheTTL, logger)

	purchaseCase := application.NewPurchaseCase(
		catalogRepository,
		profilesRepository,
		ownershipRepository,
		purchaseProcessor,
		txManager,
		logger,
	)
	userStateCase := application.NewUserStateCase(profilesRepository, ownershipRepository)
	catalogCase := application.NewCatalogCase(cachedCatalog)

	storeMetrics := metrics.NewStoreMetrics(prometheus.NewRegistry())

	storeHandler := httpwrap.NewStoreHandler(purchaseCase, userStateCase, catalogCase, storeMetrics, logger)
	authMiddleware := httpwrap.NewAuthMiddleware(cfg.JwtSecret, jwt.NewJWTTokenParser(), logger)

	router := httpwrap.NewRouter(storeHandler, authMiddleware, storeMetrics)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *StoreApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
