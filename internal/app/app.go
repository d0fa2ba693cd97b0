package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/lol-stats/internal/config"
	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"github.com/riskibarqy/lol-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/lol-stats/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/lol-stats/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/lol-stats/internal/platform/cache"
	"github.com/riskibarqy/lol-stats/internal/platform/logging"
	"github.com/riskibarqy/lol-stats/internal/platform/resilience"
	"github.com/riskibarqy/lol-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DBOptions describes the match store connection.
type DBOptions struct {
	Driver                string
	URL                   string
	MaxOpenConns          int
	DisablePreparedBinary bool
}

func DBOptionsFromConfig(cfg config.Config) DBOptions {
	return DBOptions{
		Driver:                cfg.DBDriver,
		URL:                   cfg.DBURL,
		MaxOpenConns:          cfg.DBMaxOpenConns,
		DisablePreparedBinary: cfg.DBDisablePreparedBinary,
	}
}

// OpenDB opens and pings the match store with OpenTelemetry instrumentation.
func OpenDB(ctx context.Context, opts DBOptions) (*sqlx.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	if driver != config.DriverPostgres && driver != config.DriverSQLite {
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
	dsn := strings.TrimSpace(opts.URL)
	if dsn == "" {
		return nil, fmt.Errorf("db url cannot be empty")
	}
	dsn = normalizeDBURL(driver, dsn, opts.DisablePreparedBinary)

	db, err := otelsqlx.Open(driver, dsn,
		otelsql.WithDBName(dbNameFromURL(driver, dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", driver, err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen < 1 {
		maxOpen = 1
	}
	if driver == config.DriverSQLite && isSQLiteMemory(dsn) {
		// each connection to :memory: is a separate database
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s store: %w", driver, err)
	}

	return db, nil
}

// RepositoryOptions controls the decorators around the SQL store.
type RepositoryOptions struct {
	Cache   *basecache.Store
	Breaker *resilience.CircuitBreaker
}

// RepositoryOptionsFromConfig builds the configured decorators. Breaker
// transitions are logged at warn.
func RepositoryOptionsFromConfig(cfg config.Config, logger *logging.Logger) RepositoryOptions {
	if logger == nil {
		logger = logging.Default()
	}
	opts := RepositoryOptions{
		Breaker: resilience.NewCircuitBreakerFromConfig(resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}),
	}
	opts.Breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("match store breaker changed state", "from", string(from), "to", string(to))
	})
	if cfg.CacheEnabled {
		opts.Cache = basecache.NewStore(cfg.CacheTTL)
	}
	return opts
}

func NewRepository(db *sqlx.DB, opts RepositoryOptions) matchstats.Repository {
	store := sqlstore.NewMatchRepository(db)
	if opts.Cache == nil && opts.Breaker == nil {
		return store
	}
	return cache.NewMatchRepository(store, opts.Cache, opts.Breaker)
}

// Services bundles the report usecases both outer surfaces call.
type Services struct {
	Entity       *usecase.EntityService
	Correlation  *usecase.CorrelationService
	HeadToHead   *usecase.HeadToHeadService
	MatchHistory *usecase.MatchHistoryService
	Catalog      *usecase.CatalogService
}

func NewServices(repo matchstats.Repository) Services {
	return Services{
		Entity:       usecase.NewEntityService(repo),
		Correlation:  usecase.NewCorrelationService(repo),
		HeadToHead:   usecase.NewHeadToHeadService(repo),
		MatchHistory: usecase.NewMatchHistoryService(repo),
		Catalog:      usecase.NewCatalogService(repo),
	}
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if db == nil {
		return nil, fmt.Errorf("db handle is required")
	}

	svc := NewServices(NewRepository(db, RepositoryOptionsFromConfig(cfg, logger)))
	handler := httpapi.NewHandler(svc.Entity, svc.Correlation, svc.HeadToHead, svc.MatchHistory, svc.Catalog, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
