package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-ledger-operations/internal/config"
	"github.com/sbilibin2017/gw-ledger-operations/internal/db"
	"github.com/sbilibin2017/gw-ledger-operations/internal/facades"
	"github.com/sbilibin2017/gw-ledger-operations/internal/handlers"
	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/middlewares"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/sbilibin2017/gw-ledger-operations/internal/notifiers"
	"github.com/sbilibin2017/gw-ledger-operations/internal/policies"
	"github.com/sbilibin2017/gw-ledger-operations/internal/repositories"
	"github.com/sbilibin2017/gw-ledger-operations/internal/services"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-ledger-operations API
// @version 1.0.0
// @description Validates and computes transfers, currency exchanges, bill payments and savings goal contributions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, seed sources, optional Redis, Kafka and gRPC
// clients, and the HTTP server. It blocks until ctx is cancelled or a
// termination signal arrives, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel)

	seed, err := loadSeed(ctx, cfg)
	if err != nil {
		return err
	}

	// Connect to Redis
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
	}

	// Refresh rate pairs from the exchanger
	if cfg.Exchanger.Enabled {
		pairs, err := refreshRatePairs(ctx, cfg.Exchanger, cfg.Redis, rdb, seed.RatePairs)
		if err != nil {
			return err
		}
		seed.RatePairs = pairs
	}

	if err := seed.Validate(); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	rules, err := policies.Compile(seed.Policies)
	if err != nil {
		return err
	}

	// Initialize repositories
	accounts := repositories.NewAccountMemoryRepository(seed.Accounts)
	ratePairs := repositories.NewRatePairMemoryRepository(seed.RatePairs)

	// Initialize notification sinks
	sinks := []notifiers.Sink{notifiers.NewLogSink(logger.Log)}
	if cfg.Kafka.Enabled {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.Kafka.Brokers...),
			Topic:    cfg.Kafka.Topic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		sinks = append(sinks, notifiers.NewKafkaSink(writer))
	}
	if rdb != nil {
		sinks = append(sinks, notifiers.NewRedisSink(rdb, cfg.Redis.Channel))
	}

	// Initialize services
	rateOpts := []services.RateTableOption{services.WithJitterSpread(cfg.Rates.JitterSpread)}
	if cfg.Rates.JitterSeed != 0 {
		rateOpts = append(rateOpts, services.WithRandomSource(services.NewSeededSource(cfg.Rates.JitterSeed)))
	}
	rates := services.NewRateTable(ratePairs, rateOpts...)
	validator := services.NewOperationValidator(accounts, rules)
	engine := services.NewLedgerOperationEngine(validator, rates, notifiers.NewMultiSink(sinks...))

	logger.Log.Infow("ledger initialized",
		"accounts", len(seed.Accounts),
		"rate_pairs", len(seed.RatePairs),
		"policies", rules.Len(),
		"sinks", len(sinks),
	)

	r := newRouter(cfg.App, engine, accounts, rates)

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the API under /api/v1 together with the swagger UI.
func newRouter(
	app config.AppConfig,
	engine *services.LedgerOperationEngine,
	accounts handlers.AccountReader,
	rates handlers.ExchangeRatesReader,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/operations/transfer", handlers.NewTransferHandler(engine))
		r.Post("/operations/exchange", handlers.NewExchangeHandler(engine))
		r.Post("/operations/bill-payment", handlers.NewBillPaymentHandler(engine))
		r.Post("/operations/goal-contribution", handlers.NewGoalContributionHandler(engine))
		r.Post("/operations/goal", handlers.NewGoalCreationHandler(engine))
		r.Post("/operations/expense", handlers.NewExpenseHandler(engine))

		r.Get("/accounts", handlers.NewListAccountsHandler(accounts))
		r.Get("/accounts/{id}", handlers.NewGetAccountHandler(accounts))

		r.Get("/exchange/rates", handlers.NewGetExchangeRatesHandler(rates))
		r.Get("/exchange/quote", handlers.NewGetExchangeQuoteHandler(engine))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", app.Addr())),
	))

	return r
}

// loadSeed reads accounts, rate pairs and policies from the configured source.
func loadSeed(ctx context.Context, cfg *config.Config) (models.Seed, error) {
	switch cfg.Seed.Source {
	case config.SeedFile:
		logger.Log.Infow("loading seed file", "path", cfg.Seed.File)
		return repositories.LoadSeedFile(cfg.Seed.File)

	case config.SeedPostgres:
		pg := cfg.Postgres
		dsn := db.DSN(pg.Host, pg.Port, pg.User, pg.Password, pg.DB)
		logger.Log.Infow("loading seed from PostgreSQL", "host", pg.Host, "port", pg.Port, "db", pg.DB)

		if pg.Migrate {
			if err := db.RunMigrations(dsn); err != nil {
				return models.Seed{}, err
			}
		}

		conn, err := db.Connect(ctx, dsn, pg.MaxOpenConns, pg.MaxIdleConns)
		if err != nil {
			return models.Seed{}, err
		}
		// the seed is read once at start-up
		defer conn.Close()

		return repositories.NewSeedPostgresRepository(conn).LoadSeed(ctx)

	default:
		return repositories.DefaultSeed(), nil
	}
}

// refreshRatePairs overrides seeded pairs with live exchanger rates, falling
// back to the Redis cache when the exchanger is unreachable.
func refreshRatePairs(
	ctx context.Context,
	ex config.ExchangerConfig,
	rc config.RedisConfig,
	rdb *redis.Client,
	seeded []models.RatePair,
) ([]models.RatePair, error) {
	conn, err := grpc.NewClient(ex.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %s: %w", ex.Addr(), err)
	}
	defer conn.Close()

	fetcher := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))

	var cache services.RatePairCache
	if rdb != nil {
		cache = repositories.NewRatePairCacheRepository(rdb, rc.RateCacheTTL)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, ex.Timeout)
	defer cancel()

	return services.NewRatePairRefresher(fetcher, cache, ex.RatePairs).Refresh(fetchCtx, seeded), nil
}

