package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fractional-share-registry/config"
	httpHandler "fractional-share-registry/internal/adapter/http/handler"
	pgStorage "fractional-share-registry/internal/adapter/storage/postgres"
	redisStorage "fractional-share-registry/internal/adapter/storage/redis"
	"fractional-share-registry/internal/core/domain"
	"fractional-share-registry/internal/core/ports"
	"fractional-share-registry/internal/service"
	"fractional-share-registry/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Fractional Share Registry")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	assetRepo := pgStorage.NewAssetRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	holderRepo := pgStorage.NewHolderRepo(pool)
	portfolioRepo := pgStorage.NewPortfolioRepo(pool)
	treasuryRepo := pgStorage.NewTreasuryRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	priceCache := redisStorage.NewPriceCache(rdb)
	deliveryMarker := redisStorage.NewDeliveryMarker(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Ledger pipeline: whitelist gate in front, holder index behind
	gate := service.NewWhitelistGate(accountRepo)
	holderHook := service.NewHolderIndexHook(holderRepo)
	ledger := service.NewLedgerService(balanceRepo, gate, []ports.TransferHook{holderHook}, log)

	channel := service.NewWalletChannel(accountRepo, treasuryRepo)
	notifier := service.NewWebhookNotifier(
		cfg.Webhook,
		sigSvc,
		deliveryMarker,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		log,
	)

	// Initialize business services
	marketSvc := service.NewMarketplaceService(
		accountRepo,
		assetRepo,
		balanceRepo,
		portfolioRepo,
		treasuryRepo,
		eventRepo,
		ledger,
		channel,
		priceCache,
		notifier,
		transactor,
		log,
	)
	querySvc := service.NewQueryService(
		accountRepo,
		assetRepo,
		balanceRepo,
		holderRepo,
		portfolioRepo,
		treasuryRepo,
		eventRepo,
		priceCache,
		cfg.Ledger.PriceCacheTTL,
		cfg.Ledger.CollectionName,
		cfg.Ledger.CollectionURI,
		log,
	)
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	walletSvc := service.NewWalletService(accountRepo, transactor, log)

	// Seed the treasury row and the operator account
	if err := seedTreasury(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed treasury")
	}
	if err := seedOperator(ctx, cfg.Ledger, accountRepo, hashSvc, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed operator account")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		MarketSvc:      marketSvc,
		QuerySvc:       querySvc,
		WalletSvc:      walletSvc,
		AccountRepo:    accountRepo,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedTreasury makes sure the single proceeds row exists before the first
// purchase settles against it.
func seedTreasury(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `INSERT INTO treasury (id, balance) VALUES (1, 0) ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("insert treasury row: %w", err)
	}
	return nil
}

// seedOperator creates the operator account on first boot. The operator
// owns issuance, pricing, whitelisting and withdrawals; without it the
// registry cannot register assets.
func seedOperator(ctx context.Context, cfg config.LedgerConfig, accountRepo ports.AccountRepository, hashSvc ports.HashService, log zerolog.Logger) error {
	existing, err := accountRepo.GetOperator(ctx)
	if err != nil {
		return fmt.Errorf("look up operator: %w", err)
	}
	if existing != nil {
		log.Info().Str("username", existing.Username).Msg("Operator account present")
		return nil
	}

	if cfg.OperatorPassword == "" {
		return fmt.Errorf("no operator account exists and ledger.operator_password is not set")
	}

	passwordHash, err := hashSvc.Hash(cfg.OperatorPassword)
	if err != nil {
		return fmt.Errorf("hash operator password: %w", err)
	}

	now := time.Now().UTC()
	operator := &domain.Account{
		ID:            uuid.New(),
		Username:      cfg.OperatorUsername,
		PasswordHash:  passwordHash,
		WalletBalance: 0,
		Whitelisted:   true,
		IsOperator:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := accountRepo.Create(ctx, operator); err != nil {
		return fmt.Errorf("create operator account: %w", err)
	}

	log.Info().Str("username", operator.Username).Str("account_id", operator.ID.String()).Msg("Operator account seeded")
	return nil
}
