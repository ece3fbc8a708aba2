package handler

import (
	"fractional-share-registry/internal/adapter/http/middleware"
	redisStore "fractional-share-registry/internal/adapter/storage/redis"
	"fractional-share-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	MarketSvc      ports.MarketplaceService
	QuerySvc       ports.RegistryQueryService
	WalletSvc      ports.WalletService
	AccountRepo    ports.AccountRepository
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	queryHandler := NewQueryHandler(deps.QuerySvc)
	assets := v1.Group("/assets")
	{
		assets.GET("/:id", rl("query"), queryHandler.GetAsset)
		assets.GET("/:id/price", rl("query"), queryHandler.GetPrice)
		assets.GET("/:id/balance/:account", rl("query"), queryHandler.GetBalance)
		assets.GET("/:id/holders", rl("query"), queryHandler.GetHolders)
		assets.GET("/:id/events", rl("query"), queryHandler.GetAssetEvents)
	}
	v1.GET("/collection", rl("query"), queryHandler.GetCollection)
	v1.GET("/capabilities", rl("query"), queryHandler.GetCapabilities)
	v1.GET("/events", rl("query"), queryHandler.GetEvents)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	marketHandler := NewMarketHandler(deps.MarketSvc)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.QuerySvc)

	market := v1.Group("/market", jwtAuth)
	{
		market.POST("/purchase", rl("purchase"), marketHandler.Purchase)
		market.POST("/transfer", rl("transfer"), marketHandler.Transfer)
	}

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("query"), walletHandler.GetBalance)
		wallet.POST("/topup", rl("topup"), walletHandler.Topup)
	}

	v1.GET("/portfolio", jwtAuth, rl("query"), queryHandler.GetPortfolio)

	// --- Operator-only routes (JWT + live operator flag) ---
	requireOperator := middleware.RequireOperator(deps.AccountRepo, deps.Logger)
	assetHandler := NewAssetHandler(deps.MarketSvc)

	admin := v1.Group("", jwtAuth, requireOperator)
	{
		admin.POST("/assets", rl("admin"), assetHandler.RegisterAssets)
		admin.PUT("/assets/prices", rl("admin"), assetHandler.SetPrices)
		admin.PUT("/accounts/:id/whitelist", rl("admin"), assetHandler.SetWhitelisted)
		admin.POST("/treasury/withdraw", rl("admin"), assetHandler.Withdraw)
	}

	return r
}
