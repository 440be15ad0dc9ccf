package handler

import (
	"bitcoind-gateway/internal/adapter/http/middleware"
	"bitcoind-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	RateLimiter    *middleware.IPRateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.RateLimit())
	}

	// Health check (verifies the node answers RPC)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)

	api := r.Group("/api")
	{
		api.POST("/register", walletHandler.Register)
		api.POST("/send", walletHandler.Send)
	}

	r.GET("/balance/:wallet_name", walletHandler.GetBalance)

	return r
}
