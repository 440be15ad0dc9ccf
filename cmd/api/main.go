package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitcoind-gateway/config"
	"bitcoind-gateway/internal/adapter/bitcoind"
	httpHandler "bitcoind-gateway/internal/adapter/http/handler"
	"bitcoind-gateway/internal/adapter/http/middleware"
	"bitcoind-gateway/internal/core/domain"
	"bitcoind-gateway/internal/core/ports"
	"bitcoind-gateway/internal/service"
	"bitcoind-gateway/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.RPC.Network).
		Msg("Starting bitcoind gateway")

	netParams, err := domain.ResolveNetwork(cfg.RPC.Network)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid network configuration")
	}

	gateway, err := bitcoind.New(cfg.RPC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure node gateway")
	}

	walletSvc := service.NewWalletService(gateway, netParams, cfg.RPC.SourceWallet, log)

	var limiter *middleware.IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		log.Info().
			Float64("rps", cfg.RateLimit.RequestsPerSecond).
			Int("burst", cfg.RateLimit.Burst).
			Msg("Rate limiting enabled")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		RateLimiter:    limiter,
		HealthCheckers: []ports.HealthChecker{gateway},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
