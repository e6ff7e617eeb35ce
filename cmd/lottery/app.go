package main

import (
	"context"
	"fmt"

	"solana-lottery/config"
	solanaChain "solana-lottery/internal/adapter/chain/solana"
	httpHandler "solana-lottery/internal/adapter/http/handler"
	pgStorage "solana-lottery/internal/adapter/storage/postgres"
	redisStorage "solana-lottery/internal/adapter/storage/redis"
	"solana-lottery/internal/core/domain"
	"solana-lottery/internal/core/ports"
	"solana-lottery/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// app holds every long-lived dependency built from configuration.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	pool  *pgxpool.Pool
	rdb   *goredis.Client
	chain *solanaChain.Client

	drawEngine *service.DrawEngine
	router     *gin.Engine
}

// newApp connects to PostgreSQL, Redis and the Solana RPC node and wires
// the services on top of them.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	loc, err := cfg.Draw.Location()
	if err != nil {
		return nil, err
	}

	// Custodial wallet
	wallet, err := solanaChain.NewWallet(cfg.Chain)
	if err != nil {
		return nil, fmt.Errorf("custodial wallet: %w", err)
	}
	custodial := cfg.Chain.CustodialAddress
	if custodial == "" {
		custodial = wallet.Address()
	}
	if cfg.Lottery.FeeAddress != "" {
		if err := domain.ValidateAddress(cfg.Lottery.FeeAddress); err != nil {
			return nil, fmt.Errorf("lottery.fee_address: %w", err)
		}
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to Redis: %w", err)
	}
	log.Info().Msg("Redis connected")

	chain := solanaChain.NewClient(cfg.Chain, log)
	chainHealth := solanaChain.NewHealthCheck(chain)
	if err := chainHealth.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("rpc_url", cfg.Chain.RPCURL).Msg("Solana RPC not healthy at startup")
	}

	// Initialize repositories
	depositRepo := pgStorage.NewDepositRepo(pool)
	winnerRepo := pgStorage.NewWinnerRepo(pool)
	vipRepo := pgStorage.NewVipRepo(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb, redisStorage.NonceTTLs{
		CSRF:   cfg.Nonce.CSRFTTL,
		Action: cfg.Nonce.ActionTTL,
	})
	counter := redisStorage.NewDepositCounter(rdb)
	replayGuard := redisStorage.NewReplayGuard(rdb)
	drawLock := redisStorage.NewDrawLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize services
	builder := solanaChain.NewBuilder()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)
	if cfg.Admin.JWTSecret == "" || cfg.Admin.PasswordHash == "" {
		log.Warn().Msg("admin credentials not configured, operator login is disabled")
	}

	csrfSvc := service.NewCSRFService(nonceStore)
	depositSvc := service.NewDepositService(nonceStore, chain, builder, depositRepo, vipRepo, counter, service.DepositConfig{
		Pricing: domain.Pricing{
			CustodialAddress: custodial,
			EntryLamports:    cfg.Lottery.EntryLamports,
			FeeLamports:      cfg.Lottery.FeeLamports,
			FeeAddress:       cfg.Lottery.FeeAddress,
		},
		DailyCap:           cfg.Lottery.DailyDepositCap,
		NetworkFeeLamports: cfg.Draw.NetworkFeeLamports,
		Location:           loc,
	}, log)
	vipSvc := service.NewVipService(nonceStore, chain, builder, vipRepo, replayGuard, service.VipConfig{
		CustodialAddress:   custodial,
		Lamports:           cfg.VIP.Lamports,
		Duration:           cfg.VIP.Duration,
		NetworkFeeLamports: cfg.Draw.NetworkFeeLamports,
	}, log)
	ledgerSvc := service.NewLedgerService(depositRepo, winnerRepo, vipRepo, counter, cfg.Lottery.DailyDepositCap, loc)
	drawEngine := service.NewDrawEngine(depositRepo, winnerRepo, chain, wallet, drawLock, service.CryptoPicker{}, service.DrawConfig{
		NetworkFeeLamports: cfg.Draw.NetworkFeeLamports,
		ConfirmTimeout:     cfg.Chain.ConfirmTimeout,
		LockTTL:            cfg.Draw.LockTTL,
	}, log)
	operatorSvc := service.NewOperatorAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, hashSvc, tokenSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CSRFSvc:        csrfSvc,
		DepositSvc:     depositSvc,
		VipSvc:         vipSvc,
		LedgerSvc:      ledgerSvc,
		DrawSvc:        drawEngine,
		OperatorSvc:    operatorSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			chainHealth,
		},
		Mode:   cfg.Server.Mode,
		Logger: log,
	})

	log.Info().
		Str("custodial", custodial).
		Bool("split_fee", cfg.Lottery.FeeAddress != "").
		Int64("daily_cap", cfg.Lottery.DailyDepositCap).
		Str("draw_timezone", loc.String()).
		Msg("lottery configured")

	return &app{
		cfg:        cfg,
		log:        log,
		pool:       pool,
		rdb:        rdb,
		chain:      chain,
		drawEngine: drawEngine,
		router:     router,
	}, nil
}

// Close releases the connection pools.
func (a *app) Close() {
	if err := a.rdb.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing Redis client")
	}
	a.pool.Close()
}
