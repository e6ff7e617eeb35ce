package handler

import (
	"solana-lottery/internal/adapter/http/middleware"
	redisStore "solana-lottery/internal/adapter/storage/redis"
	"solana-lottery/internal/core/ports"
	"solana-lottery/pkg/apperror"
	"solana-lottery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CSRFSvc        ports.CSRFService
	DepositSvc     ports.DepositService
	VipSvc         ports.VipService
	LedgerSvc      ports.LedgerService
	DrawSvc        ports.DrawService
	OperatorSvc    ports.OperatorAuthService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Mode           string // gin mode; empty = release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound())
	})

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	// --- Public reads ---
	lottery := NewLotteryHandler(deps.LedgerSvc, deps.VipSvc, deps.CSRFSvc)
	public := r.Group("", rl(middleware.GroupPublic))
	{
		public.GET("/csrf-token", lottery.CSRFToken)
		public.GET("/lottery-pot", lottery.Pot)
		public.GET("/participants", lottery.Participants)
		public.GET("/latest-winner", lottery.LatestWinner)
		public.GET("/deposit-count", lottery.DepositCount)
		public.GET("/check-vip", lottery.CheckVip)
	}

	// --- Wallet mutations (CSRF-guarded) ---
	deposits := NewDepositHandler(deps.DepositSvc)
	vips := NewVipHandler(deps.VipSvc)
	mutations := r.Group("", rl(middleware.GroupMutations), middleware.CSRFGuard(deps.CSRFSvc, deps.Logger))
	{
		mutations.POST("/prepare-deposit", deposits.Prepare)
		mutations.POST("/submit-deposit", deposits.Submit)
		mutations.POST("/prepare-vip", vips.Prepare)
		mutations.POST("/submit-vip", vips.Submit)
	}

	// --- Operator ---
	admin := NewAdminHandler(deps.OperatorSvc, deps.DrawSvc, deps.Logger)
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", rl(middleware.GroupAdminLogin), admin.Login)
		adminGroup.POST("/draw", rl(middleware.GroupMutations), middleware.OperatorAuth(deps.TokenSvc, deps.Logger), admin.Draw)
	}

	return r
}
