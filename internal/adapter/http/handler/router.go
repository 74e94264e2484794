package handler

import (
	"time"

	"pix-bank/internal/adapter/http/middleware"
	"pix-bank/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Accounts         ports.AccountRepository
	Investments      ports.InvestmentRepository
	Renderer         ports.StatementRenderer // nil = statements disabled
	Journal          ports.JournalReader     // nil = journal endpoint answers 503
	RateLimitStore   ports.RateLimitStore    // nil = rate limiting disabled
	IdempotencyCache ports.IdempotencyCache  // nil = Idempotency-Key ignored
	IdempotencyTTL   time.Duration
	JournalPageSize  int
	HealthCheckers   []ports.HealthChecker
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	noop := func(c *gin.Context) { c.Next() }

	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return noop
		}
		rule, ok := rules[group]
		if !ok {
			return noop
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	idem := noop
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyTTL, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.Accounts, deps.Investments, deps.Renderer, deps.Journal, deps.JournalPageSize, deps.Logger)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", rl(middleware.GroupAccounts), idem, accountHandler.Create)
		accounts.GET("", rl(middleware.GroupReads), accountHandler.List)
		accounts.GET("/:pix", rl(middleware.GroupReads), accountHandler.Get)
		accounts.POST("/:pix/deposit", rl(middleware.GroupMovements), idem, accountHandler.Deposit)
		accounts.POST("/:pix/withdraw", rl(middleware.GroupMovements), idem, accountHandler.Withdraw)
		accounts.GET("/:pix/history", rl(middleware.GroupReads), accountHandler.History)
		accounts.GET("/:pix/statement.pdf", rl(middleware.GroupReads), accountHandler.Statement)
		accounts.GET("/:pix/journal", rl(middleware.GroupReads), accountHandler.Journal)
	}
	v1.POST("/transfers", rl(middleware.GroupTransfers), idem, accountHandler.Transfer)

	investmentHandler := NewInvestmentHandler(deps.Investments)
	investments := v1.Group("/investments")
	{
		investments.POST("", rl(middleware.GroupInvestments), idem, investmentHandler.CreateInvestment)
		investments.GET("", rl(middleware.GroupReads), investmentHandler.ListInvestments)
	}

	wallets := v1.Group("/investment-wallets")
	{
		wallets.POST("", rl(middleware.GroupInvestments), idem, investmentHandler.OpenWallet)
		wallets.GET("", rl(middleware.GroupReads), investmentHandler.ListWallets)
		wallets.POST("/yield", rl(middleware.GroupInvestments), investmentHandler.AccrueYield)
		wallets.GET("/:pix", rl(middleware.GroupReads), investmentHandler.GetWallet)
		wallets.POST("/:pix/apply", rl(middleware.GroupMovements), idem, investmentHandler.Apply)
		wallets.POST("/:pix/redeem", rl(middleware.GroupMovements), idem, investmentHandler.Redeem)
	}

	return r
}
