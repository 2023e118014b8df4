package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/localflow/localflow-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes. Transaction and stats routes carry
// the username-scoping middleware; the auth endpoints are rate limited per
// client address.
func RegisterRoutes(e *echo.Echo, loginLimiter *middleware.LoginRateLimiter, authHandler *AuthHandler, transactionHandler *TransactionHandler, statsHandler *StatsHandler) {
	// Auth routes (rate limited)
	auth := e.Group("")
	auth.Use(loginRateLimit(loginLimiter))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Transaction routes (username scoped)
	transactions := e.Group("/transactions")
	transactions.Use(middleware.Username())
	transactions.POST("/", transactionHandler.CreateTransaction)
	transactions.GET("/", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Stats routes (username scoped)
	stats := e.Group("/stats")
	stats.Use(middleware.Username())
	stats.GET("/year/:year", statsHandler.GetYearlyStats)
}

// loginRateLimit rejects over-limit auth attempts with 429.
func loginRateLimit(limiter *middleware.LoginRateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, ProblemDetails{
					Type:     "https://localflow.app/errors/rate-limit",
					Title:    "Too Many Requests",
					Status:   http.StatusTooManyRequests,
					Detail:   "Too many authentication attempts, slow down",
					Instance: c.Request().URL.Path,
				})
			}
			return next(c)
		}
	}
}
