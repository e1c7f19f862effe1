// Package webapi assembles the HTTP surface of the ledger:
// - transactions: withdraw, deposit, transfer, statements and accounts
// - /health and /metrics
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/amirasaad/ledger/webapi/transactions"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	if a.Config.Env == "development" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if a.Deps.Gatherer != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(a.Deps.Gatherer, promhttp.HandlerOpts{}),
		))
	}

	transactions.Routes(fiberApp, a.LedgerService, a.Config)
	return fiberApp
}
