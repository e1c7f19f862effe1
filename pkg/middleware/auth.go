// Package middleware holds the fiber middleware shared by the HTTP routes.
package middleware

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the "role" claim.
const (
	RoleOperator = "operator"
	RoleReader   = "reader"
)

// JwtProtected verifies the bearer token against the configured HS256 secret and
// stores it in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// RequireRole rejects requests whose token has none of roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := roleFrom(c)
		if err != nil {
			return problem(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return problem(c, fiber.StatusForbidden, "Forbidden", "role "+role+" may not perform this operation")
	}
}

func roleFrom(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", errors.New("missing user context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return "", errors.New("token has no role claim")
	}
	return role, nil
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), "missing or malformed JWT") {
		return problem(c, fiber.StatusBadRequest, "Bad Request", "Missing or malformed JWT")
	}
	return problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired JWT")
}

// problem writes an RFC 9457 body without importing webapi.
func problem(c *fiber.Ctx, status int, title, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.OriginalURL(),
	})
}
