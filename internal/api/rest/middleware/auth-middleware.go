package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kampuspmb/admin_service/internal/helper"
)

// AuthMiddleware guards the admin API: the session token is read from
// the httpOnly cookie first, with the Authorization header as a
// fallback for API clients.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies(helper.TokenCookie))

		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		ctx.Locals("username", user.Username)
		return ctx.Next()
	}
}
