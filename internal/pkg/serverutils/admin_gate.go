package serverutils

import (
	"strings"

	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is where the gate stores verified claims in the request context.
const ClaimsKey = "admin_claims"

// AdminGate requires a valid bearer token before aggregated statistics are
// served. A missing or malformed header fails without touching the codec, and
// every codec failure collapses into one Unauthorized answer so callers cannot
// tell an expired token from a forged one.
func AdminGate(codec *token.Codec) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperr.Unauthorized("missing authentication token")
		}

		claims, err := codec.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return apperr.Unauthorized("invalid or expired token")
		}

		ctx.Locals(ClaimsKey, claims)
		return ctx.Next()
	}
}
