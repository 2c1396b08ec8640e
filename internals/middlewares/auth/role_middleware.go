package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "karmaty_backend/internals/helpers"
)

// RequireRoles allows the request through only when the token role is in
// the allowed set. Must run after AuthJWT.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return helper.Error(c, fiber.StatusForbidden, "You are not allowed to access "+feature)
	}
}
