package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys populated by the auth middleware.
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocChurchID = "church_id"
	LocStage    = "stage"
)

// GetUserIDFromToken reads user_id from c.Locals.
// 401 when not logged in, 400 when the value is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

// GetChurchIDFromToken returns the caller's tenant code. Empty for the
// developer account, which is cross-tenant.
func GetChurchIDFromToken(c *fiber.Ctx) string {
	churchID, _ := c.Locals(LocChurchID).(string)
	return churchID
}

func GetStageFromToken(c *fiber.Ctx) string {
	stage, _ := c.Locals(LocStage).(string)
	return stage
}
