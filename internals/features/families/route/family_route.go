package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/features/families/controller"
	"karmaty_backend/internals/middlewares"
)

// FamilyAdminRoutes: the family/financial module for servants and above.
func FamilyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFamilyController(db)

	families := admin.Group("/families")
	families.Post("/unlock", middlewares.PinUnlockRateLimiter(), ctrl.Unlock)
	families.Get("/", ctrl.List)
	families.Post("/", ctrl.Create)
	families.Post("/handover", ctrl.Handover)
	families.Put("/:id", ctrl.Update)
	families.Delete("/:id", ctrl.Delete)
	families.Post("/:id/toggle", ctrl.TogglePayment)
}
