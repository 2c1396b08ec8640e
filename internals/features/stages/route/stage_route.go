package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/features/stages/controller"
	"karmaty_backend/internals/middlewares"
)

// StagePublicRoutes: the stage list for the registration screen.
func StagePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStageController(db)

	api.Get("/stages", ctrl.ListPublic)
}

// StageUserRoutes: the PIN gate, available to every logged-in role.
func StageUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStageController(db)

	user.Post("/stages/:name/unlock", middlewares.PinUnlockRateLimiter(), ctrl.Unlock)
}

// StageAdminRoutes: stage list editing, priests and the developer only.
func StageAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStageController(db)

	stages := admin.Group("/stages")
	stages.Post("/", ctrl.Add)
	stages.Delete("/:name", ctrl.Delete)
	stages.Put("/:name/move", ctrl.Move)
}
