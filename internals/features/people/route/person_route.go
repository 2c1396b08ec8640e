package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/features/people/controller"
)

// PersonUserRoutes: self-service endpoints for every logged-in role.
func PersonUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPersonController(db)

	user.Get("/me", ctrl.Me)
	user.Put("/profile", ctrl.UpdateProfile)
}

// PersonAdminRoutes: roster management for servants and above.
func PersonAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPersonController(db)

	people := admin.Group("/people")
	people.Post("/", ctrl.Create)
	people.Put("/:id", ctrl.Update)
	people.Delete("/:id", ctrl.Delete)
}

// PersonDeveloperRoutes: the cross-tenant master data table.
func PersonDeveloperRoutes(dev fiber.Router, db *gorm.DB) {
	master := controller.NewMasterController(db)

	dev.Get("/people", master.People)
	dev.Get("/export", master.Export)
}
