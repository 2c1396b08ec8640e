package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/features/users/auth/controller"
	"karmaty_backend/internals/middlewares"
)

// AuthRoutes mounts the public authentication endpoints.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes mounts the endpoints that need a logged-in caller.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	user.Put("/password", ctrl.ChangePassword)
}
