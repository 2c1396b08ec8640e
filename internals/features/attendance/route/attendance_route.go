package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/features/attendance/controller"
)

// AttendanceUserRoutes: a student's read-only view of their own month.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	user.Get("/attendance", ctrl.MyMonth)
}

// AttendanceAdminRoutes: the stage grid and the mark toggle.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	admin.Get("/attendance", ctrl.Grid)
	admin.Post("/attendance", ctrl.Mark)
}
