package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/configs"
	"karmaty_backend/internals/constants"
	attendanceRoute "karmaty_backend/internals/features/attendance/route"
	familyRoute "karmaty_backend/internals/features/families/route"
	personRoute "karmaty_backend/internals/features/people/route"
	stageRoute "karmaty_backend/internals/features/stages/route"
	authRoute "karmaty_backend/internals/features/users/auth/route"
	authMiddleware "karmaty_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	authRoute.AuthRoutes(api, db)
	stageRoute.StagePublicRoutes(api, db)

	// ===================== PRIVATE (any logged-in role) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authRoute.AuthUserRoutes(user, db)
	personRoute.PersonUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	stageRoute.StageUserRoutes(user, db)

	// ===================== ADMIN (servant and above) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("the admin surface", constants.ServantAndAbove...),
	)
	personRoute.PersonAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	stageRoute.StageAdminRoutes(admin, db)
	familyRoute.FamilyAdminRoutes(admin, db)

	// ===================== DEVELOPER (cross-tenant) =====================
	log.Println("[INFO] Setting up DEVELOPER group...")
	dev := app.Group("/api/d",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles("the master database", constants.DeveloperOnly...),
	)
	personRoute.PersonDeveloperRoutes(dev, db)
}
