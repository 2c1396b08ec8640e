package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "karmaty_backend/internals/features/attendance/model"
	familyModel "karmaty_backend/internals/features/families/model"
	personModel "karmaty_backend/internals/features/people/model"
	personService "karmaty_backend/internals/features/people/service"
	stageModel "karmaty_backend/internals/features/stages/model"
	helper "karmaty_backend/internals/helpers"
)

// MasterController backs the developer's cross-tenant master data
// table. Routes mounting it must already enforce the developer role.
type MasterController struct {
	DB *gorm.DB
}

func NewMasterController(db *gorm.DB) *MasterController {
	return &MasterController{DB: db}
}

// =======================
// GET /api/d/people?search=&church=
// =======================
func (mc *MasterController) People(c *fiber.Ctx) error {
	people, err := personService.NewPersonService(mc.DB).Search(c.Query("church"), c.Query("search"))
	if err != nil {
		log.Println("[ERROR] master people:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load people")
	}
	return helper.Success(c, "OK", fiber.Map{
		"count":  len(people),
		"people": people,
	})
}

// =======================
// GET /api/d/export
// =======================
// Full snapshot across every church, used for offline backup.
func (mc *MasterController) Export(c *fiber.Ctx) error {
	var (
		people     []personModel.PersonModel
		families   []familyModel.FamilyModel
		stages     []stageModel.StageModel
		attendance []attendanceModel.AttendanceRecordModel
	)

	if err := mc.DB.Order("person_church_id asc, person_name asc").Find(&people).Error; err != nil {
		log.Println("[ERROR] export people:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Export failed")
	}
	if err := mc.DB.Order("family_church_id asc, family_name asc").Find(&families).Error; err != nil {
		log.Println("[ERROR] export families:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Export failed")
	}
	if err := mc.DB.Order("stage_position asc").Find(&stages).Error; err != nil {
		log.Println("[ERROR] export stages:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Export failed")
	}
	if err := mc.DB.Order("attendance_record_date asc").Find(&attendance).Error; err != nil {
		log.Println("[ERROR] export attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Export failed")
	}

	return helper.Success(c, "OK", fiber.Map{
		"exported_at": time.Now().Format(time.RFC3339),
		"people":      people,
		"families":    families,
		"stages":      stages,
		"attendance":  attendance,
	})
}
