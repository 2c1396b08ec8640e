package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "karmaty_backend/internals/features/attendance/service"
	personModel "karmaty_backend/internals/features/people/model"
	personService "karmaty_backend/internals/features/people/service"
	helper "karmaty_backend/internals/helpers"
)

type AttendanceController struct {
	Ledger *attendanceService.LedgerService
	People *personService.PersonService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		Ledger: attendanceService.NewLedgerService(db),
		People: personService.NewPersonService(db),
	}
}

// GridRow is one person's line in the monthly grid.
type GridRow struct {
	Person   personModel.PersonModel `json:"person"`
	Presence map[string]bool         `json:"presence"`
	Count    int                     `json:"count"`
	Reward   string                  `json:"reward"`
}

type markRequest struct {
	PersonID uuid.UUID `json:"person_id"`
	Date     string    `json:"date"`
	Present  bool      `json:"present"`
}

// yearMonth reads ?year=&month= with the current month as default.
func yearMonth(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid year/month")
	}
	return year, month, nil
}

func buildRows(ledger *attendanceService.LedgerService, people []personModel.PersonModel, year, month int) ([]GridRow, []string, error) {
	keys := attendanceService.FridayKeys(year, month)

	ids := make([]uuid.UUID, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.PersonID)
	}
	matrix, err := ledger.MonthMatrix(ids, year, month)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	rows := make([]GridRow, 0, len(people))
	for _, p := range people {
		presence := make(map[string]bool, len(keys))
		count := 0
		for _, k := range keys {
			present := matrix[p.PersonID][k]
			presence[k] = present
			if present {
				count++
			}
		}
		rows = append(rows, GridRow{
			Person:   p,
			Presence: presence,
			Count:    count,
			Reward:   attendanceService.RewardStatus(count, year, month, now),
		})
	}
	return rows, keys, nil
}

// =======================
// GET /api/a/attendance?stage=&year=&month=
// =======================
// The monthly grid for one stage: a fixed column per Friday, a row per
// person, plus each row's reward classification.
func (atc *AttendanceController) Grid(c *fiber.Ctx) error {
	stage := c.Query("stage")
	if stage == "" {
		return helper.Error(c, fiber.StatusBadRequest, "stage is required")
	}
	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}

	churchID := helper.GetChurchIDFromToken(c)
	if churchID == "" {
		churchID = c.Query("church")
	}

	people, err := atc.People.ListByStage(churchID, stage)
	if err != nil {
		log.Println("[ERROR] attendance grid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load roster")
	}

	rows, keys, err := buildRows(atc.Ledger, people, year, month)
	if err != nil {
		log.Println("[ERROR] attendance grid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	return helper.Success(c, "OK", fiber.Map{
		"year":    year,
		"month":   month,
		"fridays": keys,
		"rows":    rows,
	})
}

// =======================
// GET /api/u/attendance?year=&month=
// =======================
// A student's read-only view of their own month.
func (atc *AttendanceController) MyMonth(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}

	person, err := atc.People.FindByID(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Account not found")
	}

	rows, keys, err := buildRows(atc.Ledger, []personModel.PersonModel{*person}, year, month)
	if err != nil {
		log.Println("[ERROR] attendance self view:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	return helper.Success(c, "OK", fiber.Map{
		"year":    year,
		"month":   month,
		"fridays": keys,
		"row":     rows[0],
	})
}

// =======================
// POST /api/a/attendance
// =======================
// Marks or clears one Friday cell. Only Friday dates are accepted;
// the grid has no other columns.
func (atc *AttendanceController) Mark(c *fiber.Ctx) error {
	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.PersonID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "person_id is required")
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	if day.Weekday() != time.Friday {
		return helper.Error(c, fiber.StatusBadRequest, "date must be a Friday")
	}

	if church := helper.GetChurchIDFromToken(c); church != "" {
		target, err := atc.People.FindByID(req.PersonID)
		if err != nil || target.PersonChurchID != church {
			return helper.Error(c, fiber.StatusNotFound, "Person not found")
		}
	}

	if err := atc.Ledger.SetStatus(req.PersonID, req.Date, req.Present); err != nil {
		log.Println("[ERROR] attendance mark:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.Success(c, "Attendance saved", fiber.Map{
		"person_id": req.PersonID,
		"date":      req.Date,
		"present":   req.Present,
	})
}
