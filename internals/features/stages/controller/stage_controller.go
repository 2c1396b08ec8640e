package controller

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	stageService "karmaty_backend/internals/features/stages/service"
	helper "karmaty_backend/internals/helpers"
)

type StageController struct {
	Service *stageService.StageService
}

func NewStageController(db *gorm.DB) *StageController {
	return &StageController{Service: stageService.NewStageService(db)}
}

// stageParam decodes the :name path segment; stage names are Arabic and
// arrive percent-encoded.
func stageParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

type stageRequest struct {
	Name string `json:"name"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type unlockRequest struct {
	PIN string `json:"pin"`
}

// stageView never exposes the PIN itself, only whether one exists.
type stageView struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	IsStaff  bool   `json:"is_staff"`
	Gated    bool   `json:"gated"`
}

// =======================
// GET /api/stages
// =======================
// Public list of student stages, used by the registration screen.
func (sc *StageController) ListPublic(c *fiber.Ctx) error {
	stages, err := sc.Service.StudentStages()
	if err != nil {
		log.Println("[ERROR] list stages:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load stages")
	}

	views := make([]stageView, 0, len(stages))
	for _, s := range stages {
		views = append(views, stageView{
			Name:     s.StageName,
			Position: s.StagePosition,
			IsStaff:  s.StageIsStaff,
			Gated:    s.StagePIN != nil,
		})
	}
	return helper.Success(c, "OK", views)
}

// =======================
// POST /api/a/stages
// =======================
func (sc *StageController) Add(c *fiber.Ctx) error {
	if !constants.PermissionsFor(helper.GetRoleFromToken(c)).CanManageStages {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("stage management"))
	}

	var req stageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return helper.Error(c, fiber.StatusBadRequest, "name is required")
	}

	stage, err := sc.Service.Add(req.Name)
	if err != nil {
		if errors.Is(err, stageService.ErrStageExists) {
			return helper.Error(c, fiber.StatusConflict, "Stage already exists")
		}
		log.Println("[ERROR] add stage:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add stage")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Stage added", stage)
}

// =======================
// DELETE /api/a/stages/:name
// =======================
func (sc *StageController) Delete(c *fiber.Ctx) error {
	if !constants.PermissionsFor(helper.GetRoleFromToken(c)).CanManageStages {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("stage management"))
	}

	name := stageParam(c)
	if name == constants.StaffStage {
		return helper.Error(c, fiber.StatusBadRequest, "The staff stage cannot be deleted")
	}

	deleted, err := sc.Service.Delete(name)
	if err != nil {
		log.Println("[ERROR] delete stage:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete stage")
	}
	if !deleted {
		return helper.Error(c, fiber.StatusNotFound, "Stage not found")
	}
	return helper.Success(c, "Stage deleted", nil)
}

// =======================
// PUT /api/a/stages/:name/move
// =======================
func (sc *StageController) Move(c *fiber.Ctx) error {
	if !constants.PermissionsFor(helper.GetRoleFromToken(c)).CanManageStages {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("stage management"))
	}

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := sc.Service.Move(stageParam(c), req.Direction); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Stage not found")
		}
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Stage moved", nil)
}

// =======================
// POST /api/u/stages/:name/unlock
// =======================
// One gate attempt. Students pass for their own stage without a PIN;
// the developer passes everywhere.
func (sc *StageController) Unlock(c *fiber.Ctx) error {
	var req unlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	unlocked, found, err := sc.Service.Unlock(
		helper.GetRoleFromToken(c),
		helper.GetStageFromToken(c),
		stageParam(c),
		req.PIN,
	)
	if err != nil {
		log.Println("[ERROR] stage unlock:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check PIN")
	}
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Stage not found")
	}
	if !unlocked {
		// Wrong PIN keeps the prompt open client-side; the input clears.
		return helper.ErrorWithDetails(c, fiber.StatusUnauthorized, "Wrong PIN", fiber.Map{
			"unlocked": false,
		})
	}
	return helper.Success(c, "Unlocked", fiber.Map{"unlocked": true})
}
