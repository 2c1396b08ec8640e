package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	"karmaty_backend/internals/features/families/dto"
	familyModel "karmaty_backend/internals/features/families/model"
	familyService "karmaty_backend/internals/features/families/service"
	authHelper "karmaty_backend/internals/features/users/auth/helper"
	helper "karmaty_backend/internals/helpers"
)

type FamilyController struct {
	Families      *familyService.FamilyService
	Subscriptions *familyService.SubscriptionService
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{
		Families:      familyService.NewFamilyService(db),
		Subscriptions: familyService.NewSubscriptionService(db),
	}
}

func requireFamilyManager(c *fiber.Ctx) error {
	if !constants.PermissionsFor(helper.GetRoleFromToken(c)).CanManageFamilies {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorServant("the families module"))
	}
	return nil
}

// loadScoped fetches a family and hides it when it belongs to another
// tenant.
func (fc *FamilyController) loadScoped(c *fiber.Ctx) (*familyModel.FamilyModel, error) {
	familyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid family ID")
	}
	family, err := fc.Families.FindByID(familyID)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusNotFound, "Family not found")
	}
	if church := helper.GetChurchIDFromToken(c); church != "" && family.FamilyChurchID != church {
		return nil, helper.Error(c, fiber.StatusNotFound, "Family not found")
	}
	return family, nil
}

// =======================
// POST /api/a/families/unlock
// =======================
// The whole module sits behind a fixed PIN; the unlock is per-session
// on the client, so this endpoint is a pure check.
func (fc *FamilyController) Unlock(c *fiber.Ctx) error {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if constants.PermissionsFor(helper.GetRoleFromToken(c)).BypassStageGates ||
		req.PIN == constants.FamiliesAccessPIN {
		return helper.Success(c, "Unlocked", fiber.Map{"unlocked": true})
	}
	return helper.ErrorWithDetails(c, fiber.StatusUnauthorized, "Wrong PIN", fiber.Map{
		"unlocked": false,
	})
}

// =======================
// GET /api/a/families?search=&year=&month=
// =======================
// Listing plus the month's stats. The stats cover exactly the filtered
// view, so a narrowed search reports numbers for what is on screen.
func (fc *FamilyController) List(c *fiber.Ctx) error {
	if err := requireFamilyManager(c); err != nil {
		return err
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid month")
	}

	churchID := helper.GetChurchIDFromToken(c)
	if churchID == "" {
		churchID = c.Query("church")
	}

	families, err := fc.Families.List(churchID, c.Query("search"))
	if err != nil {
		log.Println("[ERROR] list families:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load families")
	}

	return helper.Success(c, "OK", fiber.Map{
		"year":     year,
		"month":    month,
		"families": families,
		"stats":    familyService.Stats(families, year, month),
	})
}

// =======================
// POST /api/a/families
// =======================
func (fc *FamilyController) Create(c *fiber.Ctx) error {
	if err := requireFamilyManager(c); err != nil {
		return err
	}

	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	family := familyModel.FamilyModel{
		FamilyName:         req.FamilyName,
		FamilyMembersCount: req.MembersCount,
		FamilyPhone1:       req.Phone1,
		FamilyPhone2:       req.Phone2,
		FamilyChurchID:     helper.GetChurchIDFromToken(c),
		FamilyNotes:        req.Notes,
	}
	if family.FamilyChurchID == "" {
		family.FamilyChurchID = c.Query("church")
	}

	if err := fc.Families.Create(&family); err != nil {
		log.Println("[ERROR] create family:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create family")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Family created", family)
}

// =======================
// PUT /api/a/families/:id
// =======================
// Profile-only update: omitting fields leaves them untouched, and the
// payments ledger survives every edit.
func (fc *FamilyController) Update(c *fiber.Ctx) error {
	if err := requireFamilyManager(c); err != nil {
		return err
	}
	family, err := fc.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return helper.Success(c, "Nothing to update", family)
	}

	updated, err := fc.Families.Update(family.FamilyID, fields)
	if err != nil {
		log.Println("[ERROR] update family:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update family")
	}
	return helper.Success(c, "Family updated", updated)
}

// =======================
// DELETE /api/a/families/:id
// =======================
func (fc *FamilyController) Delete(c *fiber.Ctx) error {
	if err := requireFamilyManager(c); err != nil {
		return err
	}
	family, err := fc.loadScoped(c)
	if err != nil {
		return err
	}

	deleted, err := fc.Families.Delete(family.FamilyID)
	if err != nil {
		log.Println("[ERROR] delete family:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete family")
	}
	if !deleted {
		return helper.Error(c, fiber.StatusNotFound, "Family not found")
	}
	return helper.Success(c, "Family deleted", nil)
}

// =======================
// POST /api/a/families/:id/toggle
// =======================
// Flips the month's paid state. Unmarking deletes the whole entry,
// handed-over mark included.
func (fc *FamilyController) TogglePayment(c *fiber.Ctx) error {
	if err := requireFamilyManager(c); err != nil {
		return err
	}
	family, err := fc.loadScoped(c)
	if err != nil {
		return err
	}

	var req dto.TogglePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := fc.Subscriptions.TogglePayment(family.FamilyID, req.Year, req.Month, time.Now())
	if err != nil {
		log.Println("[ERROR] toggle payment:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to toggle payment")
	}
	return helper.Success(c, "Payment toggled", updated)
}

// =======================
// POST /api/a/families/handover
// =======================
func (fc *FamilyController) Handover(c *fiber.Ctx) error {
	if !constants.PermissionsFor(helper.GetRoleFromToken(c)).CanHandover {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorServant("the handover action"))
	}

	var req dto.HandoverRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	churchID := helper.GetChurchIDFromToken(c)
	if churchID == "" {
		churchID = c.Query("church")
	}

	changed, err := fc.Subscriptions.HandoverPayments(churchID, req.Year, req.Month)
	if err != nil {
		log.Println("[ERROR] handover:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hand over payments")
	}
	if !changed {
		return helper.Success(c, "Nothing to hand over", fiber.Map{"changed": false})
	}
	return helper.Success(c, "Payments handed over", fiber.Map{"changed": true})
}
