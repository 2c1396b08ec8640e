package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	"karmaty_backend/internals/features/people/dto"
	personModel "karmaty_backend/internals/features/people/model"
	personService "karmaty_backend/internals/features/people/service"
	authHelper "karmaty_backend/internals/features/users/auth/helper"
	helper "karmaty_backend/internals/helpers"
)

type PersonController struct {
	Service *personService.PersonService
}

func NewPersonController(db *gorm.DB) *PersonController {
	return &PersonController{Service: personService.NewPersonService(db)}
}

// actorChurch resolves the tenant a mutation applies to. The developer
// may act on any church by passing an explicit code; everyone else is
// pinned to their token's church.
func actorChurch(c *fiber.Ctx, requested string) string {
	tokenChurch := helper.GetChurchIDFromToken(c)
	if tokenChurch == "" && requested != "" {
		return requested
	}
	return tokenChurch
}

// =======================
// POST /api/a/people
// =======================
func (pc *PersonController) Create(c *fiber.Ctx) error {
	actorRole := helper.GetRoleFromToken(c)

	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.CanEditPerson(actorRole, req.Role) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("staff record management"))
	}

	person := personModel.PersonModel{
		PersonName:            req.PersonName,
		PersonPhone:           req.Phone,
		PersonRole:            req.Role,
		PersonStage:           req.Stage,
		PersonChurchID:        actorChurch(c, req.ChurchCode),
		PersonAddress:         req.Address,
		PersonGovernorate:     req.Governorate,
		PersonDiocese:         req.Diocese,
		PersonNotes:           req.Notes,
		PersonNeedsVisitation: req.NeedsVisitation,
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		person.PersonPassword = string(hashed)
	}
	if person.PersonRole != constants.RoleStudent {
		person.PersonStage = constants.StaffStage
	}

	if err := pc.Service.Create(&person); err != nil {
		if errors.Is(err, personService.ErrPhoneTaken) {
			return helper.Error(c, fiber.StatusConflict, "Phone number already registered")
		}
		log.Println("[ERROR] create person:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create person")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Person created", person)
}

// =======================
// PUT /api/a/people/:id
// =======================
func (pc *PersonController) Update(c *fiber.Ctx) error {
	actorRole := helper.GetRoleFromToken(c)

	personID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	target, err := pc.Service.FindByID(personID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Person not found")
	}
	if !constants.CanEditPerson(actorRole, target.PersonRole) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("staff record management"))
	}
	if church := helper.GetChurchIDFromToken(c); church != "" && target.PersonChurchID != church {
		return helper.Error(c, fiber.StatusNotFound, "Person not found")
	}

	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Role != nil && !constants.CanEditPerson(actorRole, *req.Role) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("role changes"))
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return helper.Success(c, "Nothing to update", target)
	}

	updated, err := pc.Service.Update(personID, fields)
	if err != nil {
		if errors.Is(err, personService.ErrPhoneTaken) {
			return helper.Error(c, fiber.StatusConflict, "Phone number already registered")
		}
		log.Println("[ERROR] update person:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update person")
	}
	return helper.Success(c, "Person updated", updated)
}

// =======================
// DELETE /api/a/people/:id
// =======================
// Deleting a person also wipes their attendance history.
func (pc *PersonController) Delete(c *fiber.Ctx) error {
	actorRole := helper.GetRoleFromToken(c)
	if !constants.PermissionsFor(actorRole).CanDeletePerson {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("person deletion"))
	}

	personID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid person ID")
	}

	target, err := pc.Service.FindByID(personID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Person not found")
	}
	if church := helper.GetChurchIDFromToken(c); church != "" && target.PersonChurchID != church {
		return helper.Error(c, fiber.StatusNotFound, "Person not found")
	}
	if !constants.CanEditPerson(actorRole, target.PersonRole) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPriest("person deletion"))
	}

	deleted, err := pc.Service.Delete(personID)
	if err != nil {
		log.Println("[ERROR] delete person:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete person")
	}
	if !deleted {
		return helper.Error(c, fiber.StatusNotFound, "Person not found")
	}
	return helper.Success(c, "Person deleted", nil)
}

// =======================
// GET /api/u/me
// =======================
func (pc *PersonController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	person, err := pc.Service.FindByID(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.Success(c, "OK", person)
}

// =======================
// PUT /api/u/profile
// =======================
// Self-service profile edit: no role, stage, phone or tenant changes.
func (pc *PersonController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	updated, err := pc.Service.Update(userID, fields)
	if err != nil {
		log.Println("[ERROR] update profile:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.Success(c, "Profile updated", updated)
}
