package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"golang.org/x/crypto/bcrypt"

	"karmaty_backend/internals/configs"
	"karmaty_backend/internals/constants"
	personModel "karmaty_backend/internals/features/people/model"
	personService "karmaty_backend/internals/features/people/service"
	"karmaty_backend/internals/features/users/auth/dto"
	authHelper "karmaty_backend/internals/features/users/auth/helper"
	helper "karmaty_backend/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB     *gorm.DB
	People *personService.PersonService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, People: personService.NewPersonService(db)}
}

func signToken(p *personModel.PersonModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   p.PersonID.String(),
		"role":      p.PersonRole,
		"church_id": p.PersonChurchID,
		"stage":     p.PersonStage,
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// =======================
// POST /api/auth/register
// =======================
// Self-registration always produces a student account; staff accounts
// are created from the admin surface instead. The caller is logged in
// immediately on success.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Stage == constants.StaffStage {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot self-register into the staff stage")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	person := personModel.PersonModel{
		PersonName:     req.PersonName,
		PersonPhone:    req.Phone,
		PersonPassword: string(hashed),
		PersonRole:     constants.RoleStudent,
		PersonStage:    req.Stage,
		PersonChurchID: req.ChurchCode,
	}
	if err := ac.People.Create(&person); err != nil {
		if errors.Is(err, personService.ErrPhoneTaken) {
			return helper.Error(c, fiber.StatusConflict, "Phone number already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	tokenStr, err := signToken(&person)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	log.Println("[SUCCESS] registered:", person.PersonPhone)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", fiber.Map{
		"token": tokenStr,
		"user":  person,
	})
}

// =======================
// POST /api/auth/login
// =======================
// Login is phone + password + church code. The seeded developer account
// logs in by its reserved identifier and skips the church-code match.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	person, err := ac.People.FindByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Wrong phone number or password")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	if person.PersonRole != constants.RoleDeveloper && req.ChurchCode != person.PersonChurchID {
		return helper.Error(c, fiber.StatusUnauthorized, "Wrong church code")
	}

	if bcrypt.CompareHashAndPassword([]byte(person.PersonPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Wrong phone number or password")
	}

	tokenStr, err := signToken(person)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokenStr,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login successful", fiber.Map{
		"token": tokenStr,
		"user":  person,
	})
}

// =======================
// POST /api/auth/logout
// =======================
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logged out", nil)
}

// =======================
// PUT /api/u/password
// =======================
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	person, err := ac.People.FindByID(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Account not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(person.PersonPassword), []byte(req.OldPassword)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Wrong current password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ac.DB.Model(person).Update("person_password", string(hashed)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.Success(c, "Password updated", nil)
}
