package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	familyModel "karmaty_backend/internals/features/families/model"
)

type FamilyService struct {
	DB *gorm.DB
}

func NewFamilyService(db *gorm.DB) *FamilyService {
	return &FamilyService{DB: db}
}

// List returns a church's families, optionally narrowed by a substring
// match on name or either phone.
func (s *FamilyService) List(churchID, search string) ([]familyModel.FamilyModel, error) {
	q := s.DB.Where("family_church_id = ?", churchID)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		q = q.Where("family_name LIKE ? OR family_phone1 LIKE ? OR family_phone2 LIKE ?", like, like, like)
	}

	var families []familyModel.FamilyModel
	err := q.Order("family_name asc").Find(&families).Error
	return families, err
}

func (s *FamilyService) FindByID(familyID uuid.UUID) (*familyModel.FamilyModel, error) {
	var family familyModel.FamilyModel
	if err := s.DB.First(&family, "family_id = ?", familyID).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// Create registers a family with an empty ledger and the fixed default
// password.
func (s *FamilyService) Create(family *familyModel.FamilyModel) error {
	family.FamilyPassword = constants.FamilyDefaultPassword
	family.SetPayments(map[string]familyModel.PaymentInfo{})
	return s.DB.Create(family).Error
}

// Update rewrites the profile fields only; the payments ledger is never
// touched here so a profile edit cannot drop payment history.
func (s *FamilyService) Update(familyID uuid.UUID, fields map[string]interface{}) (*familyModel.FamilyModel, error) {
	delete(fields, "family_payments")
	delete(fields, "family_password")
	if len(fields) == 0 {
		return s.FindByID(familyID)
	}

	if err := s.DB.Model(&familyModel.FamilyModel{}).
		Where("family_id = ?", familyID).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.FindByID(familyID)
}

func (s *FamilyService) Delete(familyID uuid.UUID) (bool, error) {
	res := s.DB.Where("family_id = ?", familyID).Delete(&familyModel.FamilyModel{})
	return res.RowsAffected > 0, res.Error
}
