package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "karmaty_backend/internals/features/attendance/model"
	personModel "karmaty_backend/internals/features/people/model"
)

// ErrPhoneTaken signals the phone-uniqueness rule; phones double as
// login usernames, so duplicates would collide at login.
var ErrPhoneTaken = errors.New("phone number already registered")

type PersonService struct {
	DB *gorm.DB
}

func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{DB: db}
}

func (s *PersonService) FindByID(personID uuid.UUID) (*personModel.PersonModel, error) {
	var person personModel.PersonModel
	if err := s.DB.First(&person, "person_id = ?", personID).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *PersonService) FindByPhone(phone string) (*personModel.PersonModel, error) {
	var person personModel.PersonModel
	if err := s.DB.First(&person, "person_phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// ListByStage returns one stage's roster inside a church, name order.
func (s *PersonService) ListByStage(churchID, stage string) ([]personModel.PersonModel, error) {
	var people []personModel.PersonModel
	err := s.DB.
		Where("person_church_id = ? AND person_stage = ?", churchID, stage).
		Order("person_name asc").Find(&people).Error
	return people, err
}

// Search is the developer's cross-tenant lookup over the master table.
// An empty churchID means "all churches".
func (s *PersonService) Search(churchID, search string) ([]personModel.PersonModel, error) {
	q := s.DB.Model(&personModel.PersonModel{})
	if churchID != "" {
		q = q.Where("person_church_id = ?", churchID)
	}
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		q = q.Where("person_name LIKE ? OR person_phone LIKE ?", like, like)
	}

	var people []personModel.PersonModel
	err := q.Order("person_church_id asc, person_name asc").Find(&people).Error
	return people, err
}

func (s *PersonService) phoneInUse(phone string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := s.DB.Model(&personModel.PersonModel{}).Where("person_phone = ?", phone)
	if excludeID != uuid.Nil {
		q = q.Where("person_id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (s *PersonService) Create(person *personModel.PersonModel) error {
	taken, err := s.phoneInUse(person.PersonPhone, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrPhoneTaken
	}
	return s.DB.Create(person).Error
}

// Update rewrites profile fields. A phone change re-checks uniqueness;
// the username follows automatically since it mirrors the phone.
func (s *PersonService) Update(personID uuid.UUID, fields map[string]interface{}) (*personModel.PersonModel, error) {
	if len(fields) == 0 {
		return s.FindByID(personID)
	}
	if phone, ok := fields["person_phone"].(string); ok {
		taken, err := s.phoneInUse(phone, personID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneTaken
		}
	}

	if err := s.DB.Model(&personModel.PersonModel{}).
		Where("person_id = ?", personID).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.FindByID(personID)
}

// Delete removes the person together with their attendance rows, so no
// orphaned ledger entries survive.
func (s *PersonService) Delete(personID uuid.UUID) (bool, error) {
	var deleted bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("attendance_record_person_id = ?", personID).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("person_id = ?", personID).Delete(&personModel.PersonModel{})
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}
