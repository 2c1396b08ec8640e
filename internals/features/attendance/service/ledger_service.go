package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "karmaty_backend/internals/features/attendance/model"
	personModel "karmaty_backend/internals/features/people/model"
)

/* ==============================
   Attendance ledger store

   Sparse encoding: a row exists only for present=true. Absence is the
   default and is never persisted.
============================== */

type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// GetStatus reports whether a present-entry exists for (person, date).
func (s *LedgerService) GetStatus(personID uuid.UUID, date string) (bool, error) {
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_record_person_id = ? AND attendance_record_date = ?", personID, date).
		Count(&count).Error
	return count > 0, err
}

// SetStatus is an idempotent upsert/delete. present=true inserts a row
// carrying the person's current church_id; present=false deletes. A
// personID that resolves to no person is a silent no-op.
func (s *LedgerService) SetStatus(personID uuid.UUID, date string, present bool) error {
	if !present {
		return s.DB.
			Where("attendance_record_person_id = ? AND attendance_record_date = ?", personID, date).
			Delete(&attendanceModel.AttendanceRecordModel{}).Error
	}

	var person personModel.PersonModel
	if err := s.DB.First(&person, "person_id = ?", personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	rec := attendanceModel.AttendanceRecordModel{
		AttendanceRecordPersonID: personID,
		AttendanceRecordDate:     date,
		AttendanceRecordChurchID: person.PersonChurchID,
	}
	// Tolerates being called from a stale read: an existing row wins.
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
}

// CountInMonth counts present-Fridays for one person in (year, month).
func (s *LedgerService) CountInMonth(personID uuid.UUID, year, month int) (int, error) {
	keys := FridayKeys(year, month)
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceRecordModel{}).
		Where("attendance_record_person_id = ? AND attendance_record_date IN ?", personID, keys).
		Count(&count).Error
	return int(count), err
}

// MonthMatrix loads per-Friday presence for a set of people in one
// query, keyed person → date → true.
func (s *LedgerService) MonthMatrix(personIDs []uuid.UUID, year, month int) (map[uuid.UUID]map[string]bool, error) {
	matrix := make(map[uuid.UUID]map[string]bool, len(personIDs))
	if len(personIDs) == 0 {
		return matrix, nil
	}

	var rows []attendanceModel.AttendanceRecordModel
	if err := s.DB.
		Where("attendance_record_person_id IN ? AND attendance_record_date IN ?", personIDs, FridayKeys(year, month)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		if matrix[r.AttendanceRecordPersonID] == nil {
			matrix[r.AttendanceRecordPersonID] = map[string]bool{}
		}
		matrix[r.AttendanceRecordPersonID][r.AttendanceRecordDate] = true
	}
	return matrix, nil
}
