package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel is the sparse Friday ledger: a row exists only
// when the person was present on that date. Absence is implicit and is
// never stored.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordPersonID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_person_date,priority:1;column:attendance_record_person_id" json:"attendance_record_person_id"`

	// Calendar date "YYYY-MM-DD".
	AttendanceRecordDate string `gorm:"type:varchar(10);not null;uniqueIndex:uniq_person_date,priority:2;column:attendance_record_date" json:"attendance_record_date"`

	// Denormalized from the person at write time for partition filtering.
	// Stale if the person later changes church; not corrected retroactively.
	AttendanceRecordChurchID string `gorm:"type:varchar(8);index;column:attendance_record_church_id" json:"attendance_record_church_id"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}
