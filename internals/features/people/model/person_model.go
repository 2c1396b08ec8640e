package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonModel represents the people table: students, servants, priests
// and the developer account all live here, separated by person_role.
type PersonModel struct {
	PersonID uuid.UUID `gorm:"type:uuid;primaryKey;column:person_id" json:"person_id"`

	PersonName string `gorm:"type:varchar(120);not null;column:person_name" json:"person_name"`

	// Phone is globally unique and doubles as the login username.
	PersonPhone    string `gorm:"type:varchar(20);not null;uniqueIndex;column:person_phone" json:"person_phone"`
	PersonPassword string `gorm:"not null;column:person_password" json:"-"`

	PersonRole  string `gorm:"type:varchar(20);not null;default:'student';column:person_role" json:"person_role"`
	PersonStage string `gorm:"type:varchar(80);not null;column:person_stage" json:"person_stage"`

	// Tenant partition key (4-char church/service code).
	PersonChurchID string `gorm:"type:varchar(8);not null;index;column:person_church_id" json:"person_church_id"`

	PersonAddress         string  `gorm:"type:text;column:person_address" json:"person_address"`
	PersonGovernorate     *string `gorm:"type:varchar(60);column:person_governorate" json:"person_governorate,omitempty"`
	PersonDiocese         *string `gorm:"type:varchar(120);column:person_diocese" json:"person_diocese,omitempty"`
	PersonNotes           string  `gorm:"type:text;column:person_notes" json:"person_notes"`
	PersonNeedsVisitation bool    `gorm:"not null;default:false;column:person_needs_visitation" json:"person_needs_visitation"`

	PersonJoinedAt time.Time `gorm:"column:person_joined_at;autoCreateTime" json:"person_joined_at"`
}

func (PersonModel) TableName() string { return "people" }

func (m *PersonModel) BeforeCreate(tx *gorm.DB) error {
	if m.PersonID == uuid.Nil {
		m.PersonID = uuid.New()
	}
	return nil
}

// Username always mirrors the phone number.
func (m *PersonModel) Username() string { return m.PersonPhone }
