package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ==============================
   PaymentInfo — one ledger entry
============================== */

// PaymentInfo records a month's subscription payment. HandedOver flips
// to true once the servant delivered the cash to the church treasury.
// Clearing a payment removes the whole entry, HandedOver included.
type PaymentInfo struct {
	Date       time.Time `json:"date"`
	HandedOver bool      `json:"handed_over"`
}

/* ==============================
   MODEL
============================== */

type FamilyModel struct {
	FamilyID uuid.UUID `gorm:"type:uuid;primaryKey;column:family_id" json:"family_id"`

	FamilyName         string  `gorm:"type:varchar(120);not null;column:family_name" json:"family_name"`
	FamilyMembersCount int     `gorm:"not null;default:1;column:family_members_count" json:"family_members_count"`
	FamilyPhone1       string  `gorm:"type:varchar(20);not null;column:family_phone1" json:"family_phone1"`
	FamilyPhone2       *string `gorm:"type:varchar(20);column:family_phone2" json:"family_phone2,omitempty"`

	// Fixed default, not user-settable at creation.
	FamilyPassword string `gorm:"type:varchar(60);not null;default:'0000';column:family_password" json:"-"`

	FamilyChurchID string `gorm:"type:varchar(8);not null;index;column:family_church_id" json:"family_church_id"`
	FamilyNotes    string `gorm:"type:text;column:family_notes" json:"family_notes"`

	// Sparse ledger keyed by period key "YYYY-MM". A missing key means
	// "unpaid that month".
	FamilyPayments datatypes.JSONType[map[string]PaymentInfo] `gorm:"column:family_payments" json:"family_payments"`

	FamilyCreatedAt time.Time `gorm:"column:family_created_at;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt time.Time `gorm:"column:family_updated_at;autoUpdateTime" json:"family_updated_at"`
}

func (FamilyModel) TableName() string { return "families" }

func (m *FamilyModel) BeforeCreate(tx *gorm.DB) error {
	if m.FamilyID == uuid.Nil {
		m.FamilyID = uuid.New()
	}
	return nil
}

// Payments returns the ledger map, never nil.
func (m *FamilyModel) Payments() map[string]PaymentInfo {
	p := m.FamilyPayments.Data()
	if p == nil {
		p = map[string]PaymentInfo{}
	}
	return p
}

func (m *FamilyModel) SetPayments(p map[string]PaymentInfo) {
	m.FamilyPayments = datatypes.NewJSONType(p)
}
