package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageModel is an ordered, named cohort. Seeded stages carry a 4-digit
// access PIN; stages added later have none, which leaves them ungated.
type StageModel struct {
	StageID uuid.UUID `gorm:"type:uuid;primaryKey;column:stage_id" json:"stage_id"`

	StageName     string `gorm:"type:varchar(80);not null;uniqueIndex;column:stage_name" json:"stage_name"`
	StagePosition int    `gorm:"not null;default:0;column:stage_position" json:"stage_position"`

	StagePIN *string `gorm:"type:varchar(4);column:stage_pin" json:"-"`

	// Sentinel for the servants/priest cohort; excluded from the
	// PIN-gated student selection lists.
	StageIsStaff bool `gorm:"not null;default:false;column:stage_is_staff" json:"stage_is_staff"`
}

func (StageModel) TableName() string { return "stages" }

func (m *StageModel) BeforeCreate(tx *gorm.DB) error {
	if m.StageID == uuid.Nil {
		m.StageID = uuid.New()
	}
	return nil
}
