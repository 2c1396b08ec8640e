package stages

import (
	"log"

	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	stageModel "karmaty_backend/internals/features/stages/model"
)

type stageSeed struct {
	Name    string
	PIN     string // empty = no PIN
	IsStaff bool
}

// The six default student stages in grid order, each with its fixed
// PIN, plus the staff stage at the end.
var defaultStages = []stageSeed{
	{Name: "حضانة", PIN: "0001"},
	{Name: "ابتدائي 1-3", PIN: "0002"},
	{Name: "ابتدائي 4-6", PIN: "0003"},
	{Name: "إعدادي", PIN: "0004"},
	{Name: "ثانوي", PIN: "0005"},
	{Name: "جامعة وخريجين", PIN: "0006"},
	{Name: constants.StaffStage, IsStaff: true},
}

// SeedStages inserts the default stage list, skipping names that
// already exist so reruns are safe.
func SeedStages(db *gorm.DB) {
	for i, seed := range defaultStages {
		var existing stageModel.StageModel
		if err := db.First(&existing, "stage_name = ?", seed.Name).Error; err == nil {
			continue
		}

		stage := stageModel.StageModel{
			StageName:     seed.Name,
			StagePosition: i,
			StageIsStaff:  seed.IsStaff,
		}
		if seed.PIN != "" {
			pin := seed.PIN
			stage.StagePIN = &pin
		}

		if err := db.Create(&stage).Error; err != nil {
			log.Printf("❌ Failed to seed stage '%s': %v", seed.Name, err)
		} else {
			log.Printf("✅ Seeded stage '%s'", seed.Name)
		}
	}
}
