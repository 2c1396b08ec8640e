package seeds

import (
	"gorm.io/gorm"

	"karmaty_backend/internals/seeds/stages"
	"karmaty_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	stages.SeedStages(db)
	users.SeedDeveloper(db)
}
