package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"karmaty_backend/internals/constants"
	personModel "karmaty_backend/internals/features/people/model"
)

// SeedDeveloper creates the single developer account. It logs in by the
// reserved identifier instead of a phone number and belongs to no
// church, which is what makes it cross-tenant.
func SeedDeveloper(db *gorm.DB) {
	var existing personModel.PersonModel
	if err := db.First(&existing, "person_phone = ?", constants.DeveloperLoginPhone).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("0000"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash developer password: %v", err)
		return
	}

	dev := personModel.PersonModel{
		PersonName:     "System Developer",
		PersonPhone:    constants.DeveloperLoginPhone,
		PersonPassword: string(hashed),
		PersonRole:     constants.RoleDeveloper,
		PersonStage:    constants.StaffStage,
	}
	if err := db.Create(&dev).Error; err != nil {
		log.Printf("❌ Failed to seed developer account: %v", err)
	} else {
		log.Println("✅ Seeded developer account")
	}
}
