package constants

// StaffStage is the sentinel stage holding servants, priests and the
// developer. It is excluded from PIN-gated student listings.
const StaffStage = "الخدام والكاهن"

const (
	// SubscriptionAmount is the fixed monthly family subscription in EGP.
	SubscriptionAmount = 100

	// FamilyDefaultPassword is assigned to every family at creation and is
	// not user-settable.
	FamilyDefaultPassword = "0000"

	// FamiliesAccessPIN guards the family/financial module.
	FamiliesAccessPIN = "0000"

	// DeveloperLoginPhone is the seeded developer account's login
	// identifier. Login with it skips the church-code check.
	DeveloperLoginPhone = "R"
)
