package constants

import "fmt"

// ==========================
// ✅ Roles
// ==========================
const (
	RoleDeveloper = "developer"
	RolePriest    = "priest"
	RoleServant   = "servant"
	RoleStudent   = "student"
)

// Arabic display labels, exactly as the mobile app renders them.
var RoleLabels = map[string]string{
	RoleDeveloper: "مطور النظام",
	RolePriest:    "كاهن",
	RoleServant:   "خادم",
	RoleStudent:   "مخدوم",
}

// Role error message templates
const (
	ErrOnlyServantsCanAccess  = "❌ Only servants, priests, or the developer may access %s."
	ErrOnlyPriestsCanAccess   = "❌ Only priests or the developer may access %s."
	ErrOnlyDeveloperCanAccess = "❌ Only the developer may access %s."
)

func RoleErrorServant(feature string) string {
	return fmt.Sprintf(ErrOnlyServantsCanAccess, feature)
}

func RoleErrorPriest(feature string) string {
	return fmt.Sprintf(ErrOnlyPriestsCanAccess, feature)
}

func RoleErrorDeveloper(feature string) string {
	return fmt.Sprintf(ErrOnlyDeveloperCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleServant,
		RolePriest,
		RoleDeveloper,
	}

	ServantAndAbove = []string{
		RoleServant,
		RolePriest,
		RoleDeveloper,
	}

	PriestAndAbove = []string{
		RolePriest,
		RoleDeveloper,
	}

	DeveloperOnly = []string{
		RoleDeveloper,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
