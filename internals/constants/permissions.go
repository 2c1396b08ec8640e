package constants

/* ==============================
   Capability resolution

   Role checks used to be string comparisons scattered through every
   screen; the gate and the mutators now all consume this one table.
============================== */

type Permissions struct {
	CanManagePeople   bool // add / edit person records
	CanDeletePerson   bool
	CanManageStages   bool
	CanManageFamilies bool // family CRUD + payment toggle
	CanHandover       bool
	CanViewMasterDB   bool // developer master data table
	CrossTenant       bool // sees every church_id
	BypassStageGates  bool
}

func PermissionsFor(role string) Permissions {
	switch role {
	case RoleDeveloper:
		return Permissions{
			CanManagePeople:   true,
			CanDeletePerson:   true,
			CanManageStages:   true,
			CanManageFamilies: true,
			CanHandover:       true,
			CanViewMasterDB:   true,
			CrossTenant:       true,
			BypassStageGates:  true,
		}
	case RolePriest:
		return Permissions{
			CanManagePeople:   true,
			CanDeletePerson:   true,
			CanManageStages:   true,
			CanManageFamilies: true,
			CanHandover:       true,
		}
	case RoleServant:
		return Permissions{
			CanManagePeople:   true,
			CanManageFamilies: true,
			CanHandover:       true,
		}
	default: // student
		return Permissions{}
	}
}

// CanEditPerson answers whether actorRole may edit a record held by
// targetRole. Servants may not touch priests or the developer.
func CanEditPerson(actorRole, targetRole string) bool {
	switch actorRole {
	case RoleDeveloper, RolePriest:
		return true
	case RoleServant:
		return targetRole != RolePriest && targetRole != RoleDeveloper
	default:
		return false
	}
}
