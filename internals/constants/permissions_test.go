package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsLadder(t *testing.T) {
	dev := PermissionsFor(RoleDeveloper)
	assert.True(t, dev.CrossTenant)
	assert.True(t, dev.CanViewMasterDB)
	assert.True(t, dev.BypassStageGates)

	priest := PermissionsFor(RolePriest)
	assert.True(t, priest.CanDeletePerson)
	assert.True(t, priest.CanManageStages)
	assert.False(t, priest.CrossTenant)
	assert.False(t, priest.BypassStageGates)

	servant := PermissionsFor(RoleServant)
	assert.True(t, servant.CanManagePeople)
	assert.True(t, servant.CanManageFamilies)
	assert.True(t, servant.CanHandover)
	assert.False(t, servant.CanDeletePerson)
	assert.False(t, servant.CanManageStages)

	student := PermissionsFor(RoleStudent)
	assert.Equal(t, Permissions{}, student)

	// Unknown roles fall back to no capabilities.
	assert.Equal(t, Permissions{}, PermissionsFor("janitor"))
}

func TestCanEditPerson(t *testing.T) {
	// Servants cannot touch priests or the developer.
	assert.True(t, CanEditPerson(RoleServant, RoleStudent))
	assert.True(t, CanEditPerson(RoleServant, RoleServant))
	assert.False(t, CanEditPerson(RoleServant, RolePriest))
	assert.False(t, CanEditPerson(RoleServant, RoleDeveloper))

	assert.True(t, CanEditPerson(RolePriest, RoleServant))
	assert.True(t, CanEditPerson(RoleDeveloper, RolePriest))

	assert.False(t, CanEditPerson(RoleStudent, RoleStudent))
}
