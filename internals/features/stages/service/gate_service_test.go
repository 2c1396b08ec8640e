package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karmaty_backend/internals/constants"
)

func strPtr(s string) *string { return &s }

func TestGateLifecycle(t *testing.T) {
	g := NewGate(strPtr("0004"))
	assert.Equal(t, GateLocked, g.State())

	// Submitting while locked does nothing.
	assert.False(t, g.Submit("0004"))
	assert.Equal(t, GateLocked, g.State())

	g.Prompt()
	assert.Equal(t, GatePromptOpen, g.State())

	assert.True(t, g.Submit("0004"))
	assert.Equal(t, GateUnlocked, g.State())
	assert.False(t, g.LastError)

	// Reload drops back to locked.
	g.Reset()
	assert.Equal(t, GateLocked, g.State())
}

func TestGateWrongPinKeepsPromptOpen(t *testing.T) {
	g := NewGate(strPtr("0004"))
	g.Prompt()

	assert.False(t, g.Submit("1234"))
	assert.Equal(t, GatePromptOpen, g.State())
	assert.True(t, g.LastError)

	// No attempt limit; a later correct PIN still unlocks.
	assert.False(t, g.Submit("9999"))
	assert.True(t, g.Submit("0004"))
	assert.Equal(t, GateUnlocked, g.State())
	assert.False(t, g.LastError)
}

func TestGateNilPinUnlocksOnAnyInput(t *testing.T) {
	g := NewGate(nil)
	g.Prompt()
	assert.True(t, g.Submit("whatever"))
	assert.Equal(t, GateUnlocked, g.State())
}

func TestResolveGateDeveloperBypassesAll(t *testing.T) {
	g := ResolveGate(constants.RoleDeveloper, "", "إعدادي", strPtr("0004"))
	assert.Equal(t, GateUnlocked, g.State())
}

func TestResolveGateStudentOwnStageOnly(t *testing.T) {
	own := ResolveGate(constants.RoleStudent, "إعدادي", "إعدادي", strPtr("0004"))
	assert.Equal(t, GateUnlocked, own.State())

	other := ResolveGate(constants.RoleStudent, "إعدادي", "ثانوي", strPtr("0005"))
	assert.Equal(t, GateLocked, other.State())
}

func TestResolveGateServantAndPriestGetNoBypass(t *testing.T) {
	for _, role := range []string{constants.RoleServant, constants.RolePriest} {
		g := ResolveGate(role, constants.StaffStage, "إعدادي", strPtr("0004"))
		assert.Equal(t, GateLocked, g.State(), "role=%s", role)
	}
}
