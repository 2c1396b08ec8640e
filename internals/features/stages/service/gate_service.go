package service

import (
	"karmaty_backend/internals/constants"
)

/* ==============================
   PIN gate

   Session-scoped unlock for a gated resource (a stage roster, or the
   family/financial module). Nothing here is persisted; the client
   reverts to Locked on navigation or reload.
============================== */

type GateState int

const (
	GateLocked GateState = iota
	GatePromptOpen
	GateUnlocked
)

type Gate struct {
	pin   *string // nil = no configured PIN, gate opens on any input
	state GateState

	// Set after a failed attempt; cleared on the next prompt or success.
	LastError bool
}

func NewGate(pin *string) *Gate {
	return &Gate{pin: pin}
}

func (g *Gate) State() GateState { return g.state }

// Prompt moves Locked → PromptOpen when the resource is selected.
func (g *Gate) Prompt() {
	if g.state == GateLocked {
		g.state = GatePromptOpen
		g.LastError = false
	}
}

// Submit tries an entered PIN. A mismatch keeps the prompt open with
// the error flag raised; there is no attempt limit.
func (g *Gate) Submit(input string) bool {
	switch g.state {
	case GateUnlocked:
		return true
	case GateLocked:
		return false
	}
	if g.pin == nil || *g.pin == input {
		g.state = GateUnlocked
		g.LastError = false
		return true
	}
	g.LastError = true
	return false
}

// Reset models navigating away or reloading.
func (g *Gate) Reset() {
	g.state = GateLocked
	g.LastError = false
}

// ResolveGate builds the gate for (actor, target stage), applying the
// bypass rules: the developer skips every gate, and a student skips the
// gate for their own stage only.
func ResolveGate(role, ownStage, targetStage string, pin *string) *Gate {
	g := NewGate(pin)
	if constants.PermissionsFor(role).BypassStageGates {
		g.state = GateUnlocked
		return g
	}
	if role == constants.RoleStudent && ownStage == targetStage {
		g.state = GateUnlocked
	}
	return g
}
