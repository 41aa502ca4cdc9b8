package component

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// DamageType is the category of incoming damage.
type DamageType int

const (
	DamagePhysical DamageType = iota
	DamagePiercing
)

func (d DamageType) String() string {
	switch d {
	case DamagePhysical:
		return "physical"
	case DamagePiercing:
		return "piercing"
	}
	return fmt.Sprintf("DamageType(%d)", int(d))
}

// ParseDamageType maps a config name to a DamageType.
func ParseDamageType(s string) (DamageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "physical":
		return DamagePhysical, nil
	case "piercing":
		return DamagePiercing, nil
	}
	return 0, fmt.Errorf("unknown damage type %q", s)
}

// Protection returns the protection category that mitigates d. Damage types
// without one are not mitigated.
func (d DamageType) Protection() (ProtectionType, bool) {
	switch d {
	case DamagePhysical:
		return ProtectionPhysical, true
	}
	return 0, false
}

// ProtectionType is the category of equipped protection.
type ProtectionType int

const (
	ProtectionPhysical ProtectionType = iota
)

func (p ProtectionType) String() string {
	if p == ProtectionPhysical {
		return "physical"
	}
	return fmt.Sprintf("ProtectionType(%d)", int(p))
}

// ParseProtectionType maps a config name to a ProtectionType.
func ParseProtectionType(s string) (ProtectionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "physical":
		return ProtectionPhysical, nil
	}
	return 0, fmt.Errorf("unknown protection type %q", s)
}

// DamageEffect is the damage a weapon carries.
type DamageEffect struct {
	Name   string
	Amount int
	Type   DamageType
	// Source is the id of the attacker, filled in by the hitbox.
	Source uuid.UUID
}

// ProtectionEffect is a piece of mitigation granted by armor.
type ProtectionEffect struct {
	Name   string
	Amount int
	Type   ProtectionType
}

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	AttackerID uuid.UUID
	TargetID   uuid.UUID
	HurtboxID  uuid.UUID
	Damage     int
	Multiplier float64
	Position   mgl64.Vec3
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter allows components to emit combat events.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
