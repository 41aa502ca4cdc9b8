package component

import (
	"github.com/google/uuid"

	"github.com/milk9111/dronesim/physics"
)

// Hitbox is the active damage volume of a weapon. It credits each hurtbox at
// most once per activation window.
type Hitbox struct {
	Emitter *CombatEventEmitter

	area      *physics.Area
	weapon    *Weapon
	wielder   Damageable
	wielderID uuid.UUID

	enabled bool
	hit     map[uuid.UUID]struct{}
}

// NewHitbox binds a hitbox to area. The hitbox starts disabled.
func NewHitbox(area *physics.Area) *Hitbox {
	h := &Hitbox{area: area, hit: make(map[uuid.UUID]struct{})}
	if area != nil {
		area.Owner = h
		area.Layer = physics.LayerHitbox
		area.Mask = physics.LayerHurtbox
		area.Monitoring = true
		area.SetDisabled(true)
		area.OnAreaEntered = h.OnAreaEntered
	}
	return h
}

// Initialize binds the weapon data and the wielder used for the self-hit
// guard. Call it before the first swing.
func (h *Hitbox) Initialize(weapon *Weapon, wielder Damageable, wielderID uuid.UUID) {
	if h == nil {
		return
	}
	h.weapon = weapon
	h.wielder = wielder
	h.wielderID = wielderID
}

// Enable opens a new activation window.
func (h *Hitbox) Enable() {
	if h == nil || h.area == nil {
		return
	}
	clear(h.hit)
	h.enabled = true
	h.area.SetDisabled(false)
}

// Disable closes the activation window.
func (h *Hitbox) Disable() {
	if h == nil || h.area == nil {
		return
	}
	h.enabled = false
	h.area.SetDisabled(true)
}

// Enabled reports whether the window is open.
func (h *Hitbox) Enabled() bool {
	return h != nil && h.enabled
}

// HitCount returns how many zones were credited in the current window.
func (h *Hitbox) HitCount() int {
	if h == nil {
		return 0
	}
	return len(h.hit)
}

// Area returns the trigger volume backing the hitbox.
func (h *Hitbox) Area() *physics.Area {
	if h == nil {
		return nil
	}
	return h.area
}

// OnAreaEntered handles an overlap-begin event from the physics world.
func (h *Hitbox) OnAreaEntered(area *physics.Area) {
	if h == nil || !h.enabled || area == nil {
		return
	}
	zone, ok := area.Owner.(*Hurtbox)
	if !ok {
		return
	}

	id := zone.ID()
	if _, seen := h.hit[id]; seen {
		return
	}
	if h.wielder != nil && zone.Owner == h.wielder {
		return
	}
	target := zone.Owner
	if target == nil {
		return
	}
	effect, ok := h.weapon.DamageEffect()
	if !ok {
		return
	}
	effect.Source = h.wielderID

	h.hit[id] = struct{}{}
	evt := CombatEvent{
		Type:       EventHit,
		AttackerID: h.wielderID,
		HurtboxID:  id,
		Damage:     effect.Amount,
		Multiplier: zone.Multiplier,
		Position:   area.Position(),
	}
	if ided, ok := target.(Identified); ok {
		evt.TargetID = ided.InstanceID()
	}
	h.Emitter.Emit(evt)
	target.ReceiveDamage(effect, zone.Multiplier)
}
