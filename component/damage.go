package component

import (
	"math"

	"github.com/google/uuid"
)

// ResolveDamage returns the net damage effect deals to a zone with the given
// multiplier. Mitigation comes from the protection category matching the
// damage type; the result is never negative.
func ResolveDamage(effect DamageEffect, multiplier float64, protection ProtectionSource) int {
	raw := int(math.Round(float64(effect.Amount) * multiplier))
	mitigation := 0
	if pt, ok := effect.Type.Protection(); ok && protection != nil {
		mitigation = protection.TotalProtection(pt)
	}
	net := raw - mitigation
	if net < 0 {
		return 0
	}
	return net
}

// DamageReceiver implements Damageable over a health pool and equipment.
// Actors embed it.
type DamageReceiver struct {
	ID        uuid.UUID
	Health    *Health
	Equipment *Equipment
	Emitter   *CombatEventEmitter
}

// InstanceID implements Identified.
func (r *DamageReceiver) InstanceID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.ID
}

// TotalProtection implements Damageable.
func (r *DamageReceiver) TotalProtection(t ProtectionType) int {
	if r == nil {
		return 0
	}
	return r.Equipment.TotalProtection(t)
}

// ReceiveDamage implements Damageable. A defender at zero health ignores
// further damage.
func (r *DamageReceiver) ReceiveDamage(effect DamageEffect, multiplier float64) {
	if r == nil || !r.Health.IsAlive() {
		return
	}
	net := ResolveDamage(effect, multiplier, r.Equipment)
	r.Health.ApplyDamage(net)

	evt := CombatEvent{
		Type:       EventDamageApplied,
		AttackerID: effect.Source,
		TargetID:   r.ID,
		Damage:     net,
		Multiplier: multiplier,
	}
	r.Emitter.Emit(evt)
	if !r.Health.IsAlive() {
		evt.Type = EventDeath
		r.Emitter.Emit(evt)
	}
}

var _ Damageable = (*DamageReceiver)(nil)
