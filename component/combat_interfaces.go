package component

import "github.com/google/uuid"

// Damageable is anything a weapon can hurt.
type Damageable interface {
	TotalProtection(t ProtectionType) int
	// ReceiveDamage mitigates effect and applies the net amount to the pool.
	ReceiveDamage(effect DamageEffect, multiplier float64)
}

// ProtectionSource reports equipped protection by category.
type ProtectionSource interface {
	TotalProtection(t ProtectionType) int
}

// Identified is implemented by actors that carry an instance id.
type Identified interface {
	InstanceID() uuid.UUID
}
