package component

import (
	"log/slog"

	"github.com/google/uuid"
)

// Weapon is the data half of a held weapon.
type Weapon struct {
	Name        string
	Description string
	Effect      *DamageEffect
}

// DamageEffect returns a copy of the weapon's damage, if it has any.
func (w *Weapon) DamageEffect() (DamageEffect, bool) {
	if w == nil || w.Effect == nil {
		return DamageEffect{}, false
	}
	return *w.Effect, true
}

// WeaponScene is the spawned half of a held weapon. Swing states drive it
// without knowing the concrete weapon.
type WeaponScene struct {
	Weapon *Weapon
	Hitbox *Hitbox
}

// NewWeaponScene pairs weapon data with its hitbox.
func NewWeaponScene(weapon *Weapon, hitbox *Hitbox) *WeaponScene {
	return &WeaponScene{Weapon: weapon, Hitbox: hitbox}
}

// InitializeWeapon binds the wielder to the hitbox. A scene without a hitbox
// is logged and stays inert.
func (s *WeaponScene) InitializeWeapon(wielder Damageable, wielderID uuid.UUID) {
	if s == nil {
		return
	}
	if s.Hitbox == nil {
		name := ""
		if s.Weapon != nil {
			name = s.Weapon.Name
		}
		slog.Error("component: weapon scene has no hitbox", "weapon", name)
		return
	}
	s.Hitbox.Initialize(s.Weapon, wielder, wielderID)
}

// EnableHitbox opens a swing window.
func (s *WeaponScene) EnableHitbox() {
	if s == nil {
		return
	}
	s.Hitbox.Enable()
}

// DisableHitbox closes the swing window.
func (s *WeaponScene) DisableHitbox() {
	if s == nil {
		return
	}
	s.Hitbox.Disable()
}
