package component

import (
	"github.com/google/uuid"

	"github.com/milk9111/dronesim/physics"
)

// Hurtbox is a passive damage zone on a body. Weapons detect it, not the
// other way round.
type Hurtbox struct {
	Name       string
	Multiplier float64
	// Owner is the root actor credited with hits on this zone.
	Owner Damageable

	area *physics.Area
}

// NewHurtbox binds a hurtbox to area and puts the area on the hurtbox layer.
func NewHurtbox(area *physics.Area, name string, multiplier float64, owner Damageable) *Hurtbox {
	if multiplier <= 0 {
		multiplier = 1
	}
	h := &Hurtbox{
		Name:       name,
		Multiplier: multiplier,
		Owner:      owner,
		area:       area,
	}
	if area != nil {
		area.Owner = h
		area.Layer = physics.LayerHurtbox
		area.Mask = 0
		area.Monitoring = false
	}
	return h
}

// ID returns the zone's instance id.
func (h *Hurtbox) ID() uuid.UUID {
	if h == nil || h.area == nil {
		return uuid.Nil
	}
	return h.area.ID()
}

// Area returns the trigger volume backing the zone.
func (h *Hurtbox) Area() *physics.Area {
	if h == nil {
		return nil
	}
	return h.area
}

// SetEnabled toggles whether weapons can detect the zone.
func (h *Hurtbox) SetEnabled(enabled bool) {
	if h == nil || h.area == nil {
		return
	}
	h.area.SetDisabled(!enabled)
}
