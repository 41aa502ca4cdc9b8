package component

// Health is a reusable health pool for anything that can take damage.
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the pool is above zero.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage subtracts amount, clamping at zero. Returns true if the pool
// changed.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || !h.IsAlive() || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return true
}
