// Package tween interpolates values over time. Tweens are advanced by a
// Scheduler once per tick and polled by their owners; nothing blocks.
package tween

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Trans selects the easing curve.
type Trans int

const (
	TransLinear Trans = iota
	TransSine
	TransQuad
	TransCubic
)

func (t Trans) String() string {
	switch t {
	case TransLinear:
		return "linear"
	case TransSine:
		return "sine"
	case TransQuad:
		return "quad"
	case TransCubic:
		return "cubic"
	}
	return "unknown"
}

// ParseTrans maps a config name to a curve.
func ParseTrans(s string) (Trans, bool) {
	for t := TransLinear; t <= TransCubic; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Ease selects which end of the curve is eased.
type Ease int

const (
	EaseIn Ease = iota
	EaseOut
	EaseInOut
	EaseOutIn
)

func (e Ease) String() string {
	switch e {
	case EaseIn:
		return "in"
	case EaseOut:
		return "out"
	case EaseInOut:
		return "in_out"
	case EaseOutIn:
		return "out_in"
	}
	return "unknown"
}

// ParseEase maps a config name to an easing direction.
func ParseEase(s string) (Ease, bool) {
	for e := EaseIn; e <= EaseOutIn; e++ {
		if e.String() == s {
			return e, true
		}
	}
	return 0, false
}

// Tween moves a Vec3 from one value to another over a fixed duration.
type Tween struct {
	from, to mgl64.Vec3
	duration float64
	elapsed  float64
	set      func(mgl64.Vec3)

	trans Trans
	ease  Ease

	running bool
}

// SetTrans sets the easing curve and returns the tween for chaining.
func (t *Tween) SetTrans(trans Trans) *Tween {
	if t != nil {
		t.trans = trans
	}
	return t
}

// SetEase sets the easing direction and returns the tween for chaining.
func (t *Tween) SetEase(ease Ease) *Tween {
	if t != nil {
		t.ease = ease
	}
	return t
}

// IsRunning reports whether the tween still has writes pending.
func (t *Tween) IsRunning() bool {
	return t != nil && t.running
}

// Kill stops the tween. No further writes happen after Kill returns.
func (t *Tween) Kill() {
	if t != nil {
		t.running = false
	}
}

func (t *Tween) step(delta float64) {
	t.elapsed += delta
	progress := 1.0
	if t.duration > 0 {
		progress = math.Min(t.elapsed/t.duration, 1)
	}
	w := Apply(t.trans, t.ease, progress)
	t.set(t.from.Add(t.to.Sub(t.from).Mul(w)))
	if progress >= 1 {
		t.running = false
	}
}

// Scheduler owns the active tweens.
type Scheduler struct {
	tweens []*Tween
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// TweenVec3 starts interpolating from→to over duration seconds. set receives
// every intermediate value, starting with the next Advance. A nil scheduler
// never advances, so it writes to immediately and returns a finished tween.
func (s *Scheduler) TweenVec3(from, to mgl64.Vec3, duration float64, set func(mgl64.Vec3)) *Tween {
	t := &Tween{
		from:     from,
		to:       to,
		duration: duration,
		set:      set,
		running:  set != nil,
	}
	if !t.running {
		return t
	}
	if s == nil {
		t.elapsed = duration
		t.running = false
		set(to)
		return t
	}
	s.tweens = append(s.tweens, t)
	return t
}

// Advance steps every running tween and drops finished or killed ones.
func (s *Scheduler) Advance(delta float64) {
	if s == nil {
		return
	}
	live := s.tweens[:0]
	for _, t := range s.tweens {
		if !t.running {
			continue
		}
		t.step(delta)
		if t.running {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Len returns the number of tweens still scheduled.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tweens)
}

// Apply maps linear progress p in [0,1] through the chosen curve.
func Apply(trans Trans, ease Ease, p float64) float64 {
	in := curve(trans)
	out := func(x float64) float64 { return 1 - in(1-x) }
	switch ease {
	case EaseIn:
		return in(p)
	case EaseOut:
		return out(p)
	case EaseInOut:
		if p < 0.5 {
			return in(2*p) / 2
		}
		return 0.5 + out(2*p-1)/2
	case EaseOutIn:
		if p < 0.5 {
			return out(2*p) / 2
		}
		return 0.5 + in(2*p-1)/2
	}
	return p
}

func curve(trans Trans) func(float64) float64 {
	switch trans {
	case TransSine:
		return func(x float64) float64 { return 1 - math.Cos(x*math.Pi/2) }
	case TransQuad:
		return func(x float64) float64 { return x * x }
	case TransCubic:
		return func(x float64) float64 { return x * x * x }
	default:
		return func(x float64) float64 { return x }
	}
}
