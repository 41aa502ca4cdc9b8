package component

import "log/slog"

// AnimationTree stores named animation parameters for an actor: the current
// state of each state-machine node, blend weights, time scales and one-shot
// timers. It does no blending itself; a renderer reads the parameters.
type AnimationTree struct {
	states     map[string]string
	blends     map[string]float64
	timeScales map[string]float64
	oneShots   map[string]*oneShot

	// OnTransition observes every accepted state request.
	OnTransition func(node, state string)
}

type oneShot struct {
	duration  float64
	remaining float64
}

// NewAnimationTree creates an empty tree.
func NewAnimationTree() *AnimationTree {
	return &AnimationTree{
		states:     make(map[string]string),
		blends:     make(map[string]float64),
		timeScales: make(map[string]float64),
		oneShots:   make(map[string]*oneShot),
	}
}

// RequestTransition asks node to travel to state.
func (a *AnimationTree) RequestTransition(node, state string) {
	if a == nil {
		return
	}
	a.states[node] = state
	if a.OnTransition != nil {
		a.OnTransition(node, state)
	}
}

// State returns the last state requested for node.
func (a *AnimationTree) State(node string) string {
	if a == nil {
		return ""
	}
	return a.states[node]
}

// SetBlend writes a blend weight.
func (a *AnimationTree) SetBlend(param string, weight float64) {
	if a == nil {
		return
	}
	a.blends[param] = weight
}

// Blend reads a blend weight, zero when unset.
func (a *AnimationTree) Blend(param string) float64 {
	if a == nil {
		return 0
	}
	return a.blends[param]
}

// SetTimeScale writes a playback speed.
func (a *AnimationTree) SetTimeScale(param string, scale float64) {
	if a == nil {
		return
	}
	a.timeScales[param] = scale
}

// TimeScale reads a playback speed, 1 when unset.
func (a *AnimationTree) TimeScale(param string) float64 {
	if a == nil {
		return 1
	}
	if s, ok := a.timeScales[param]; ok {
		return s
	}
	return 1
}

// DefineOneShot declares a one-shot node that stays active for duration
// seconds after each fire.
func (a *AnimationTree) DefineOneShot(node string, duration float64) {
	if a == nil {
		return
	}
	a.oneShots[node] = &oneShot{duration: duration}
}

// FireOneShot restarts a one-shot. Undefined nodes are logged and ignored.
func (a *AnimationTree) FireOneShot(node string) {
	if a == nil {
		return
	}
	shot, ok := a.oneShots[node]
	if !ok {
		slog.Warn("component: fire of undefined one-shot", "node", node)
		return
	}
	shot.remaining = shot.duration
}

// OneShotActive reports whether a fired one-shot is still playing.
func (a *AnimationTree) OneShotActive(node string) bool {
	if a == nil {
		return false
	}
	shot, ok := a.oneShots[node]
	return ok && shot.remaining > 0
}

// Advance runs one-shot timers forward.
func (a *AnimationTree) Advance(delta float64) {
	if a == nil {
		return
	}
	for _, shot := range a.oneShots {
		if shot.remaining <= 0 {
			continue
		}
		shot.remaining -= delta
		if shot.remaining < 0 {
			shot.remaining = 0
		}
	}
}
