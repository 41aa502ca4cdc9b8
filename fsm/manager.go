// Package fsm drives per-actor state machines. Each Manager owns one axis of
// one actor and caches a single instance of every state variant it has
// entered, so states are re-entered rather than rebuilt. Any field a state
// keeps between Enter and Exit must be reset in Enter.
package fsm

import "log/slog"

// StateID identifies a state variant within an axis.
type StateID string

// State is the lifecycle contract for a state variant.
type State[A any] interface {
	Enter(actor A)
	PreUpdate(actor A)
	Update(actor A, delta float64)
	Exit(actor A)
}

// Base provides no-op hooks for states that only need some of them.
type Base[A any] struct{}

func (Base[A]) Enter(A)           {}
func (Base[A]) PreUpdate(A)       {}
func (Base[A]) Update(A, float64) {}
func (Base[A]) Exit(A)            {}

// Manager runs one axis for one actor.
type Manager[A any] struct {
	actor A
	axis  string

	factories map[StateID]func() State[A]
	cache     map[StateID]State[A]

	current   State[A]
	currentID StateID

	// OnTransition, when set, observes every completed transition.
	OnTransition func(from, to StateID)
}

// NewManager creates an empty manager. No state is current until the first
// TransitionTo.
func NewManager[A any](actor A, axis string) *Manager[A] {
	return &Manager[A]{
		actor:     actor,
		axis:      axis,
		factories: make(map[StateID]func() State[A]),
		cache:     make(map[StateID]State[A]),
	}
}

// Register declares a variant. The factory runs at most once, on the first
// transition into id.
func (m *Manager[A]) Register(id StateID, factory func() State[A]) *Manager[A] {
	if m == nil || factory == nil {
		return m
	}
	m.factories[id] = factory
	return m
}

// TransitionTo exits the current state and enters id. Transitioning to the
// current variant still runs Exit then Enter.
func (m *Manager[A]) TransitionTo(id StateID) {
	if m == nil {
		return
	}
	next, ok := m.instance(id)
	if !ok {
		slog.Warn("fsm: unknown state", "axis", m.axis, "state", id)
		return
	}

	from := m.currentID
	if m.current != nil {
		m.current.Exit(m.actor)
	}
	m.current = next
	m.currentID = id
	slog.Debug("fsm: transition", "axis", m.axis, "from", from, "to", id)
	if m.OnTransition != nil {
		m.OnTransition(from, id)
	}
	next.Enter(m.actor)
}

// Update runs PreUpdate then Update on the current state. The current state is
// re-read between the hooks so a transition made in PreUpdate is honored in
// the same call.
func (m *Manager[A]) Update(delta float64) {
	if m == nil || m.current == nil {
		return
	}
	m.current.PreUpdate(m.actor)
	m.current.Update(m.actor, delta)
}

// Current returns the id of the current state, or "" before the first
// transition.
func (m *Manager[A]) Current() StateID {
	if m == nil {
		return ""
	}
	return m.currentID
}

// Instances returns how many state instances this manager has constructed.
func (m *Manager[A]) Instances() int {
	if m == nil {
		return 0
	}
	return len(m.cache)
}

func (m *Manager[A]) instance(id StateID) (State[A], bool) {
	if s, ok := m.cache[id]; ok {
		return s, true
	}
	factory, ok := m.factories[id]
	if !ok {
		return nil, false
	}
	s := factory()
	if s == nil {
		return nil, false
	}
	m.cache[id] = s
	return s, true
}
