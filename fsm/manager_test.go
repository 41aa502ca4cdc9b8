package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	log []string
}

type recordingState struct {
	name string
	// onPre, when set, runs inside PreUpdate.
	onPre func(r *recorder)
}

func (s *recordingState) Enter(r *recorder) { r.log = append(r.log, s.name+".enter") }
func (s *recordingState) Exit(r *recorder)  { r.log = append(r.log, s.name+".exit") }
func (s *recordingState) PreUpdate(r *recorder) {
	r.log = append(r.log, s.name+".pre")
	if s.onPre != nil {
		s.onPre(r)
	}
}
func (s *recordingState) Update(r *recorder, _ float64) {
	r.log = append(r.log, s.name+".update")
}

func newRecordingManager(t *testing.T, built map[StateID]int) (*Manager[*recorder], *recorder) {
	t.Helper()
	r := &recorder{}
	m := NewManager(r, "test")
	for _, id := range []StateID{"a", "b"} {
		m.Register(id, func() State[*recorder] {
			built[id]++
			return &recordingState{name: string(id)}
		})
	}
	return m, r
}

func TestManagerCachesOneInstancePerVariant(t *testing.T) {
	built := map[StateID]int{}
	m, _ := newRecordingManager(t, built)

	for _, id := range []StateID{"a", "b", "a", "b", "a", "a"} {
		m.TransitionTo(id)
	}

	assert.Equal(t, 1, built["a"])
	assert.Equal(t, 1, built["b"])
	assert.Equal(t, 2, m.Instances())
	assert.Equal(t, StateID("a"), m.Current())
}

func TestManagerTransitionOrdering(t *testing.T) {
	cases := []struct {
		name string
		path []StateID
		want []string
	}{
		{"first_transition_has_no_exit", []StateID{"a"}, []string{"a.enter"}},
		{"exit_before_enter", []StateID{"a", "b"}, []string{"a.enter", "a.exit", "b.enter"}},
		{"same_variant_reenters", []StateID{"a", "a"}, []string{"a.enter", "a.exit", "a.enter"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, r := newRecordingManager(t, map[StateID]int{})
			for _, id := range c.path {
				m.TransitionTo(id)
			}
			assert.Equal(t, c.want, r.log)
		})
	}
}

func TestManagerUpdateBeforeFirstTransitionIsNoop(t *testing.T) {
	m, r := newRecordingManager(t, map[StateID]int{})
	m.Update(1.0 / 60)
	assert.Empty(t, r.log)
	assert.Equal(t, StateID(""), m.Current())
}

func TestManagerPreUpdateTransitionRunsNewUpdateSameTick(t *testing.T) {
	r := &recorder{}
	m := NewManager(r, "test")
	m.Register("a", func() State[*recorder] {
		return &recordingState{name: "a", onPre: func(*recorder) { m.TransitionTo("b") }}
	})
	m.Register("b", func() State[*recorder] { return &recordingState{name: "b"} })

	m.TransitionTo("a")
	r.log = nil
	m.Update(1.0 / 60)

	require.Equal(t, []string{"a.pre", "a.exit", "b.enter", "b.update"}, r.log)
	assert.NotContains(t, r.log, "b.pre")
	assert.NotContains(t, r.log, "a.update")
}

func TestManagerUnknownStateKeepsCurrent(t *testing.T) {
	m, r := newRecordingManager(t, map[StateID]int{})
	m.TransitionTo("a")
	m.TransitionTo("missing")

	assert.Equal(t, StateID("a"), m.Current())
	assert.Equal(t, []string{"a.enter"}, r.log)
}

func TestManagerOnTransition(t *testing.T) {
	m, _ := newRecordingManager(t, map[StateID]int{})
	var seen [][2]StateID
	m.OnTransition = func(from, to StateID) { seen = append(seen, [2]StateID{from, to}) }

	m.TransitionTo("a")
	m.TransitionTo("b")

	assert.Equal(t, [][2]StateID{{"", "a"}, {"a", "b"}}, seen)
}

func TestBaseHooksAreNoops(t *testing.T) {
	type idle struct{ Base[*recorder] }
	r := &recorder{}
	m := NewManager(r, "test")
	m.Register("idle", func() State[*recorder] { return &idle{} })
	m.TransitionTo("idle")
	m.Update(0.1)
	assert.Equal(t, StateID("idle"), m.Current())
	assert.Empty(t, r.log)
}
