package obj

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dronesim/prefabs"
)

func TestScriptSweepMatchesSine(t *testing.T) {
	src, err := prefabs.Load("sweep.tengo")
	require.NoError(t, err)

	scripted, err := ScriptSweep(src, 1.5, 80)
	require.NoError(t, err)
	sine := SineSweep(1.5, 80)

	for _, at := range []float64{0, 0.25, 1, 2.5} {
		assert.InDelta(t, sine(at), scripted(at), 1e-9, "t=%.2f", at)
	}
}

func TestScriptSweepCustomOffset(t *testing.T) {
	sweep, err := ScriptSweep([]byte(`offset = t < 1 ? degrees : -degrees`), 0, 30)
	require.NoError(t, err)

	assert.InDelta(t, mgl64.DegToRad(30), sweep(0.5), 1e-9)
	assert.InDelta(t, -mgl64.DegToRad(30), sweep(1.5), 1e-9)
}

func TestScriptSweepRejectsBadScripts(t *testing.T) {
	_, err := ScriptSweep([]byte(`offset = (`), 1, 1)
	assert.Error(t, err, "syntax error")

	_, err = ScriptSweep([]byte(`offset = nope(t)`), 1, 1)
	assert.Error(t, err, "unresolved reference")
}

func TestNPCSearchUsesSweep(t *testing.T) {
	w := newNPCWorld(t, mgl64.Vec3{0, 0, -10})
	w.npc.Sweep = func(float64) float64 { return math.Pi / 2 }
	w.npc.Nav = &fakeNav{finished: true}
	w.npc.lastKnown, w.npc.hasLastSeen = mgl64.Vec3{}, true

	for i := 0; i < 90; i++ {
		w.tick()
	}

	require.Equal(t, StateNPCSearch, w.npc.States.Current())
	assert.Equal(t, "idle", w.npc.Animation())
	facing := w.npc.Facing()
	assert.InDelta(t, 1, facing.X(), 1e-2)
	assert.InDelta(t, 0, facing.Z(), 1e-2)
}
