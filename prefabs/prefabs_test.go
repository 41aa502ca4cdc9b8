package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsValidate(t *testing.T) {
	drone, err := LoadDroneSpec()
	require.NoError(t, err)
	assert.Equal(t, 3.0, drone.WalkSpeed)
	assert.Equal(t, 6.0, drone.RunSpeed)
	assert.Equal(t, 0.6, drone.CrouchScale)
	assert.Len(t, drone.Hurtboxes, 2)

	npc, err := LoadNPCSpec()
	require.NoError(t, err)
	assert.Equal(t, 15.0, npc.VisionRange)
	assert.Equal(t, 90.0, npc.VisionAngle)

	_, err = LoadDummySpec()
	require.NoError(t, err)

	items, err := LoadItemsSpec()
	require.NoError(t, err)
	club, ok := items.Weapon(drone.Weapon)
	require.True(t, ok)
	assert.Equal(t, "Basic Club", club.Name)
	assert.Equal(t, 10, club.Damage)
	_, ok = items.Weapon("missing")
	assert.False(t, ok)

	arena, err := LoadArenaSpec("")
	require.NoError(t, err)
	assert.Equal(t, 60, arena.TickHz)
	require.NotEmpty(t, arena.Boxes)
	assert.NotNil(t, arena.Boxes[0].Color)
}

func TestValidateAggregatesErrors(t *testing.T) {
	spec := DroneSpec{
		WalkSpeed:       -1,
		RunSpeed:        1,
		JumpVelocity:    4.5,
		CrouchScale:     2,
		SneakSpeedScale: 0.5,
		VaultSpeed:      2,
		Health:          100,
		Collider:        ColliderSpec{Radius: 0.5, Height: 2},
	}

	err := spec.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpec))
	assert.Contains(t, err.Error(), "walk_speed")
	assert.Contains(t, err.Error(), "crouch_scale")
	assert.NotContains(t, err.Error(), "jump_velocity")
}

func TestDroneVaultCurve(t *testing.T) {
	spec, err := LoadDroneSpec()
	require.NoError(t, err)
	assert.Equal(t, "sine", spec.VaultTransitionName())
	assert.Equal(t, "out_in", spec.VaultEaseName())

	spec.VaultTrans, spec.VaultEase = "", ""
	assert.NoError(t, spec.Validate(), "unset curve falls back to the default")
	assert.Equal(t, "sine", spec.VaultTransitionName())

	spec.VaultTrans, spec.VaultEase = "bounce", "in_out"
	err = spec.Validate()
	require.ErrorIs(t, err, ErrInvalidSpec)
	assert.Contains(t, err.Error(), "vault_transition")
	assert.NotContains(t, err.Error(), "vault_ease")
}

func TestNPCSweepScript(t *testing.T) {
	spec, err := LoadNPCSpec()
	require.NoError(t, err)
	assert.Equal(t, "sweep.tengo", spec.SweepScript)
	src, err := Load(spec.SweepScript)
	require.NoError(t, err)
	assert.Contains(t, string(src), "offset")

	spec.SweepScript = "sweep.lua"
	err = spec.Validate()
	require.ErrorIs(t, err, ErrInvalidSpec)
	assert.Contains(t, err.Error(), "sweep_script")
}

func TestArenaNeedsOneDrone(t *testing.T) {
	arena := ArenaSpec{
		TickHz: 60,
		Bounds: BoundsSpec{Min: Vec3Spec{-1, -1, -1}, Max: Vec3Spec{1, 1, 1}},
		Spawns: []SpawnSpec{{Kind: SpawnNPC}, {Kind: "ghost"}},
	}

	err := arena.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one drone")
	assert.Contains(t, err.Error(), "ghost")
}

func TestVec3SpecForms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Vec3Spec
		err  bool
	}{
		{"sequence", "v: [1, 2, 3]", Vec3Spec{1, 2, 3}, false},
		{"mapping", "v: {x: 1, z: 3}", Vec3Spec{1, 0, 3}, false},
		{"short", "v: [1, 2]", Vec3Spec{}, true},
		{"scalar", "v: 4", Vec3Spec{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				V Vec3Spec `yaml:"v"`
			}
			err := yaml.Unmarshal([]byte(c.src), &out)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out.V)
		})
	}
}

func TestOverlay(t *testing.T) {
	base, err := LoadDummySpec()
	require.NoError(t, err)

	out, err := Overlay(*base, map[string]any{
		"health":   40,
		"collider": map[string]any{"radius": 0.3},
		"armor":    []any{"iron_helm"},
	})
	require.NoError(t, err)

	assert.Equal(t, 40, out.Health)
	assert.Equal(t, 0.3, out.Collider.Radius)
	assert.Equal(t, base.Collider.Height, out.Collider.Height)
	assert.Equal(t, []string{"iron_helm"}, out.Armor)
	assert.Equal(t, base.Hurtboxes, out.Hurtboxes)
	assert.Equal(t, 100, base.Health)

	same, err := Overlay(*base, nil)
	require.NoError(t, err)
	assert.Equal(t, *base, same)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })

	_, ok := ModTime("drone.yaml")
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "drone.yaml"), []byte("walk_speed: 9\n"), 0o644))
	spec, err := LoadSpec[DroneSpec]("drone.yaml")
	require.NoError(t, err)
	assert.Equal(t, 9.0, spec.WalkSpeed)

	_, ok = ModTime(filepath.Join(dir, "drone.yaml"))
	assert.True(t, ok)
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "npc.yaml"), []byte("chase_speed: 4\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "npc.yaml", name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reload event")
	}
}

func TestWatcherDrainSkipsClosedChannels(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4), Errors: make(chan error, 1)}
	var names []string
	var errs []error
	apply := func(name string) { names = append(names, name) }
	report := func(err error) { errs = append(errs, err) }

	w.Events <- "npc.yaml"
	w.Errors <- errors.New("overflow")
	assert.True(t, w.Drain(apply, report))
	assert.Equal(t, []string{"npc.yaml"}, names)
	assert.Len(t, errs, 1)

	close(w.Errors)
	w.Events <- "drone.yaml"
	assert.True(t, w.Drain(apply, report), "events still open")
	assert.True(t, w.Drain(apply, report), "closed errors channel does not block or spin")
	assert.Equal(t, []string{"npc.yaml", "drone.yaml"}, names)

	close(w.Events)
	assert.False(t, w.Drain(apply, report))
	assert.Len(t, errs, 1)
}
