package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dronesim/prefabs"
)

func TestListPrefabs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"npc.yaml", "arena_b.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	got, err := ListPrefabs(dir)
	require.NoError(t, err)
	assert.Equal(t, []PrefabInfo{
		{Name: "arena_b", Path: "arena_b.yml"},
		{Name: "npc", Path: "npc.yaml"},
	}, got)
}

func TestCheck(t *testing.T) {
	prev := prefabs.DiskDir
	t.Cleanup(func() { prefabs.DiskDir = prev })

	dir := t.TempDir()
	var out bytes.Buffer
	assert.Zero(t, check(&out, dir))
	assert.Contains(t, out.String(), "ok   arena.yaml (training_yard")

	bad := "name: empty\ntick_hz: 0\nbounds: {min: [0, 0, 0], max: [1, 1, 1]}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arena_empty.yaml"), []byte(bad), 0o644))
	out.Reset()
	assert.Equal(t, 1, check(&out, dir))
	assert.Contains(t, out.String(), "FAIL arena_empty.yaml")
}
