package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/dronesim/prefabs"
	"github.com/milk9111/dronesim/system"
)

// PrefabInfo names a tunable file found on disk.
type PrefabInfo struct {
	Name string
	Path string
}

// ListPrefabs scans dir for YAML files.
func ListPrefabs(dir string) ([]PrefabInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]PrefabInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		out = append(out, PrefabInfo{
			Name: strings.TrimSuffix(entry.Name(), ext),
			Path: filepath.ToSlash(entry.Name()),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// check validates every arena override in dir plus the actor tunables, then
// builds each arena once. It returns the number of failures.
func check(w io.Writer, dir string) int {
	prefabs.DiskDir = dir

	files, err := ListPrefabs(dir)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(w, "FAIL %s: %v\n", dir, err)
		return 1
	}

	arenas := []string{"arena.yaml"}
	for _, f := range files {
		if strings.HasPrefix(f.Name, "arena") && f.Path != "arena.yaml" {
			arenas = append(arenas, f.Path)
		}
	}

	failures := 0
	for _, arena := range arenas {
		specs, err := system.LoadSpecs(arena)
		if err == nil {
			err = (&system.World{}).Build(specs)
		}
		if err != nil {
			failures++
			fmt.Fprintf(w, "FAIL %s: %v\n", arena, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s (%s, %d boxes, %d spawns)\n", arena, specs.Arena.Name, len(specs.Arena.Boxes), len(specs.Arena.Spawns))
	}
	return failures
}

func main() {
	dir := flag.String("dir", prefabs.DiskDir, "directory holding tunable overrides")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if n := check(os.Stdout, *dir); n > 0 {
		os.Exit(1)
	}
}
