package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml *.tengo
var PrefabsFS embed.FS

// DiskDir is checked before the embedded copies so tunables can be edited
// without rebuilding.
var DiskDir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, DiskDir+"/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
