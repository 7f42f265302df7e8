package rig

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var RigFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// DefaultRig is the rig document loaded when no path is given.
const DefaultRig = "rig.yaml"

// Load reads a rig document by name. A file on disk (relative to the rig
// directory) wins over the embedded copy, so edited rigs take effect
// without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return RigFS.ReadFile(clean)
}

// LoadScript reads a hook script by name, disk first, embedded fallback.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "rig/")
}

func diskPath(clean string) string {
	return filepath.Join("rig", filepath.FromSlash(clean))
}
