package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the default preferences file, relative to the process working directory.
// TRANSFORM_CONFIG overrides it (see Path).
const EngineConfigPath = "config/engine.yaml"

// MaxSnapshotSize bounds snapshot width/height; snapshots render supersampled, so the
// working image is larger still.
const MaxSnapshotSize = 4096

// EnginePrefs holds viewer preferences (overlays, grid, window, snapshot output). Persisted
// across runs. The transform parameters themselves are never persisted.
type EnginePrefs struct {
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	GridVisible  bool   `yaml:"grid_visible"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Font         string `yaml:"font,omitempty"`
	SnapshotDir  string `yaml:"snapshot_dir"`
	SnapshotSize int    `yaml:"snapshot_size"`
}

// Default returns default preferences: overlays off, grid on, 800×600 window.
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		WindowWidth:  800,
		WindowHeight: 600,
		SnapshotDir:  "snapshots",
		SnapshotSize: 512,
	}
}

// Path returns TRANSFORM_CONFIG when set, else EngineConfigPath.
func Path() string {
	if p := os.Getenv("TRANSFORM_CONFIG"); p != "" {
		return p
	}
	return EngineConfigPath
}

// Load reads preferences from path. A missing file yields Default() and no error.
// Keys absent from the file keep their default values; non-positive window sizes and
// snapshot sizes outside 1..MaxSnapshotSize fall back to defaults.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	p.sanitize()
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: create dir for %s: %w", path, err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("engineconfig: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("engineconfig: write %s: %w", path, err)
	}
	return nil
}

func (p *EnginePrefs) sanitize() {
	d := Default()
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	if p.SnapshotSize <= 0 || p.SnapshotSize > MaxSnapshotSize {
		p.SnapshotSize = d.SnapshotSize
	}
	if p.SnapshotDir == "" {
		p.SnapshotDir = d.SnapshotDir
	}
}
