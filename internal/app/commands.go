package app

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"transform-demo/internal/engineconfig"
	"transform-demo/internal/snapshot"
	"transform-demo/internal/transform"
)

const snapshotSupersample = 2

func (a *App) registerCommands() {
	a.Commands.Register("reset", "reset all transform parameters", func(fs *flag.FlagSet) func() error {
		return func() error {
			a.State.Reset()
			a.Log.Log("reset")
			return nil
		}
	})

	a.Commands.Register("mode", "-name translation|rotation|reflection|shearing|scaling", func(fs *flag.FlagSet) func() error {
		name := fs.String("name", "", "mode name")
		return func() error {
			m, err := transform.ParseMode(*name)
			if err != nil {
				return err
			}
			a.State.Mode = m
			a.Log.Logf("mode: %s", m)
			return nil
		}
	})

	a.Commands.Register("set", "-field tx|ty|tz|rx|ry|rz|sx|sy|sz|hx|hy|hz -value <float>", func(fs *flag.FlagSet) func() error {
		field := fs.String("field", "", "parameter name")
		value := fs.Float64("value", 0, "new value")
		return func() error {
			f, err := transform.ParseField(*field)
			if err != nil {
				return err
			}
			*a.State.Param(f) = float32(*value)
			a.Log.Logf("%s = %g", f, *value)
			return nil
		}
	})

	a.Commands.Register("reflect", "-axis x|y|z (toggles in any mode)", func(fs *flag.FlagSet) func() error {
		axis := fs.String("axis", "", "axis to mirror")
		return func() error {
			var ax transform.Axis
			switch strings.ToLower(*axis) {
			case "x":
				ax = transform.X
			case "y":
				ax = transform.Y
			case "z":
				ax = transform.Z
			default:
				return fmt.Errorf("unknown axis %q", *axis)
			}
			a.State.ToggleReflect(ax)
			a.Log.Logf("reflect %s: %t", strings.ToLower(*axis), a.State.Reflect[ax])
			return nil
		}
	})

	a.Commands.Register("grid", "-visible=<bool>", func(fs *flag.FlagSet) func() error {
		visible := fs.Bool("visible", true, "draw axes and grid")
		return func() error {
			a.prefs.GridVisible = *visible
			a.Scene.SetGridVisible(*visible)
			return nil
		}
	})

	a.Commands.Register("fps", "-show=<bool>", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", true, "show FPS counter")
		return func() error {
			a.prefs.ShowFPS = *show
			a.Debug.SetShowFPS(*show)
			return nil
		}
	})

	a.Commands.Register("mem", "-show=<bool>", func(fs *flag.FlagSet) func() error {
		show := fs.Bool("show", true, "show heap usage")
		return func() error {
			a.prefs.ShowMemAlloc = *show
			a.Debug.SetShowMemAlloc(*show)
			return nil
		}
	})

	a.Commands.Register("save", "write current preferences to the config file", func(fs *flag.FlagSet) func() error {
		return func() error {
			if err := engineconfig.Save(a.configPath, a.prefs); err != nil {
				return err
			}
			a.Log.Logf("saved %s", a.configPath)
			return nil
		}
	})

	a.Commands.Register("snapshot", "-out <file.webp|file.png> -size <px>", func(fs *flag.FlagSet) func() error {
		out := fs.String("out", "", "output file (default: snapshot_dir/cube-<time>.webp)")
		size := fs.Int("size", 0, "image width and height (default: snapshot_size)")
		return func() error {
			path, err := a.Snapshot(*out, *size)
			if err != nil {
				return err
			}
			a.Log.Logf("snapshot written to %s", path)
			return nil
		}
	})

	a.Commands.Register("help", "list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, line := range a.Commands.Help() {
				a.Log.Log(line)
			}
			return nil
		}
	})
}

// Snapshot renders the current cube and grid offscreen and writes it to path. An empty
// path picks a timestamped name under the snapshot directory; size <= 0 uses the
// configured snapshot size; sizes above engineconfig.MaxSnapshotSize are rejected.
// Returns the path written.
func (a *App) Snapshot(path string, size int) (string, error) {
	if path == "" {
		name := "cube-" + time.Now().Format("20060102-150405") + ".webp"
		path = filepath.Join(a.prefs.SnapshotDir, name)
	}
	if size <= 0 {
		size = a.prefs.SnapshotSize
	}
	if size < 1 || size > engineconfig.MaxSnapshotSize {
		return "", fmt.Errorf("snapshot: size %d out of range 1..%d", size, engineconfig.MaxSnapshotSize)
	}
	world := a.Scene.World(*a.State)
	img := snapshot.Render(world, a.Scene.Camera.ViewProjection(1), snapshot.Options{
		Size:        size,
		Supersample: snapshotSupersample,
	})
	if err := snapshot.Save(path, img); err != nil {
		return "", err
	}
	return path, nil
}
