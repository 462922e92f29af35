// Package app ties the viewer together: it owns the transform state, the scene, the
// overlays, and the console commands, and turns them into one primitives.Frame per redraw.
// Nothing here touches the window; internal/graphics adapts it to raylib.
package app

import (
	"transform-demo/internal/commands"
	"transform-demo/internal/debug"
	"transform-demo/internal/engineconfig"
	"transform-demo/internal/input"
	"transform-demo/internal/logger"
	"transform-demo/internal/primitives"
	"transform-demo/internal/scene"
	"transform-demo/internal/transform"
)

// App is the viewer's single owner of mutable state. It is used from the render loop only.
type App struct {
	State    *transform.State
	Scene    *scene.Scene
	Debug    *debug.Debug
	Log      *logger.Logger
	Commands *commands.Registry

	prefs      engineconfig.EnginePrefs
	configPath string
}

// New builds an App from preferences. configPath is where "cmd save" writes them.
// measure is passed to the debug overlay (may be nil).
func New(prefs engineconfig.EnginePrefs, configPath string, log *logger.Logger, measure debug.MeasureFunc) *App {
	a := &App{
		State:      transform.NewState(),
		Scene:      scene.New(),
		Debug:      debug.New(measure),
		Log:        log,
		Commands:   commands.NewRegistry(),
		configPath: configPath,
	}
	a.ApplyPrefs(prefs)
	a.registerCommands()
	return a
}

// Prefs returns the preferences currently in effect.
func (a *App) Prefs() engineconfig.EnginePrefs {
	return a.prefs
}

// ApplyPrefs switches overlays and grid to p. Window size changes take effect on restart.
func (a *App) ApplyPrefs(p engineconfig.EnginePrefs) {
	a.prefs = p
	a.Scene.SetGridVisible(p.GridVisible)
	a.Debug.SetShowFPS(p.ShowFPS)
	a.Debug.SetShowMemAlloc(p.ShowMemAlloc)
}

// HandleKey dispatches one key press to the state and logs mode switches and resets.
func (a *App) HandleKey(k input.Key) input.Action {
	action := input.Dispatch(a.State, k)
	if action != input.ActionChanged {
		return action
	}
	switch k {
	case input.KeyM:
		a.Log.Logf("mode: %s", a.State.Mode)
	case input.KeyR:
		a.Log.Log("reset")
	}
	return action
}

// HandleKeys dispatches one frame's key presses and reports whether the viewer should keep
// running. While the console is open it captures typing, so only Escape is honored.
func (a *App) HandleKeys(keys []input.Key, consoleOpen bool) bool {
	for _, k := range keys {
		if consoleOpen && k != input.KeyEscape {
			continue
		}
		if a.HandleKey(k) == input.ActionQuit {
			return false
		}
	}
	return true
}

// ConfigFeed carries preference reloads from an engineconfig.Watcher to the render loop.
// The zero value never delivers anything.
type ConfigFeed struct {
	Updates <-chan engineconfig.EnginePrefs
	Errors  <-chan error
}

// Poll applies one pending reload or logs one watcher error, without blocking. A channel
// found closed is set to nil so later polls skip it.
func (a *App) Poll(feed *ConfigFeed) {
	select {
	case p, ok := <-feed.Updates:
		if !ok {
			feed.Updates = nil
			return
		}
		a.ApplyPrefs(p)
		a.Log.Logf("reloaded %s", a.configPath)
	case err, ok := <-feed.Errors:
		if !ok {
			feed.Errors = nil
			return
		}
		a.Log.Log(err.Error())
	default:
	}
}

// Frame returns everything to draw for a screen of the given size: grid, cube, HUD, and
// the debug overlay.
func (a *App) Frame(fps, screenWidth, screenHeight int) primitives.Frame {
	f := a.Scene.Frame(*a.State, screenHeight)
	f.Labels = append(f.Labels, a.Debug.Labels(fps, screenWidth)...)
	return f
}
