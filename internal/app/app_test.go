package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-demo/internal/commands"
	"transform-demo/internal/engineconfig"
	"transform-demo/internal/input"
	"transform-demo/internal/logger"
	"transform-demo/internal/transform"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	prefs := engineconfig.Default()
	prefs.SnapshotDir = filepath.Join(t.TempDir(), "shots")
	prefs.SnapshotSize = 32
	return New(prefs, filepath.Join(t.TempDir(), "engine.yaml"), logger.NewAt(""), nil)
}

func run(t *testing.T, a *App, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	require.True(t, ok, line)
	return a.Commands.Execute(args)
}

func lastLog(a *App) string {
	lines := a.Log.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestHandleKey(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, input.ActionChanged, a.HandleKey(input.KeyRight))
	assert.InDelta(t, 0.1, a.State.Translate[0], 1e-6)

	a.HandleKey(input.KeyM)
	assert.Equal(t, transform.Rotation, a.State.Mode)
	assert.True(t, strings.HasSuffix(lastLog(a), "mode: Rotation"))

	a.HandleKey(input.KeyR)
	assert.Equal(t, [3]float32{}, a.State.Translate)
	assert.Equal(t, input.ActionQuit, a.HandleKey(input.KeyEscape))
}

func TestFrame(t *testing.T) {
	a := newTestApp(t)
	f := a.Frame(60, 800, 600)
	assert.Len(t, f.Points, 8)
	assert.Len(t, f.Labels, 3)

	require.NoError(t, run(t, a, "cmd fps"))
	require.NoError(t, run(t, a, "cmd grid -visible=false"))
	f = a.Frame(60, 800, 600)
	assert.Len(t, f.Labels, 4)
	assert.Len(t, f.Segments, 12)
}

func TestStateCommands(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, run(t, a, "cmd mode -name shearing"))
	assert.Equal(t, transform.Shearing, a.State.Mode)

	require.NoError(t, run(t, a, "cmd set -field rz -value 45"))
	assert.Equal(t, float32(45), a.State.Rotate[2])

	require.NoError(t, run(t, a, "cmd reflect -axis Y"))
	assert.True(t, a.State.Reflect[1])
	assert.Equal(t, transform.Shearing, a.State.Mode)

	require.NoError(t, run(t, a, "cmd reset"))
	assert.Equal(t, *transform.NewState(), func() transform.State {
		s := *a.State
		s.Mode = transform.Translation
		return s
	}())

	assert.Error(t, run(t, a, "cmd mode -name skew"))
	assert.Error(t, run(t, a, "cmd set -field w -value 1"))
	assert.Error(t, run(t, a, "cmd reflect -axis w"))
	assert.Error(t, run(t, a, "cmd set -value abc"))
}

func TestApplyPrefs(t *testing.T) {
	a := newTestApp(t)
	p := a.Prefs()
	p.GridVisible = false
	p.ShowMemAlloc = true
	a.ApplyPrefs(p)
	assert.False(t, a.Scene.GridVisible)
	assert.True(t, a.Debug.ShowMemAlloc)
}

func TestSaveCommand(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, run(t, a, "cmd fps -show=true"))
	require.NoError(t, run(t, a, "cmd save"))

	p, err := engineconfig.Load(a.configPath)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
}

func TestSnapshotCommand(t *testing.T) {
	a := newTestApp(t)
	out := filepath.Join(t.TempDir(), "cube.png")
	require.NoError(t, run(t, a, "cmd snapshot -out "+out+" -size 24"))
	_, err := os.Stat(out)
	require.NoError(t, err)
	assert.Contains(t, lastLog(a), out)

	path, err := a.Snapshot("", 0)
	require.NoError(t, err)
	assert.Equal(t, a.Prefs().SnapshotDir, filepath.Dir(path))
	assert.Equal(t, ".webp", filepath.Ext(path))

	assert.Error(t, run(t, a, "cmd snapshot -out x.gif"))
}

func TestSnapshotSizeBounded(t *testing.T) {
	a := newTestApp(t)
	out := filepath.Join(t.TempDir(), "big.png")

	err := run(t, a, "cmd snapshot -out "+out+" -size 100000")
	assert.ErrorContains(t, err, "snapshot: size 100000 out of range")
	assert.Error(t, run(t, a, "cmd snapshot -out "+out+" -size 3037000500"))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHelpCommand(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, run(t, a, "cmd help"))
	lines := a.Log.Lines()
	assert.Len(t, lines, len(a.Commands.Names()))
}

func TestHandleKeysConsoleOpen(t *testing.T) {
	a := newTestApp(t)
	keys := []input.Key{input.KeyRight, input.KeyM}
	assert.True(t, a.HandleKeys(keys, true))
	assert.Equal(t, [3]float32{}, a.State.Translate)
	assert.Equal(t, transform.Translation, a.State.Mode)

	assert.False(t, a.HandleKeys([]input.Key{input.KeyRight, input.KeyEscape}, true))

	assert.True(t, a.HandleKeys(keys, false))
	assert.InDelta(t, 0.1, a.State.Translate[0], 1e-6)
	assert.Equal(t, transform.Rotation, a.State.Mode)
	assert.False(t, a.HandleKeys([]input.Key{input.KeyEscape}, false))
}

func TestPoll(t *testing.T) {
	a := newTestApp(t)
	updates := make(chan engineconfig.EnginePrefs, 1)
	errs := make(chan error, 1)
	feed := &ConfigFeed{Updates: updates, Errors: errs}

	p := a.Prefs()
	p.GridVisible = false
	updates <- p
	a.Poll(feed)
	assert.False(t, a.Scene.GridVisible)

	errs <- errors.New("watch failed")
	a.Poll(feed)
	assert.True(t, strings.HasSuffix(lastLog(a), "watch failed"))

	close(updates)
	close(errs)
	a.Poll(feed)
	a.Poll(feed)
	assert.Nil(t, feed.Updates)
	assert.Nil(t, feed.Errors)

	n := len(a.Log.Lines())
	a.Poll(feed)
	assert.Len(t, a.Log.Lines(), n)

	var idle ConfigFeed
	a.Poll(&idle)
}
