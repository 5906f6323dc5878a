package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/parameter"
)

func TestDefaultsMatchParameters(t *testing.T) {
	c := Default()
	assert.Equal(t, parameter.DefaultGridCell, c.Build.GridCell)
	assert.Equal(t, parameter.DefaultShipName, c.Build.ShipName)
	assert.Equal(t, parameter.CameraUnitsPerColumn, c.Camera.UnitsPerColumn)
	assert.Equal(t, parameter.CameraUnitsPerRow, c.Camera.UnitsPerRow)
	assert.Equal(t, parameter.CueVolume, c.Audio.Volume)
	assert.True(t, c.Audio.Enabled)
	assert.Empty(t, c.Metrics.Addr)
	require.NoError(t, c.Validate())

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte(`
[build]
grid_cell = 10.0

[log]
level = "debug"

[keys]
b = "toggle_build_mode"
`))
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Build.GridCell)
	assert.Equal(t, parameter.CameraUnitsPerRow, c.Camera.UnitsPerRow, "untouched sections keep defaults")
	assert.Equal(t, "shipwright.log", c.Log.File)

	lvl, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	kt, err := c.KeyTable()
	require.NoError(t, err)
	a, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	require.True(t, ok)
	assert.Equal(t, input.ActionToggleBuildMode, a)
	a, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone))
	require.True(t, ok, "defaults survive the merge")
	assert.Equal(t, input.ActionToggleBuildMode, a)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero grid", "[build]\ngrid_cell = 0.0"},
		{"negative grid", "[build]\ngrid_cell = -20.0"},
		{"infinite grid", "[build]\ngrid_cell = inf"},
		{"nan grid", "[build]\ngrid_cell = nan"},
		{"zero camera", "[camera]\nunits_per_column = 0.0"},
		{"infinite camera", "[camera]\nunits_per_row = inf"},
		{"loud", "[audio]\nvolume = 2.0"},
		{"bad level", "[log]\nlevel = \"chatty\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("[build]\ngrid = 10"))
	assert.Error(t, err)
}

func TestBadKeyBinding(t *testing.T) {
	c, err := Parse([]byte("[keys]\nb = \"warp\""))
	require.NoError(t, err)
	_, err = c.KeyTable()
	assert.ErrorIs(t, err, input.ErrUnknownAction)
}

func TestLoadPriority(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	c, src, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceDefaults, src)
	assert.Equal(t, parameter.DefaultGridCell, c.Build.GridCell)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[build]\ngrid_cell = 10.0\n"), 0o644))
	c, src, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, src)
	assert.Equal(t, 10.0, c.Build.GridCell)

	explicit := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[build]\ngrid_cell = 5.0\n"), 0o644))
	c, src, err = Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, src)
	assert.Equal(t, 5.0, c.Build.GridCell)

	_, _, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
