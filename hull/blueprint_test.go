package hull

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestBlueprintRoundTripThroughYAML(t *testing.T) {
	o := NewOutline(SquareHull(5))
	o.AppendSegment(Segment{A: v(100, 60), B: v(200, 20)})

	bp := BlueprintFromPath(o.Snapshot())
	bp.Ship = "3f0c2a9e-0000-4000-8000-000000000000"
	bp.GridCell = 20

	var buf bytes.Buffer
	require.NoError(t, SaveBlueprint(&buf, bp))
	assert.Contains(t, buf.String(), "grid_cell: 20")

	loaded, err := LoadBlueprint(&buf)
	require.NoError(t, err)
	assert.Equal(t, bp, loaded)

	p, err := loaded.Path()
	require.NoError(t, err)
	assert.Equal(t, o.Vertices(), p.Coords)
	assert.Equal(t, o.Snapshot().Cmds, p.Cmds)
}

func TestBlueprintKeepsClose(t *testing.T) {
	src := (&path.Data{}).MoveTo(v(0, 0)).LineTo(v(20, 0)).LineTo(v(20, 20)).Close()
	bp := BlueprintFromPath(src)
	require.Len(t, bp.Subpaths, 1)
	assert.True(t, bp.Subpaths[0].Closed)

	p, err := bp.Path()
	require.NoError(t, err)
	assert.Equal(t, src.Cmds, p.Cmds)
}

func TestBlueprintFromPathWithoutMoveTo(t *testing.T) {
	src := &path.Data{
		Cmds:   []path.Command{path.CmdLineTo, path.CmdLineTo, path.CmdClose},
		Coords: []vec.Vec2{v(0, 0), v(20, 0)},
	}
	var bp Blueprint
	require.NotPanics(t, func() { bp = BlueprintFromPath(src) })
	require.Len(t, bp.Subpaths, 1)
	assert.Equal(t, [][2]float64{{0, 0}, {20, 0}}, bp.Subpaths[0].Points)
	assert.True(t, bp.Subpaths[0].Closed)

	closeOnly := &path.Data{Cmds: []path.Command{path.CmdClose}}
	require.NotPanics(t, func() { bp = BlueprintFromPath(closeOnly) })
	assert.Empty(t, bp.Subpaths)
}

func TestLoadBlueprintErrors(t *testing.T) {
	_, err := LoadBlueprint(strings.NewReader("version: 9\nsubpaths: []\n"))
	assert.ErrorIs(t, err, ErrBlueprintVersion)

	_, err = LoadBlueprint(strings.NewReader("version: [unterminated"))
	assert.Error(t, err)

	bp := Blueprint{Version: BlueprintVersion, Subpaths: []Subpath{{}}}
	_, err = bp.Path()
	assert.ErrorIs(t, err, ErrEmptySubpath)
}
