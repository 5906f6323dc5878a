package system

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/shipwright/component"
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/hull"
	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/vmath"
)

type fakeCursor struct {
	pos vec.Vec2
	ok  bool
}

func (c *fakeCursor) Project() (vec.Vec2, bool) { return c.pos, c.ok }

type eventLog struct {
	events []event.GameEvent
}

func (l *eventLog) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventModeChanged,
		event.EventAnchorPlaced,
		event.EventAnchorDiscarded,
		event.EventWallCommitted,
		event.EventEnginePlaced,
		event.EventShipSpawned,
		event.EventBuildEntered,
		event.EventBuildExited,
	}
}

func (l *eventLog) HandleEvent(ev event.GameEvent) { l.events = append(l.events, ev) }

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Type)
	}
	l.events = nil
	return out
}

type harness struct {
	t      *testing.T
	ctx    *engine.GameContext
	world  *engine.World
	cursor *fakeCursor
	log    *eventLog
	modes  *ModeSystem
}

func newHarness(t *testing.T, cell float64, ship ShipSettings) *harness {
	t.Helper()
	w := engine.NewWorld()
	w.Resources.Config.GridCell = cell
	ctx := engine.NewGameContext(w, nil)

	modes, err := Install(ctx, Settings{Ship: ship})
	require.NoError(t, err)

	h := &harness{t: t, ctx: ctx, world: w, cursor: &fakeCursor{}, log: &eventLog{}, modes: modes}
	w.Resources.Cursor.Projector = h.cursor
	ctx.AddHandler(h.log)
	return h
}

func (h *harness) tick(actions ...input.Action) {
	h.ctx.Tick(input.NewActionSet(actions...))
}

func (h *harness) enterWallTool() {
	h.tick(input.ActionStartGame)
	h.tick(input.ActionToggleBuildMode)
	h.tick(input.ActionSelectWallTool)
	require.Equal(h.t, core.ToolWall, h.mode().Tool)
	h.log.types()
}

func (h *harness) moveTo(x, y float64) {
	h.cursor.pos = vec.Vec2{X: x, Y: y}
	h.cursor.ok = true
}

func (h *harness) press(x, y float64) {
	h.moveTo(x, y)
	h.tick(input.ActionPrimary)
}

func (h *harness) mode() core.ModeContext { return h.world.Resources.Mode.Current }

func (h *harness) pending() *hull.PendingPath { return &h.world.Resources.Build.Pending }

func (h *harness) outline() *hull.Outline {
	o, ok := LocalShipOutline(h.world)
	require.True(h.t, ok, "no local ship")
	return o
}

func v(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

func TestTwoClicksMakeWall(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	prior := h.outline().Vertices()

	h.press(103, 58)
	anchor, ok := h.pending().Anchor()
	require.True(t, ok)
	assert.Equal(t, v(100, 60), anchor)
	assert.Equal(t, prior, h.outline().Vertices(), "anchor alone must not merge")
	assert.Equal(t, []event.EventType{event.EventAnchorPlaced}, h.log.types())

	h.press(207, 12)
	assert.False(t, h.pending().HasAnchor())
	want := append(append([]vec.Vec2(nil), prior...), v(100, 60), v(200, 20))
	assert.Equal(t, want, h.outline().Vertices())
	assert.Equal(t, []event.EventType{event.EventWallCommitted}, h.log.types())

	_, hasPreview := h.pending().Preview()
	assert.False(t, hasPreview)

	walls := h.world.Resources.Status.Counters.Get("walls.committed")
	assert.Equal(t, 1.0, testutil.ToFloat64(walls))
	assert.Equal(t, float64(len(want)), testutil.ToFloat64(h.world.Resources.Status.Gauges.Get("outline.vertices")))
}

func TestPreviewFollowsCursor(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()

	h.press(103, 58)
	h.moveTo(47, 33)
	h.tick()

	prev, ok := h.pending().Preview()
	require.True(t, ok)
	assert.Equal(t, hull.Segment{A: v(100, 60), B: v(40, 40)}, prev)
	assert.Len(t, h.outline().Vertices(), 5, "preview never merges")
}

func TestLeavingBuildDiscardsAnchor(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	prior := h.outline().Vertices()
	version := h.outline().Version()

	h.press(40, 40)
	require.True(t, h.pending().HasAnchor())
	h.log.types()

	h.tick(input.ActionToggleBuildMode)
	assert.Equal(t, core.ModeContext{App: core.AppGame, Play: core.PlayFlying}, h.mode())
	assert.False(t, h.pending().HasAnchor())
	assert.Equal(t, prior, h.outline().Vertices())
	assert.Equal(t, version, h.outline().Version())
	assert.Equal(t, []event.EventType{
		event.EventAnchorDiscarded,
		event.EventBuildExited,
		event.EventModeChanged,
	}, h.log.types())

	discarded := h.world.Resources.Status.Counters.Get("anchors.discarded")
	assert.Equal(t, 1.0, testutil.ToFloat64(discarded))
}

func TestNoProjectionIgnoresFrame(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	prior := h.outline().Vertices()

	h.cursor.ok = false
	h.tick(input.ActionPrimary)
	assert.False(t, h.pending().HasAnchor())

	h.press(20, 20)
	h.cursor.ok = false
	h.tick(input.ActionPrimary)
	anchor, ok := h.pending().Anchor()
	require.True(t, ok)
	assert.Equal(t, v(20, 20), anchor)
	assert.Equal(t, prior, h.outline().Vertices())

	prev, _ := h.pending().Preview()
	assert.Equal(t, hull.Segment{A: v(20, 20), B: v(20, 20)}, prev, "preview stays stale")
}

func TestNilProjectorNeverProjects(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	h.world.Resources.Cursor.Projector = nil

	assert.NotPanics(t, func() { h.tick(input.ActionPrimary) })
	assert.False(t, h.pending().HasAnchor())
}

func TestAnchorAfterEnteringWallTool(t *testing.T) {
	h := newHarness(t, 10, ShipSettings{})

	h.tick(input.ActionStartGame)
	assert.Equal(t, core.AppGame, h.mode().App)
	h.tick(input.ActionToggleBuildMode)
	assert.Equal(t, core.PlayBuilding, h.mode().Play)
	h.tick(input.ActionSelectWallTool)
	assert.Equal(t, core.ToolWall, h.mode().Tool)

	prior := h.outline().Vertices()
	h.press(10, 10)
	anchor, ok := h.pending().Anchor()
	require.True(t, ok)
	assert.Equal(t, v(10, 10), anchor)
	assert.Equal(t, prior, h.outline().Vertices())
}

func TestDeselectThenReselect(t *testing.T) {
	h := newHarness(t, 10, ShipSettings{})
	h.enterWallTool()

	h.press(12, 9)
	require.True(t, h.pending().HasAnchor())

	h.tick(input.ActionDeselectTool)
	assert.Equal(t, core.ToolNone, h.mode().Tool)
	assert.False(t, h.pending().HasAnchor())

	h.tick(input.ActionSelectWallTool)
	h.press(30, 10)
	anchor, ok := h.pending().Anchor()
	require.True(t, ok)
	assert.Equal(t, v(30, 10), anchor)
	assert.Equal(t, 5, len(h.outline().Vertices()), "nothing merged across the deselect")
}

func TestSelectAndPressSameFrame(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.tick(input.ActionStartGame)
	h.tick(input.ActionToggleBuildMode)

	h.moveTo(61, 19)
	h.tick(input.ActionSelectWallTool, input.ActionPrimary)
	anchor, ok := h.pending().Anchor()
	require.True(t, ok, "press registers under the newly selected tool")
	assert.Equal(t, v(60, 20), anchor)
}

func TestSwitchingToEngineToolDiscards(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	h.press(40, 0)

	h.tick(input.ActionSelectEngineTool)
	assert.Equal(t, core.ToolEngine, h.mode().Tool)
	assert.False(t, h.pending().HasAnchor())
}

func TestSnapsInShipLocalSpace(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{Transform: vmath.Translate(100, 0)})
	h.enterWallTool()

	h.press(103, 58)
	anchor, _ := h.pending().Anchor()
	assert.Equal(t, v(0, 60), anchor)
	assert.True(t, vmath.OnGrid(anchor, 20))
}

func TestZeroLengthWallIsKept(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()

	h.press(41, 41)
	h.press(39, 38)
	segs := h.outline().Segments()
	last := segs[len(segs)-1]
	assert.True(t, last.Degenerate())
	assert.Equal(t, v(40, 40), last.A)
}

func TestMultipleLocalShipsPanics(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.enterWallTool()
	h.world.Components.LocalShip.SetComponent(h.world.CreateEntity(), component.LocalShipComponent{})

	h.moveTo(0, 0)
	assert.Panics(t, func() { h.tick() })
}

func TestWallToolIdleOutsideWallMode(t *testing.T) {
	h := newHarness(t, 20, ShipSettings{})
	h.tick(input.ActionStartGame)
	h.press(40, 40)
	assert.False(t, h.pending().HasAnchor())

	h.tick(input.ActionToggleBuildMode)
	h.press(40, 40)
	assert.False(t, h.pending().HasAnchor(), "building without a tool")
}
