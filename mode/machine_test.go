package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
)

func recordingActions(log *[]string) Actions {
	rec := func(name string) func(*engine.World, any) {
		return func(*engine.World, any) { *log = append(*log, name) }
	}
	return Actions{
		ActionSpawnShip:      rec(ActionSpawnShip),
		ActionResetBuildTool: rec(ActionResetBuildTool),
		ActionDiscardAnchor:  rec(ActionDiscardAnchor),
	}
}

func drainTypes(w *engine.World) []event.EventType {
	var out []event.EventType
	for _, ev := range w.Resources.Event.Queue.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func TestDefaultTreeLoads(t *testing.T) {
	var log []string
	m, err := NewMachine(DefaultTree, recordingActions(&log))
	require.NoError(t, err)

	for _, ctx := range legalContexts() {
		name := LeafName(ctx)
		w := engine.NewWorld()
		require.NoError(t, m.Init(w))
		m.Apply(w, ctx)
		assert.Equal(t, name, m.ActiveState(), "context %s", ctx)
	}
}

func TestMachineHooksFollowContext(t *testing.T) {
	var log []string
	m, err := NewMachine(DefaultTree, recordingActions(&log))
	require.NoError(t, err)

	w := engine.NewWorld()
	require.NoError(t, m.Init(w))
	assert.Equal(t, "StartMenu", m.ActiveState())
	assert.Empty(t, log)

	m.Apply(w, flying)
	assert.Equal(t, []string{ActionSpawnShip}, log)
	assert.True(t, m.InState("Game"))

	m.Apply(w, building)
	assert.Equal(t, []event.EventType{event.EventBuildEntered}, drainTypes(w))

	log = nil
	m.Apply(w, wallTool)
	assert.Equal(t, []string{ActionResetBuildTool}, log)
	assert.Equal(t, "WallTool", m.ActiveState())

	// Tool switch exits WallTool only
	log = nil
	m.Apply(w, engTool)
	assert.Equal(t, []string{ActionDiscardAnchor}, log)
	assert.Empty(t, drainTypes(w))

	// Leaving Building from WallTool discards before the build exit event
	m.Apply(w, wallTool)
	log = nil
	m.Apply(w, flying)
	assert.Equal(t, []string{ActionDiscardAnchor}, log)
	assert.Equal(t, []event.EventType{event.EventBuildExited}, drainTypes(w))
	assert.False(t, m.InState("Building"))
}

func TestMachineApplySameLeafNoHooks(t *testing.T) {
	var log []string
	m, err := NewMachine(DefaultTree, recordingActions(&log))
	require.NoError(t, err)
	w := engine.NewWorld()
	require.NoError(t, m.Init(w))

	m.Apply(w, flying)
	log = nil
	m.Apply(w, flying)
	assert.Empty(t, log)
}

func TestNewMachineRejectsIncompleteTree(t *testing.T) {
	var log []string

	_, err := NewMachine(DefaultTree, nil)
	assert.Error(t, err, "hooks must be registered")

	tree := []byte("initial = \"StartMenu\"\n[states.StartMenu]\n[states.Flying]\n")
	_, err = NewMachine(tree, recordingActions(&log))
	assert.ErrorContains(t, err, "missing state")

	tree = []byte(`
initial = "Flying"
[states.StartMenu]
[states.Flying]
[states.ToolNone]
[states.WallTool]
[states.EngineTool]
`)
	_, err = NewMachine(tree, recordingActions(&log))
	assert.ErrorContains(t, err, "initial state")
}

func TestLeafName(t *testing.T) {
	assert.Equal(t, "StartMenu", LeafName(menu))
	assert.Equal(t, "Flying", LeafName(flying))
	assert.Equal(t, "ToolNone", LeafName(building))
	assert.Equal(t, "WallTool", LeafName(wallTool))
	assert.Equal(t, "EngineTool", LeafName(engTool))
}
