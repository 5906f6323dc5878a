package system

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/mode"
	"github.com/lixenwraith/shipwright/parameter"
	"github.com/lixenwraith/shipwright/status"
)

// ModeSystem steps the layered mode from the frame's input edges
// Runs first so every later system reads the settled mode
type ModeSystem struct {
	world   *engine.World
	machine *mode.Machine

	statMode        *status.AtomicString
	statTransitions prometheus.Counter
	statTool        prometheus.Gauge
}

func NewModeSystem(world *engine.World, machine *mode.Machine) (*ModeSystem, error) {
	s := &ModeSystem{
		world:   world,
		machine: machine,
	}

	s.statMode = world.Resources.Status.Strings.Get("mode")
	s.statTransitions = world.Resources.Status.Counters.Get("mode.transitions")
	s.statTool = world.Resources.Status.Gauges.Get("mode.tool")

	if err := machine.Init(world); err != nil {
		return nil, err
	}
	s.statMode.Store(world.Resources.Mode.Current.String())
	return s, nil
}

// Name returns system's name
func (s *ModeSystem) Name() string {
	return "mode"
}

func (s *ModeSystem) Priority() int {
	return parameter.PriorityMode
}

func (s *ModeSystem) Update() {
	res := s.world.Resources
	prev := res.Mode.Current
	next := mode.Step(prev, res.Input.Edges)
	if next == prev {
		return
	}

	res.Mode.Current = next
	s.machine.Apply(s.world, next)

	s.statMode.Store(next.String())
	s.statTransitions.Inc()
	s.statTool.Set(float64(next.Tool))

	s.world.PushEvent(event.EventModeChanged, &event.ModeChangedPayload{Prev: prev, Next: next})
	s.world.Logger.Debug("mode changed",
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
		slog.String("state", s.machine.ActiveState()),
	)
}

// Machine exposes the state tree for front-end queries
func (s *ModeSystem) Machine() *mode.Machine {
	return s.machine
}
