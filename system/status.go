package system

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/event"
	"github.com/lixenwraith/shipwright/parameter"
)

// StatusSystem publishes build telemetry
// Counters follow the event stream; outline gauges refresh when the outline version moves
type StatusSystem struct {
	world *engine.World

	statAnchors   prometheus.Counter
	statWalls     prometheus.Counter
	statDiscarded prometheus.Counter
	statEngines   prometheus.Counter
	statDropped   prometheus.Gauge

	statVertices prometheus.Gauge
	statSubpaths prometheus.Gauge
	statEngCount prometheus.Gauge

	lastVersion uint64
	seen        bool
}

func NewStatusSystem(world *engine.World) *StatusSystem {
	reg := world.Resources.Status
	return &StatusSystem{
		world: world,

		statAnchors:   reg.Counters.Get("anchors.placed"),
		statWalls:     reg.Counters.Get("walls.committed"),
		statDiscarded: reg.Counters.Get("anchors.discarded"),
		statEngines:   reg.Counters.Get("engines.placed"),
		statDropped:   reg.Gauges.Get("events.dropped"),

		statVertices: reg.Gauges.Get("outline.vertices"),
		statSubpaths: reg.Gauges.Get("outline.subpaths"),
		statEngCount: reg.Gauges.Get("engines.count"),
	}
}

// Name returns system's name
func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAnchorPlaced,
		event.EventWallCommitted,
		event.EventAnchorDiscarded,
		event.EventEnginePlaced,
	}
}

func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventAnchorPlaced:
		s.statAnchors.Inc()
	case event.EventWallCommitted:
		s.statWalls.Inc()
	case event.EventAnchorDiscarded:
		s.statDiscarded.Inc()
	case event.EventEnginePlaced:
		s.statEngines.Inc()
	}
}

func (s *StatusSystem) Update() {
	s.statDropped.Set(float64(s.world.Resources.Event.Queue.Dropped()))
	s.statEngCount.Set(float64(s.world.Components.Engine.CountEntities()))

	outline, ok := LocalShipOutline(s.world)
	if !ok {
		return
	}
	if v := outline.Version(); s.seen && v == s.lastVersion {
		return
	}
	s.lastVersion = outline.Version()
	s.seen = true
	s.statVertices.Set(float64(len(outline.Snapshot().Coords)))
	s.statSubpaths.Set(float64(outline.SubpathCount()))
}
