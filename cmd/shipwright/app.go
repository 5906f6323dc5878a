package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipwright/audio"
	"github.com/lixenwraith/shipwright/config"
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/engine/services"
	"github.com/lixenwraith/shipwright/input"
	"github.com/lixenwraith/shipwright/parameter"
	"github.com/lixenwraith/shipwright/render"
	"github.com/lixenwraith/shipwright/render/renderer"
	"github.com/lixenwraith/shipwright/system"
)

// App owns the terminal session: screen, frame loop, and ambient services
type App struct {
	screen tcell.Screen
	cfg    config.Config
	logger *slog.Logger

	ctx   *engine.GameContext
	input *input.Machine
	orch  *render.Orchestrator
	hub   *services.Hub
}

// NewApp wires the world, systems, renderers, and optional audio and metrics
func NewApp(screen tcell.Screen, cfg config.Config, keys *input.KeyTable, logger *slog.Logger) (*App, error) {
	ship, err := loadShip(cfg)
	if err != nil {
		return nil, err
	}

	w := engine.NewWorld()
	w.Resources.Config.GridCell = cfg.Build.GridCell
	ctx := engine.NewGameContext(w, logger)
	if _, err := system.Install(ctx, system.Settings{Ship: ship}); err != nil {
		return nil, err
	}

	screen.EnableMouse()
	orch := render.NewOrchestrator(screen)
	cam := orch.Camera()
	cam.UnitsPerColumn = cfg.Camera.UnitsPerColumn
	cam.UnitsPerRow = cfg.Camera.UnitsPerRow
	renderer.RegisterAll(orch, w)

	im := input.NewMachine(keys)
	im.Resize(screen.Size())
	w.Resources.Cursor.Projector = &render.MouseProjector{Source: im, Camera: cam}

	hub := services.NewHub()
	if cfg.Audio.Enabled {
		acfg := audio.Config{Enabled: true, SampleRate: parameter.AudioSampleRate, Volume: cfg.Audio.Volume}
		if err := hub.Register(newAudioService(acfg, ctx.Logger)); err != nil {
			return nil, err
		}
	}
	if cfg.Metrics.Addr != "" {
		if err := hub.Register(newMetricsService(cfg.Metrics.Addr, ctx.Logger)); err != nil {
			return nil, err
		}
	}
	if err := hub.InitAll(w); err != nil {
		return nil, err
	}
	if err := hub.StartAll(); err != nil {
		return nil, err
	}

	return &App{
		screen: screen,
		cfg:    cfg,
		logger: ctx.Logger,
		ctx:    ctx,
		input:  im,
		orch:   orch,
		hub:    hub,
	}, nil
}

// Run polls terminal events, ticks the world and redraws until quit
func (a *App) Run() {
	gameTicker := time.NewTicker(parameter.GameUpdateInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it reads the terminal directly
	go func() {
		defer func() { core.HandleCrash(recover(), a.screen.Fini) }()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.orch.RenderFrame(a.ctx.World)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handle(ev) {
				return
			}
		case <-gameTicker.C:
			a.ctx.Tick(a.input.Drain())
		case <-frameTicker.C:
			a.orch.RenderFrame(a.ctx.World)
		}
	}
}

// handle feeds one terminal event to the input machine, returns false on quit
func (a *App) handle(ev tcell.Event) bool {
	switch a.input.Process(ev) {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		w, h := a.screen.Size()
		a.orch.Resize(w, h)
	}
	return true
}

// Close saves the blueprint and stops ambient services
func (a *App) Close() {
	if err := saveShip(a.ctx.World, a.cfg); err != nil {
		a.logger.Warn("blueprint save failed", slog.String("path", a.cfg.Blueprint.Save), slog.Any("err", err))
	}
	if err := a.hub.StopAll(); err != nil {
		a.logger.Warn("service shutdown", slog.Any("err", err))
	}
	a.logger.Info("stopped", slog.Int64("frames", a.ctx.FrameNumber()))
}
