package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/shipwright/audio"
	"github.com/lixenwraith/shipwright/engine"
)

// audioService plays build cues; a missing device leaves the session silent
type audioService struct {
	player *audio.Player
	logger *slog.Logger
	world  *engine.World
}

func newAudioService(cfg audio.Config, logger *slog.Logger) *audioService {
	return &audioService{player: audio.NewPlayer(cfg), logger: logger}
}

func (s *audioService) Name() string           { return "audio" }
func (s *audioService) Dependencies() []string { return nil }

func (s *audioService) Init(w *engine.World) error {
	s.world = w
	return nil
}

func (s *audioService) Start() error {
	if err := s.player.Start(); err != nil {
		s.logger.Warn("audio unavailable", slog.Any("err", err))
		return nil
	}
	s.world.RunSafe(func() { s.world.Resources.Audio.Player = s.player })
	return nil
}

func (s *audioService) Stop() error {
	s.player.Close()
	return nil
}

// metricsService serves the status registry over HTTP
type metricsService struct {
	addr   string
	logger *slog.Logger
	srv    *http.Server
	bound  string
}

func newMetricsService(addr string, logger *slog.Logger) *metricsService {
	return &metricsService{addr: addr, logger: logger}
}

func (s *metricsService) Name() string           { return "metrics" }
func (s *metricsService) Dependencies() []string { return nil }

func (s *metricsService) Init(w *engine.World) error {
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           w.Resources.Status.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

func (s *metricsService) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.bound = ln.Addr().String()
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Warn("metrics server stopped", slog.String("addr", s.bound), slog.Any("err", err))
		}
	}()
	s.logger.Info("metrics listening", slog.String("addr", s.bound))
	return nil
}

func (s *metricsService) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
