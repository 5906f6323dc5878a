package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shipwright/config"
	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/input"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (default ./"+config.DefaultFile+" if present)")
		keymapPath = flag.String("keymap", "", "keymap TOML with [runes] [keys] [buttons] overrides")
		grid       = flag.Float64("grid", 0, "grid cell size, overrides [build] grid_cell")
		load       = flag.String("blueprint", "", "blueprint to load, overrides [blueprint] load")
		save       = flag.String("save", "", "blueprint to write on exit, overrides [blueprint] save")
		metrics    = flag.String("metrics", "", "prometheus listen address, overrides [metrics] addr")
		logFile    = flag.String("log", "", "log file, overrides [log] file")
		mute       = flag.Bool("mute", false, "start with audio disabled")
	)
	flag.Parse()

	cfg, source, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: %v\n", err)
		os.Exit(1)
	}

	if *grid != 0 {
		cfg.Build.GridCell = *grid
	}
	if *load != "" {
		cfg.Blueprint.Load = *load
	}
	if *save != "" {
		cfg.Blueprint.Save = *save
	}
	if *metrics != "" {
		cfg.Metrics.Addr = *metrics
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: %v\n", err)
		os.Exit(1)
	}

	keys, err := keyTable(cfg, *keymapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Info("starting", slog.String("config", source), slog.Float64("grid_cell", cfg.Build.GridCell))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "shipwright: screen init: %v\n", err)
		os.Exit(1)
	}
	defer func() { core.HandleCrash(recover(), screen.Fini) }()

	app, err := NewApp(screen, cfg, keys, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "shipwright: %v\n", err)
		os.Exit(1)
	}

	app.Run()
	app.Close()
	screen.Fini()
}

// keyTable layers the -keymap file over the config's bindings
func keyTable(cfg config.Config, keymapPath string) (*input.KeyTable, error) {
	kt, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}
	if keymapPath == "" {
		return kt, nil
	}
	data, err := os.ReadFile(keymapPath)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(kt, override), nil
}

// openLogger sends text logs to the configured file; the terminal belongs to tcell
func openLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	lvl, err := config.Config{Log: lc}.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if lc.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log open: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}
