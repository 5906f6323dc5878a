package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/shipwright/config"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/hull"
	"github.com/lixenwraith/shipwright/system"
)

// loadShip builds the spawn template, seeding the hull from [blueprint] load when set
func loadShip(cfg config.Config) (system.ShipSettings, error) {
	ship := system.ShipSettings{Name: cfg.Build.ShipName}
	if cfg.Blueprint.Load == "" {
		return ship, nil
	}

	f, err := os.Open(cfg.Blueprint.Load)
	if err != nil {
		return ship, fmt.Errorf("blueprint open: %w", err)
	}
	defer f.Close()

	bp, err := hull.LoadBlueprint(f)
	if err != nil {
		return ship, err
	}
	p, err := bp.Path()
	if err != nil {
		return ship, err
	}
	ship.Hull = p

	if bp.Ship != "" {
		id, err := uuid.Parse(bp.Ship)
		if err != nil {
			return ship, fmt.Errorf("blueprint ship id: %w", err)
		}
		ship.ID = id
	}
	return ship, nil
}

// saveShip writes the local ship outline to [blueprint] save
// No-op when saving is off or the game never spawned a ship
func saveShip(w *engine.World, cfg config.Config) error {
	if cfg.Blueprint.Save == "" {
		return nil
	}

	var bp hull.Blueprint
	found := false
	w.RunSafe(func() {
		outline, ok := system.LocalShipOutline(w)
		if !ok {
			return
		}
		found = true
		bp = hull.BlueprintFromPath(outline.Snapshot())
		bp.GridCell = w.Resources.Config.GridCell
		res := engine.Single(w.Components.LocalShip)
		if sc, ok := w.Components.Ship.GetComponent(res.Entity); ok {
			bp.Ship = sc.ID.String()
		}
	})
	if !found {
		return nil
	}

	f, err := os.Create(cfg.Blueprint.Save)
	if err != nil {
		return fmt.Errorf("blueprint create: %w", err)
	}
	if err := hull.SaveBlueprint(f, bp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
