package hull

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BlueprintVersion is the on-disk format revision written by Save
const BlueprintVersion = 1

var (
	ErrBlueprintVersion = errors.New("unsupported blueprint version")
	ErrEmptySubpath     = errors.New("blueprint subpath has no points")
)

// Blueprint is the persisted form of an outline
type Blueprint struct {
	Version  int       `yaml:"version"`
	Ship     string    `yaml:"ship,omitempty"`
	GridCell float64   `yaml:"grid_cell,omitempty"`
	Subpaths []Subpath `yaml:"subpaths"`
}

// Subpath is one MoveTo-started run of vertices
type Subpath struct {
	Points [][2]float64 `yaml:"points,flow"`
	Closed bool         `yaml:"closed,omitempty"`
}

// BlueprintFromPath converts p into its persisted form
// Curves are stored by their end point
func BlueprintFromPath(p *path.Data) Blueprint {
	bp := Blueprint{Version: BlueprintVersion}
	if p == nil {
		return bp
	}

	var cur *Subpath
	idx := 0
	beginSubpath := func() {
		bp.Subpaths = append(bp.Subpaths, Subpath{})
		cur = &bp.Subpaths[len(bp.Subpaths)-1]
	}
	push := func(v vec.Vec2) {
		if cur == nil {
			beginSubpath()
		}
		cur.Points = append(cur.Points, [2]float64{v.X, v.Y})
	}
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			beginSubpath()
			push(p.Coords[idx])
			idx++
		case path.CmdLineTo:
			push(p.Coords[idx])
			idx++
		case path.CmdQuadTo:
			push(p.Coords[idx+1])
			idx += 2
		case path.CmdCubeTo:
			push(p.Coords[idx+2])
			idx += 3
		case path.CmdClose:
			if cur != nil {
				cur.Closed = true
			}
		}
	}
	return bp
}

// Path rebuilds the outline geometry described by the blueprint
func (bp Blueprint) Path() (*path.Data, error) {
	if bp.Version != BlueprintVersion {
		return nil, fmt.Errorf("%w: %d", ErrBlueprintVersion, bp.Version)
	}

	p := &path.Data{}
	for i, sp := range bp.Subpaths {
		if len(sp.Points) == 0 {
			return nil, fmt.Errorf("subpath %d: %w", i, ErrEmptySubpath)
		}
		p.MoveTo(vec.Vec2{X: sp.Points[0][0], Y: sp.Points[0][1]})
		for _, pt := range sp.Points[1:] {
			p.LineTo(vec.Vec2{X: pt[0], Y: pt[1]})
		}
		if sp.Closed {
			p.Close()
		}
	}
	return p, nil
}

// SaveBlueprint writes bp as YAML
func SaveBlueprint(w io.Writer, bp Blueprint) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bp); err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}
	return enc.Close()
}

// LoadBlueprint reads a YAML blueprint and validates its version
func LoadBlueprint(r io.Reader) (Blueprint, error) {
	var bp Blueprint
	if err := yaml.NewDecoder(r).Decode(&bp); err != nil {
		return Blueprint{}, fmt.Errorf("decode blueprint: %w", err)
	}
	if bp.Version != BlueprintVersion {
		return Blueprint{}, fmt.Errorf("%w: %d", ErrBlueprintVersion, bp.Version)
	}
	return bp, nil
}
