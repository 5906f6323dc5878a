package hull

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func v(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

func TestMergeAppendsDisjointSubpath(t *testing.T) {
	prior := SquareHull(5)
	priorCmds := len(prior.Cmds)
	priorCoords := append([]vec.Vec2(nil), prior.Coords...)

	out := Merge(prior, Segment{A: v(100, 60), B: v(200, 20)})

	// prior untouched
	assert.Len(t, prior.Cmds, priorCmds)
	assert.Equal(t, priorCoords, prior.Coords)

	want := append(append([]vec.Vec2(nil), priorCoords...), v(100, 60), v(200, 20))
	assert.Equal(t, want, out.Coords)
	assert.Equal(t, path.CmdMoveTo, out.Cmds[len(out.Cmds)-2])
	assert.Equal(t, path.CmdLineTo, out.Cmds[len(out.Cmds)-1])
}

func TestMergeDoesNotWeldCoincidentEndpoints(t *testing.T) {
	o := NewOutline(nil)
	o.AppendSegment(Segment{A: v(0, 0), B: v(20, 0)})
	o.AppendSegment(Segment{A: v(20, 0), B: v(20, 20)})

	assert.Equal(t, 2, o.SubpathCount())
	assert.Equal(t, []vec.Vec2{v(0, 0), v(20, 0), v(20, 0), v(20, 20)}, o.Vertices())
}

func TestOutlineKeepsDegenerateSegment(t *testing.T) {
	o := NewOutline(nil)
	seg := Segment{A: v(40, 40), B: v(40, 40)}
	require.True(t, seg.Degenerate())

	o.AppendSegment(seg)
	segs := o.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, seg, segs[0])
	assert.Zero(t, segs[0].Length())
}

func TestOutlineCopiesInitial(t *testing.T) {
	initial := SquareHull(5)
	o := NewOutline(initial)
	initial.LineTo(v(99, 99))

	assert.Len(t, o.Vertices(), 5)
	assert.Equal(t, uint64(0), o.Version())
}

func TestOutlineSnapshotStableAcrossMerge(t *testing.T) {
	o := NewOutline(SquareHull(5))
	before := o.Snapshot()

	o.AppendSegment(Segment{A: v(0, 0), B: v(20, 0)})

	assert.Len(t, before.Coords, 5, "published snapshot mutated by merge")
	assert.Len(t, o.Snapshot().Coords, 7)
	assert.Equal(t, uint64(1), o.Version())
}

func TestSegmentsSquareHull(t *testing.T) {
	segs := Segments(SquareHull(5))
	require.Len(t, segs, 4)
	assert.Equal(t, Segment{A: v(-5, -5), B: v(-5, 5)}, segs[0])
	assert.Equal(t, Segment{A: v(5, -5), B: v(-5, -5)}, segs[3])
}

func TestSegmentsCloseEmitsClosingEdge(t *testing.T) {
	p := (&path.Data{}).MoveTo(v(0, 0)).LineTo(v(10, 0)).LineTo(v(10, 10)).Close()
	segs := Segments(p)
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{A: v(10, 10), B: v(0, 0)}, segs[2])
}

// Readers running against a single writer must only ever see whole merges
func TestOutlineConcurrentReaders(t *testing.T) {
	o := NewOutline(nil)
	const merges = 500

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < merges; i++ {
				snap := o.Snapshot()
				if len(snap.Coords)%2 != 0 || len(snap.Cmds) != len(snap.Coords) {
					t.Errorf("torn outline: %d cmds, %d coords", len(snap.Cmds), len(snap.Coords))
					return
				}
			}
		}()
	}

	for i := 0; i < merges; i++ {
		o.AppendSegment(Segment{A: v(float64(i), 0), B: v(float64(i), 20)})
	}
	wg.Wait()

	assert.Equal(t, uint64(merges), o.Version())
	assert.Equal(t, merges, o.SubpathCount())
}
