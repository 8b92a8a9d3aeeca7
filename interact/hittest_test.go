package interact_test

import (
	"testing"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/interact"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	set2 = connection.Set[lattice.Point2]
	set3 = connection.Set[lattice.Point3]
)

func line2(ac, ar, bc, br int, dashed bool) connection.Connection[lattice.Point2] {
	return connection.New(lattice.P2(ac, ar), lattice.P2(bc, br), dashed)
}

func line3(a, b lattice.Point3, dashed bool) connection.Connection[lattice.Point3] {
	return connection.New(a, b, dashed)
}

// plane is a 3×3 grid at the origin with 100 units between points.
func plane(t *testing.T) *lattice.Lattice[lattice.Point2] {
	t.Helper()
	l, err := lattice.NewPlane(geometry.Vec2{}, 100)
	require.NoError(t, err)
	return l
}

func TestNearest(t *testing.T) {
	grid := plane(t)
	s := set2{line2(0, 0, 2, 0, false), line2(0, 1, 2, 1, false)}

	cases := []struct {
		name string
		pos  geometry.Vec2
		idx  int
		dist float64
		ok   bool
	}{
		{"near first", geometry.Vec2{X: 50, Y: 4}, 0, 4, true},
		{"near second", geometry.Vec2{X: 150, Y: 97}, 1, 3, true},
		{"between", geometry.Vec2{X: 50, Y: 50}, -1, 0, false},
		{"on tolerance", geometry.Vec2{X: 50, Y: 6}, -1, 0, false},
		{"past end", geometry.Vec2{X: 204, Y: 0}, 0, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, dist, ok := interact.Nearest(s, grid.Locate, tc.pos, interact.DefaultTolerance)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.idx, idx)
			assert.InDelta(t, tc.dist, dist, 1e-9)
		})
	}
}

func TestNearest_SkipsUnknownPoints(t *testing.T) {
	grid := plane(t)
	s := set2{line2(0, 0, 5, 0, false)}
	_, _, ok := interact.Nearest(s, grid.Locate, geometry.Vec2{X: 50}, interact.DefaultTolerance)
	assert.False(t, ok)
}

func TestHitTestDelete(t *testing.T) {
	grid := plane(t)
	s := set2{line2(0, 0, 2, 0, false), line2(0, 1, 2, 1, true)}

	rest, hit, ok := interact.HitTestDelete(s, grid.Locate, geometry.Vec2{X: 120, Y: 102}, 6)
	require.True(t, ok)
	assert.True(t, hit.Equal(line2(0, 1, 2, 1, true)))
	assert.True(t, rest.Equal(set2{line2(0, 0, 2, 0, false)}))
	assert.Len(t, s, 2, "input must not be mutated")

	rest, _, ok = interact.HitTestDelete(s, grid.Locate, geometry.Vec2{X: 50, Y: 50}, 6)
	assert.False(t, ok)
	assert.True(t, rest.Equal(s))
}

func TestToggleDashedNear_Renormalizes(t *testing.T) {
	grid := plane(t)
	// Result of splitting a solid (0,0)-(2,0) by a dashed (0,0)-(1,0).
	s := set2{line2(0, 0, 1, 0, true), line2(1, 0, 2, 0, false)}

	got, ok := interact.ToggleDashedNear(s, grid.Locate, geometry.Vec2{X: 50, Y: 3}, 6)
	require.True(t, ok)
	assert.True(t, got.Equal(set2{line2(0, 0, 2, 0, false)}), "got %v", got)
	assert.True(t, s[0].Dashed(), "input must not be mutated")

	same, ok := interact.ToggleDashedNear(s, grid.Locate, geometry.Vec2{X: 50, Y: 80}, 6)
	assert.False(t, ok)
	assert.True(t, same.Equal(s))
}
