package connection_test

import (
	"testing"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/stretchr/testify/assert"
)

type (
	c2 = connection.Connection[lattice.Point2]
	s2 = connection.Set[lattice.Point2]
	s3 = connection.Set[lattice.Point3]
)

func seg(ac, ar, bc, br int, dashed bool) c2 {
	return connection.New(lattice.P2(ac, ar), lattice.P2(bc, br), dashed)
}

// TestEqual_IgnoresOrder verifies Connection(a,b) == Connection(b,a).
func TestEqual_IgnoresOrder(t *testing.T) {
	ab := seg(0, 0, 2, 1, false)
	ba := seg(2, 1, 0, 0, false)
	assert.True(t, ab.Equal(ba))
	assert.Equal(t, ab.Key(), ba.Key())
	assert.True(t, ab.Connects(lattice.P2(2, 1), lattice.P2(0, 0)))
}

// TestEqual_DistinguishesDashed verifies that dashed state is part of identity.
func TestEqual_DistinguishesDashed(t *testing.T) {
	solid := seg(0, 0, 2, 0, false)
	dashed := solid.Toggled()
	assert.False(t, solid.Equal(dashed))
	assert.True(t, dashed.Dashed())
	assert.Equal(t, solid.A(), dashed.A(), "toggle keeps endpoints")
	assert.Equal(t, solid.B(), dashed.B(), "toggle keeps endpoints")
	assert.True(t, solid.Equal(dashed.WithDashed(false)))
}

func TestMark(t *testing.T) {
	m := connection.Mark(lattice.P3(1, 1, 1))
	assert.True(t, m.IsPoint())
	assert.False(t, m.Dashed())
	assert.Zero(t, m.Length())
	assert.Equal(t, "(1,1,1)-(1,1,1)", m.String())
}

func TestLength(t *testing.T) {
	assert.Equal(t, 2.0, seg(0, 0, 2, 0, false).Length())
	assert.InDelta(t, 2.8284271, seg(0, 0, 2, 2, true).Length(), 1e-6)
}

//----------------------------------------------------------------------------//
// Set
//----------------------------------------------------------------------------//

func TestSet_Equal(t *testing.T) {
	a := s2{seg(0, 0, 1, 0, false), seg(1, 1, 2, 2, true)}
	b := s2{seg(2, 2, 1, 1, true), seg(1, 0, 0, 0, false)}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	assert.False(t, a.Equal(s2{seg(0, 0, 1, 0, false), seg(1, 1, 2, 2, false)}), "dashed differs")
	assert.False(t, a.Equal(a[:1]), "cardinality differs")
	assert.False(t, s2{a[0], a[0]}.Equal(s2{a[0], a[1]}), "multiplicity differs")
	assert.True(t, s2(nil).Equal(s2{}))
}

func TestSet_IndexAndWithout(t *testing.T) {
	s := s2{seg(0, 0, 1, 0, false), seg(0, 1, 1, 1, true)}
	assert.Equal(t, 1, s.Index(seg(1, 1, 0, 1, true)))
	assert.Equal(t, -1, s.Index(seg(1, 1, 0, 1, false)))
	assert.Equal(t, 1, s.IndexConnecting(lattice.P2(1, 1), lattice.P2(0, 1)))

	rest := s.Without(0)
	assert.Len(t, rest, 1)
	assert.Len(t, s, 2, "Without must not modify the receiver")
	assert.True(t, s[0].Equal(seg(0, 0, 1, 0, false)))
}

func TestSet_Keys(t *testing.T) {
	s := s3{
		connection.New(lattice.P3(2, 0, 0), lattice.P3(0, 0, 0), true),
		connection.New(lattice.P3(0, 0, 0), lattice.P3(2, 0, 0), false),
		connection.Mark(lattice.P3(1, 1, 1)),
	}
	keys := s.Keys()
	assert.Equal(t, []connection.Key[lattice.Point3]{
		{Lo: lattice.P3(0, 0, 0), Hi: lattice.P3(2, 0, 0), Dashed: false},
		{Lo: lattice.P3(0, 0, 0), Hi: lattice.P3(2, 0, 0), Dashed: true},
		{Lo: lattice.P3(1, 1, 1), Hi: lattice.P3(1, 1, 1), Dashed: false},
	}, keys)
	assert.True(t, keys[1].Connection().Equal(s[0]))
}

func TestSet_Canonical(t *testing.T) {
	s := s2{seg(2, 0, 1, 0, false), seg(1, 0, 0, 0, true), seg(0, 2, 0, 0, false)}
	got := s.Canonical()
	assert.Equal(t, s2{seg(0, 0, 0, 2, false), seg(0, 0, 1, 0, true), seg(1, 0, 2, 0, false)}, got)
	assert.Equal(t, got, s2{s[1], s[2], s[0]}.Canonical())
	assert.Equal(t, lattice.P2(2, 0), s[0].A(), "input must be left untouched")
}
