package merge_test

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
)

type (
	conn2 = connection.Connection[lattice.Point2]
	set2  = connection.Set[lattice.Point2]
	key2  = connection.Key[lattice.Point2]
)

// line builds the 2D connection (ac,ar)-(bc,br).
func line(ac, ar, bc, br int, dashed bool) conn2 {
	return connection.New(lattice.P2(ac, ar), lattice.P2(bc, br), dashed)
}

// mark builds the marked point (c,r).
func mark(c, r int) conn2 {
	return connection.Mark(lattice.P2(c, r))
}

// permutations returns every ordering of s.
func permutations(s set2) []set2 {
	if len(s) <= 1 {
		return []set2{s.Clone()}
	}
	var out []set2
	for i := range s {
		rest := s.Without(i)
		for _, p := range permutations(rest) {
			out = append(out, append(set2{s[i]}, p...))
		}
	}
	return out
}
