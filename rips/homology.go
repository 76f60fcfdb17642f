package rips

import "github.com/katalvlaran/tedea/gf2"

// BoundaryMatrix returns the matrix of the boundary operator
// ∂p : Cp → Cp−1 over GF(2): one row per (p−1)-face, one column per p-face,
// entry (i, j) = 1 iff row face i is contained in column face j with exactly
// one fewer vertex.
//
// Absent chain spaces keep the shapes defined instead of collapsing to
// zero-sized matrices:
//   - no (p−1)-faces and no p-faces → the 1×1 zero matrix;
//   - no p-faces → a |rows|×1 zero column;
//   - no (p−1)-faces (p = 0, the boundary into the augmented “−1” space)
//     → a 1×|cols| zero row.
func (c *Complex) BoundaryMatrix(p int) *gf2.Matrix {
	cols := c.Faces(p)
	rows := c.Faces(p - 1)

	var m *gf2.Matrix
	switch {
	case cols.None && rows.None:
		m, _ = gf2.New(1, 1)
		return m
	case cols.None:
		m, _ = gf2.New(len(rows.Faces), 1)
		return m
	case rows.None:
		m, _ = gf2.New(1, len(cols.Faces))
		return m
	}

	// Face lists inside [0, dim] are never empty, so shapes are positive
	// and every Set below is in range.
	m, _ = gf2.New(len(rows.Faces), len(cols.Faces))
	for j, col := range cols.Faces {
		for i, row := range rows.Faces {
			if row.IsFacetOf(col) {
				_ = m.Set(i, j, 1)
			}
		}
	}
	return m
}

// BettiNumber returns the rank of the p-th homology group.
//
// Dimensions with no p-faces have a trivial chain space and trivial
// homology, so they return 0 outright; everywhere else rank-nullity
// applies: βp = dim Cp − rank ∂p − rank ∂p+1, where dim Cp − rank ∂p is
// the kernel of ∂p and rank ∂p+1 is the image of ∂p+1 inside that kernel
// (∂∂ = 0 guarantees the containment).
func (c *Complex) BettiNumber(p int) int {
	if c.Faces(p).None {
		return 0
	}
	mp := c.BoundaryMatrix(p)
	mq := c.BoundaryMatrix(p + 1)
	return mp.Cols() - mp.Rank() - mq.Rank()
}

// BettiNumbers returns the full Betti sequence, one entry per dimension
// from 0 through Dim(). The empty complex yields an empty sequence.
func (c *Complex) BettiNumbers() []int {
	if c.dim < 0 {
		return nil
	}
	out := make([]int, c.dim+1)
	for p := range out {
		out[p] = c.BettiNumber(p)
	}
	return out
}
