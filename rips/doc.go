// Package rips builds Vietoris–Rips complexes over named point sets and
// computes their Betti numbers.
//
// What
//
//   - Complex: an immutable value built once from (points, radius, metric).
//     Construction runs the whole pipeline: proximity graph → maximal
//     cliques (= maximal simplices) → per-dimension face lists.
//   - Faces(p): the distinct p-dimensional faces, deduplicated across
//     maximal simplices and deterministically sorted. Dimensions without
//     faces are an explicit tagged case (FaceSet.None), not a magic value.
//   - BoundaryMatrix(p): the boundary operator ∂p : Cp → Cp−1 over GF(2) —
//     one row per (p−1)-face, one column per p-face, entry 1 iff the row
//     face bounds the column face. Degenerate dimensions yield zero
//     matrices with a single phantom row and/or column, keeping every
//     shape defined.
//   - BettiNumber(p) / BettiNumbers(): homology ranks via rank-nullity:
//     βp = |Fp| − rank ∂p − rank ∂p+1.
//
// Why GF(2)
//
//	With mod-2 coefficients orientation is irrelevant — only face
//	membership matters — yet ∂∂ = 0 still holds, so boundary matrices are
//	plain incidence matrices and homology ranks come from Gaussian
//	elimination alone.
//
// Determinism & lifecycle
//
//	A Complex never mutates after New returns; changing points, radius or
//	metric means constructing a new value. Identical input always yields
//	the identical graph, face lists and Betti sequence, and a built Complex
//	is safe for concurrent readers.
//
// Degenerate cases
//
//	No points: Dim() = −1, BettiNumbers() is empty. A single isolated
//	point: BettiNumbers() = [1]. Out-of-range dimensions: Faces is None,
//	BoundaryMatrix is a phantom zero shape, BettiNumber is 0. None of
//	these is an error.
//
// Usage
//
//	points := map[string][]float64{
//	    "A": {0, 0}, "B": {1, 0}, "C": {0, 1}, "D": {1, 1},
//	}
//	c, err := rips.New(points, 0.5)
//	if err != nil { ... }
//	fmt.Println(c.BettiNumbers()) // [1 1] — one component, one hole
//
// Options
//
//   - WithMetric(m): distance function (default metric.Euclidean).
//
// Errors
//
//   - ErrOptionViolation for invalid options (e.g. nil metric), plus any
//     input-shape error surfaced by the neighborhood builder
//     (ErrDimensionMismatch, ErrNegativeRadius).
package rips
