// SPDX-License-Identifier: MIT

// Package gf2 provides dense matrices over GF(2), the two-element field.
//
// What
//
//   - Matrix: a rows×cols binary matrix; each row is a bitset, so adding one
//     row to another (the only row operation GF(2) has) is a word-wise XOR.
//   - New, At, Set, Clone, Transpose, IsZero: shape-validated construction
//     and bounds-checked access.
//   - Mul: mod-2 matrix product.
//   - Rank: Gaussian elimination over GF(2).
//
// Why
//
//	Boundary operators of a simplicial complex with GF(2) coefficients are
//	pure incidence matrices: entries record subset containment, no sign
//	bookkeeping. Betti numbers then reduce to ranks of these matrices
//	(rank-nullity), so a small mod-2 linear-algebra kernel is all the
//	homology computation needs.
//
// Determinism
//
//	All operations are synchronous and allocation-deterministic; Rank
//	works on a copy and never mutates the receiver.
//
// Complexity (r×c matrix, w = machine words per row)
//
//   - At/Set:     O(1)
//   - Mul (r×c by c×k): O(r·c·w)
//   - Rank:       O(r·c·w) — elimination with bitset row XOR
//
// Errors
//
//   - ErrBadShape           non-positive dimensions at construction.
//   - ErrOutOfRange         row/column index outside the matrix.
//   - ErrDimensionMismatch  incompatible operand shapes in Mul.
//   - ErrNilMatrix          nil operand passed to Mul.
package gf2
