// Package simplex defines the canonical simplex value used across tedea.
//
// What
//
//   - Simplex: a finite, non-empty set of vertex names, represented as a
//     sorted, duplicate-free string sequence. Dimension = len − 1.
//   - New: canonicalizing constructor (sorts, drops duplicates).
//   - SubsetOf / IsFacetOf: the containment relations behind boundary
//     matrices (a facet is a face with exactly one fewer vertex).
//   - Faces(p): all p-dimensional faces ((p+1)-element subsets), generated
//     through gonum's combinatorics in lexicographic order.
//   - Compare: the deterministic ordering (size ascending, then
//     lexicographic) used for reproducible face and clique lists.
//
// Why
//
//	Every stage of the Vietoris–Rips pipeline — clique extraction, face
//	enumeration, boundary construction — passes simplices around. A single
//	canonical form makes set membership a string-key lookup and makes all
//	output orderings reproducible.
//
// Complexity (k = vertex count of the simplex)
//
//   - New:       O(k·log k)
//   - SubsetOf:  O(k) merge walk over both sorted sequences
//   - Faces(p):  O(C(k, p+1)·(p+1)) — inherently combinatorial
package simplex
