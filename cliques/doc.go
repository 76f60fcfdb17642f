// Package cliques enumerates the maximal cliques of a proximity graph —
// the maximal simplices of its Vietoris–Rips complex.
//
// What
//
//   - Enumerate: Bron–Kerbosch with pivoting over a neighborhood.Graph,
//     returning every maximal clique as a canonical simplex.Simplex.
//   - Output order: size ascending, then lexicographic — reproducible
//     across runs, matching the deterministic-iteration convention of the
//     rest of the module.
//
// Why maximal cliques
//
//	A set of points spans a Rips simplex iff every pair within it is within
//	the distance threshold — i.e. iff the set is a clique of the proximity
//	graph. The complex is the downward closure of the maximal cliques, so
//	enumerating them describes the whole complex.
//
// Complexity
//
//	Worst case O(3^(V/3)) — clique enumeration is inherently exponential
//	(that bound is tight: it equals the maximum number of maximal cliques a
//	graph can have). The intended workload is small interactive point sets,
//	tens of vertices, where this completes instantly.
//
// Errors
//
//   - ErrGraphNil  if the graph pointer is nil.
package cliques
