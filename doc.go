// Package tedea computes topological invariants — Betti numbers — of finite
// point sets under a pluggable distance metric.
//
// 🚀 What is tedea?
//
//	A small, deterministic computational-topology library that brings together:
//		• Metrics: Euclidean, Manhattan, Chebyshev + custom functions
//		• Proximity graphs: the Vietoris–Rips edge rule over named points
//		• Maximal simplices: Bron–Kerbosch maximal-clique enumeration
//		• Faces: per-dimension face enumeration with deduplication
//		• Boundary operators: incidence matrices over GF(2)
//		• Homology: Betti numbers via rank-nullity
//
// ✨ Why choose tedea?
//
//   - Pure values – a complex is immutable once built, safe to read anywhere
//   - Deterministic – identical input always yields identical output
//   - Honest degenerate cases – empty complexes, isolated points and
//     out-of-range dimensions all produce defined, trivial results
//
// Everything is organized under small subpackages:
//
//	metric/       — distance functions over coordinate vectors
//	neighborhood/ — proximity graph construction and queries
//	cliques/      — maximal-clique (maximal-simplex) enumeration
//	simplex/      — canonical simplices and face generation
//	gf2/          — dense matrices over the two-element field
//	rips/         — the Vietoris–Rips complex: faces, boundaries, Betti numbers
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four points at unit-square corners with radius 0.5 form a hollow square:
//	one component, one 1-dimensional hole, Betti sequence [1 1].
//
// Dive into the rips package for the entry point.
//
//	go get github.com/katalvlaran/tedea
package tedea
