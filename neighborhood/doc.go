// Package neighborhood builds the proximity graph of a named point set —
// the 1-skeleton of its Vietoris–Rips complex.
//
// What
//
//   - Graph: one vertex per named point, an undirected edge between every
//     pair whose metric distance is at most 2·radius. Immutable once built.
//   - New: validating constructor (metric present, radius non-negative,
//     all coordinate vectors of equal length).
//   - Queries: Vertices, Coords, HasEdge, Neighbors, Edges, VertexCount,
//     EdgeCount — all with deterministic (sorted) output.
//   - Components: connected components, the geometric reading of Betti₀.
//
// Why 2·radius
//
//	Two closed balls of radius r centered at u and v intersect iff their
//	centers are within 2r of each other. The proximity graph therefore
//	records exactly the pairwise ball intersections the Rips construction
//	is built on.
//
// Degenerate cases
//
//	radius = 0 connects only coincident points. An empty point set yields
//	an empty graph; neither is an error.
//
// Complexity (n points, d coordinates)
//
//   - New:        O(n²·d) — every unordered pair is measured once
//   - Neighbors:  O(deg·log deg)
//   - Components: O(V + E)
//
// Errors
//
//   - ErrNilMetric          nil metric supplied.
//   - ErrNegativeRadius     radius < 0.
//   - ErrDimensionMismatch  coordinate vectors differ in length.
//   - ErrUnknownVertex      query for a vertex that is not in the graph.
package neighborhood
