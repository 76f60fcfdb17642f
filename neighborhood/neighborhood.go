package neighborhood

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/tedea/metric"
)

// Sentinel errors for proximity-graph construction and queries.
var (
	// ErrNilMetric is returned when New is given a nil metric.
	ErrNilMetric = errors.New("neighborhood: metric is nil")

	// ErrNegativeRadius is returned when New is given a radius below zero.
	ErrNegativeRadius = errors.New("neighborhood: radius is negative")

	// ErrDimensionMismatch is returned when coordinate vectors differ in length.
	ErrDimensionMismatch = errors.New("neighborhood: coordinate vectors differ in length")

	// ErrUnknownVertex is returned by queries on vertex names not in the graph.
	ErrUnknownVertex = errors.New("neighborhood: unknown vertex")
)

// Graph is the proximity graph of a named point set: vertices are point
// names, and an undirected edge joins u and v whenever
// metric(u, v) <= 2·radius. A Graph is immutable once built, so it is safe
// for concurrent readers.
type Graph struct {
	coords map[string][]float64
	adj    map[string]map[string]struct{}
	ids    []string // vertex names, sorted ascending
	edges  int
}

// New builds the proximity graph of points under m with the given radius.
// Point names are map keys, so duplicates cannot occur by construction; the
// remaining input-shape conditions are rejected here, before any topology
// runs: ErrNilMetric, ErrNegativeRadius, and ErrDimensionMismatch (wrapped
// with the offending vertex name). Coordinates are copied, so later mutation
// of the input map cannot leak into the graph.
func New(points map[string][]float64, radius float64, m metric.Metric) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMetric
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeRadius, radius)
	}

	ids := make([]string, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := &Graph{
		coords: make(map[string][]float64, len(ids)),
		adj:    make(map[string]map[string]struct{}, len(ids)),
		ids:    ids,
	}
	dim := -1
	for _, id := range ids {
		v := points[id]
		if dim < 0 {
			dim = len(v)
		} else if len(v) != dim {
			return nil, fmt.Errorf("%w: %q has %d coordinates, want %d",
				ErrDimensionMismatch, id, len(v), dim)
		}
		g.coords[id] = append([]float64(nil), v...)
		g.adj[id] = make(map[string]struct{})
	}

	threshold := 2 * radius
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			if m.Distance(g.coords[u], g.coords[v]) <= threshold {
				g.adj[u][v] = struct{}{}
				g.adj[v][u] = struct{}{}
				g.edges++
			}
		}
	}
	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Vertices returns all vertex names in ascending order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.ids...)
}

// Coords returns a copy of the coordinate vector of id,
// or ErrUnknownVertex.
func (g *Graph) Coords(id string) ([]float64, error) {
	v, ok := g.coords[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	return append([]float64(nil), v...), nil
}

// HasEdge reports whether u and v are joined by an edge.
// Unknown names simply report false.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Neighbors returns the vertices adjacent to id, sorted ascending,
// or ErrUnknownVertex.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Edges returns every undirected edge exactly once as an ordered pair
// {u, v} with u < v, the pairs sorted lexicographically.
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, 0, g.edges)
	for _, u := range g.ids {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, [2]string{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
