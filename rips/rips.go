package rips

import (
	"sort"

	"github.com/katalvlaran/tedea/cliques"
	"github.com/katalvlaran/tedea/neighborhood"
	"github.com/katalvlaran/tedea/simplex"
)

// Complex is a Vietoris–Rips complex over a named point set, immutable once
// built. All derived data (proximity graph, maximal simplices, per-dimension
// face lists) is computed by New; accessors only read.
type Complex struct {
	graph   *neighborhood.Graph
	radius  float64
	maximal []simplex.Simplex
	dim     int
	faces   [][]simplex.Simplex // faces[p] for p = 0..dim
}

// New builds the complex of points at the given radius. The default metric
// is Euclidean; override with WithMetric. Input-shape errors (ragged
// coordinates, negative radius) come back from the neighborhood builder;
// invalid options come back as ErrOptionViolation. Degenerate point sets
// (empty, single point) are not errors.
func New(points map[string][]float64, radius float64, opts ...Option) (*Complex, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := neighborhood.New(points, radius, o.metric)
	if err != nil {
		return nil, err
	}
	maximal, err := cliques.Enumerate(g)
	if err != nil {
		return nil, err
	}

	dim := -1
	for _, s := range maximal {
		if s.Dim() > dim {
			dim = s.Dim()
		}
	}

	c := &Complex{
		graph:   g,
		radius:  radius,
		maximal: maximal,
		dim:     dim,
	}
	// Face lists are precomputed so a built Complex is a pure read-only value.
	if dim >= 0 {
		c.faces = make([][]simplex.Simplex, dim+1)
		for p := 0; p <= dim; p++ {
			c.faces[p] = facesAt(maximal, p)
		}
	}
	return c, nil
}

// facesAt collects the distinct p-faces implied by the maximal simplices:
// every (p+1)-subset of every maximal simplex large enough to contain one,
// deduplicated by canonical key and sorted.
func facesAt(maximal []simplex.Simplex, p int) []simplex.Simplex {
	seen := make(map[string]struct{})
	var out []simplex.Simplex
	for _, s := range maximal {
		if s.Dim() < p {
			continue
		}
		for _, f := range s.Faces(p) {
			k := f.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return simplex.Compare(out[i], out[j]) < 0
	})
	return out
}

// Graph returns the underlying proximity graph.
func (c *Complex) Graph() *neighborhood.Graph { return c.graph }

// Radius returns the ball radius the complex was built with.
func (c *Complex) Radius() float64 { return c.radius }

// EdgeThreshold returns the derived edge rule threshold, 2·radius: two
// closed balls of the complex's radius intersect iff their centers are
// within this distance.
func (c *Complex) EdgeThreshold() float64 { return 2 * c.radius }

// Dim returns the complex dimension: one less than the size of the largest
// maximal simplex, or −1 for the empty complex.
func (c *Complex) Dim() int { return c.dim }

// MaximalSimplices returns the maximal simplices (maximal cliques of the
// proximity graph), sorted by size ascending then lexicographically.
func (c *Complex) MaximalSimplices() []simplex.Simplex {
	return append([]simplex.Simplex(nil), c.maximal...)
}

// Faces returns the p-dimensional faces of the complex. For p = 0 that is
// one singleton per point; for 0 < p <= Dim() the deduplicated
// (p+1)-subsets of the maximal simplices; for every other p a FaceSet with
// None set.
func (c *Complex) Faces(p int) FaceSet {
	if p < 0 || p > c.dim {
		return FaceSet{Dim: p, None: true}
	}
	fs := c.faces[p]
	return FaceSet{Dim: p, Faces: append([]simplex.Simplex(nil), fs...)}
}
