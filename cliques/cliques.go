package cliques

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tedea/neighborhood"
	"github.com/katalvlaran/tedea/simplex"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("cliques: graph is nil")

// Enumerate returns every maximal clique of g, each canonicalized as a
// simplex.Simplex, sorted by size ascending and then lexicographically.
// An empty graph has no cliques. Isolated vertices appear as singletons.
func Enumerate(g *neighborhood.Graph) ([]simplex.Simplex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, nil
	}

	// Materialize adjacency once; Bron–Kerbosch probes it heavily.
	adj := make(map[string]map[string]bool, len(ids))
	for _, u := range ids {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		row := make(map[string]bool, len(nbrs))
		for _, v := range nbrs {
			row[v] = true
		}
		adj[u] = row
	}

	e := &enumerator{adj: adj}
	e.expand(nil, ids, nil)

	sort.Slice(e.found, func(i, j int) bool {
		return simplex.Compare(e.found[i], e.found[j]) < 0
	})
	return e.found, nil
}

// enumerator carries the adjacency and the cliques found so far through the
// Bron–Kerbosch recursion.
type enumerator struct {
	adj   map[string]map[string]bool
	found []simplex.Simplex
}

// expand grows the current clique r. p holds candidate vertices adjacent to
// all of r; x holds vertices already covered by earlier branches. When both
// are exhausted, r is maximal.
func (e *enumerator) expand(r, p, x []string) {
	if len(p) == 0 && len(x) == 0 {
		e.found = append(e.found, simplex.New(r...))
		return
	}

	pivot := e.choosePivot(p, x)
	for i := 0; i < len(p); i++ {
		v := p[i]
		if e.adj[pivot][v] {
			continue // every clique through v is found via the pivot branch
		}
		var p2, x2 []string
		for _, u := range p {
			if e.adj[v][u] {
				p2 = append(p2, u)
			}
		}
		for _, u := range x {
			if e.adj[v][u] {
				x2 = append(x2, u)
			}
		}
		r2 := make([]string, len(r), len(r)+1)
		copy(r2, r)
		e.expand(append(r2, v), p2, x2)

		// move v from candidates to excluded
		p = append(p[:i], p[i+1:]...)
		i--
		x = append(x, v)
	}
}

// choosePivot picks the vertex of p ∪ x with the most neighbors in p,
// minimizing the branching of expand. Ties resolve to the earliest vertex,
// keeping the recursion deterministic.
func (e *enumerator) choosePivot(p, x []string) string {
	best, bestDeg := "", -1
	score := func(u string) {
		deg := 0
		for _, v := range p {
			if e.adj[u][v] {
				deg++
			}
		}
		if deg > bestDeg {
			best, bestDeg = u, deg
		}
	}
	for _, u := range p {
		score(u)
	}
	for _, u := range x {
		score(u)
	}
	return best
}
