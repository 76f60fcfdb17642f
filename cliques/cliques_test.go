package cliques_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tedea/cliques"
	"github.com/katalvlaran/tedea/metric"
	"github.com/katalvlaran/tedea/neighborhood"
	"github.com/katalvlaran/tedea/simplex"
)

// buildGraph constructs a proximity graph, failing the test on error.
func buildGraph(t *testing.T, pts map[string][]float64, radius float64) *neighborhood.Graph {
	t.Helper()
	g, err := neighborhood.New(pts, radius, metric.Euclidean{})
	require.NoError(t, err)
	return g
}

// TestEnumerateNilGraph verifies the nil-graph sentinel.
func TestEnumerateNilGraph(t *testing.T) {
	if _, err := cliques.Enumerate(nil); !errors.Is(err, cliques.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestEnumerateEmptyGraph: no vertices, no cliques.
func TestEnumerateEmptyGraph(t *testing.T) {
	g := buildGraph(t, nil, 1)
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestIsolatedVertices become singleton maximal cliques.
func TestIsolatedVertices(t *testing.T) {
	g := buildGraph(t, map[string][]float64{
		"A": {0}, "B": {10}, "C": {20},
	}, 1)
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	want := []simplex.Simplex{{"A"}, {"B"}, {"C"}}
	require.Equal(t, want, out)
}

// TestSquareCycle: four boundary edges, no diagonals — the maximal cliques
// are exactly the four sides, sorted lexicographically.
func TestSquareCycle(t *testing.T) {
	g := buildGraph(t, map[string][]float64{
		"A": {0, 0}, "B": {1, 0}, "C": {0, 1}, "D": {1, 1},
	}, 0.5)
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	want := []simplex.Simplex{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	}
	require.Equal(t, want, out)
}

// TestCompleteGraph collapses to a single maximal clique on all vertices.
func TestCompleteGraph(t *testing.T) {
	g := buildGraph(t, map[string][]float64{
		"A": {0, 0}, "B": {1, 0}, "C": {0, 1}, "D": {1, 1},
	}, 0.71) // threshold 1.42 covers the √2 diagonal
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	require.Equal(t, []simplex.Simplex{{"A", "B", "C", "D"}}, out)
}

// TestMixedSizesOrdering: a triangle sharing a vertex with a pendant edge.
// Expected cliques: the edge {C,D} (size 2) before the triangle (size 3).
func TestMixedSizesOrdering(t *testing.T) {
	// A, B, C mutually close; D close only to C.
	g := buildGraph(t, map[string][]float64{
		"A": {0, 0}, "B": {1, 0}, "C": {0.5, 0.8}, "D": {0.5, 2.0},
	}, 0.65) // threshold 1.3: AB=1, AC≈0.94, BC≈0.94, CD=1.2, AD≈2.06, BD≈2.06
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	want := []simplex.Simplex{
		{"C", "D"},
		{"A", "B", "C"},
	}
	require.Equal(t, want, out)
}

// TestDeterminism: repeated enumeration yields the identical list.
func TestDeterminism(t *testing.T) {
	pts := map[string][]float64{
		"p0": {0, 0}, "p1": {1, 0}, "p2": {2, 0}, "p3": {0, 1},
		"p4": {1, 1}, "p5": {2, 1}, "p6": {0, 2}, "p7": {1, 2},
	}
	g := buildGraph(t, pts, 0.75)
	first, err := cliques.Enumerate(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := cliques.Enumerate(g)
		require.NoError(t, err)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

// TestMaximality: no returned clique is a subset of another.
func TestMaximality(t *testing.T) {
	pts := map[string][]float64{
		"A": {0, 0}, "B": {1, 0}, "C": {0.5, 0.8},
		"D": {2, 0}, "E": {2.5, 0.8},
	}
	g := buildGraph(t, pts, 0.65)
	out, err := cliques.Enumerate(g)
	require.NoError(t, err)
	for i, s := range out {
		for j, tt := range out {
			if i != j && s.SubsetOf(tt) {
				t.Errorf("clique %v is contained in %v", s, tt)
			}
		}
	}
}
