package simplex

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// keySep separates vertex names inside Key; it may not occur in names that
// are meant to round-trip through dedup maps.
const keySep = "\x1f"

// Simplex is a set of vertex names in canonical form: sorted ascending with
// no duplicates. The zero value (nil) is the empty simplex; the pipeline
// never produces it, but methods tolerate it.
type Simplex []string

// New builds a canonical Simplex from names: sorted, duplicates dropped.
func New(names ...string) Simplex {
	s := make(Simplex, len(names))
	copy(s, names)
	sort.Strings(s)
	out := s[:0]
	for i, n := range s {
		if i == 0 || n != s[i-1] {
			out = append(out, n)
		}
	}
	return out
}

// Dim returns the simplex dimension: one less than its vertex count.
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns a stable string key, suitable for deduplication maps.
func (s Simplex) Key() string { return strings.Join(s, keySep) }

// Contains reports whether name is a vertex of s.
func (s Simplex) Contains(name string) bool {
	i := sort.SearchStrings(s, name)
	return i < len(s) && s[i] == name
}

// SubsetOf reports whether every vertex of s is also a vertex of t.
// Both sides are sorted, so a single merge walk suffices.
func (s Simplex) SubsetOf(t Simplex) bool {
	if len(s) > len(t) {
		return false
	}
	j := 0
	for _, name := range s {
		for j < len(t) && t[j] < name {
			j++
		}
		if j == len(t) || t[j] != name {
			return false
		}
		j++
	}
	return true
}

// IsFacetOf reports whether s is a face of t with exactly one fewer vertex —
// the incidence relation recorded by boundary matrices.
func (s Simplex) IsFacetOf(t Simplex) bool {
	return len(s)+1 == len(t) && s.SubsetOf(t)
}

// Equal reports whether s and t contain the same vertices.
func (s Simplex) Equal(t Simplex) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Compare orders simplices by size ascending, then lexicographically by
// vertex names. Returns a negative value, zero, or a positive value.
func Compare(a, b Simplex) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Faces returns every p-dimensional face of s, i.e. every (p+1)-element
// subset, in lexicographic order. Nil when p is negative or exceeds s.Dim().
func (s Simplex) Faces(p int) []Simplex {
	k := p + 1
	if k < 1 || k > len(s) {
		return nil
	}
	combos := combin.Combinations(len(s), k)
	faces := make([]Simplex, 0, len(combos))
	for _, idx := range combos {
		f := make(Simplex, k)
		for i, j := range idx {
			f[i] = s[j]
		}
		faces = append(faces, f)
	}
	return faces
}
