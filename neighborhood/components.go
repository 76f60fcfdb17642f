package neighborhood

import "sort"

// Components returns the connected components of the graph. Each component
// is a sorted slice of vertex names; components are ordered by their
// smallest vertex, so the result is fully deterministic.
//
// Time: O(V + E). Memory: O(V).
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.ids))
	var comps [][]string

	for _, start := range g.ids {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start
		queue := []string{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	return comps
}
