package grass

import (
	"context"
	"maps"
	"slices"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

type candidate struct {
	id     int
	weight int
}

// Cohesion scores candidate v against the pivot's neighbour set captured before the round:
// (1 + |N(u) ∩ N(v)|) / |N(v)|.
func Cohesion[K comparable, V any](pivot map[K]V, neighbors map[K]V) float64 {
	if len(neighbors) == 0 {
		return 0
	}

	small, large := pivot, neighbors
	if len(small) > len(large) {
		small, large = large, small
	}

	shared := 0
	for key := range small {
		if _, ok := large[key]; ok {
			shared++
		}
	}

	return float64(1+shared) / float64(len(neighbors))
}

// Partition extracts maximal-cohesion classes until the graph is empty.
// The graph is consumed.
func Partition(ctx context.Context, g *Graph, delta float64) ([]tuple.StemClass, error) {
	classes := make([]tuple.StemClass, 0)
	pivots := newPivotHeap(g)

	for g.vertices > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// * no edge left, every remaining word is its own stem
		if g.edges == 0 {
			for id, word := range g.words {
				if g.alive[id] {
					classes = append(classes, tuple.StemClass{word})
					g.removeVertex(id)
				}
			}
			break
		}

		u := pivots.pivot(g)
		if u < 0 {
			panic("grass: pivot heap exhausted with live vertices")
		}
		classes = append(classes, extractClass(g, pivots, u, delta))
	}

	return classes, nil
}

func extractClass(g *Graph, pivots *pivotHeap, u int, delta float64) tuple.StemClass {
	frozen := maps.Clone(g.adjacency[u])

	candidates := make([]candidate, 0, len(frozen))
	for v, weight := range frozen {
		candidates = append(candidates, candidate{id: v, weight: weight})
	}
	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.weight != b.weight {
			return b.weight - a.weight
		}
		return a.id - b.id
	})

	members := []int{u}
	for _, c := range candidates {
		if Cohesion(frozen, g.adjacency[c.id]) >= delta {
			members = append(members, c.id)
			continue
		}
		g.removeEdge(u, c.id)
		pivots.touch(g, c.id)
	}

	class := make(tuple.StemClass, len(members))
	for i, id := range members {
		class[i] = g.words[id]
	}

	for _, id := range members {
		for _, neighbor := range g.removeVertex(id) {
			pivots.touch(g, neighbor)
		}
	}

	return class
}
