package grass

import (
	"fmt"
	"slices"
)

// Graph is the mutable similarity graph. Vertices are identified by their insertion
// index, which is also the tie-break order of the partitioner.
type Graph struct {
	words     []string
	index     map[string]int
	adjacency []map[int]int
	alive     []bool
	vertices  int
	edges     int
}

// NewGraph creates one vertex per word. Words must be unique.
func NewGraph(words []string) *Graph {
	g := &Graph{
		words:     slices.Clone(words),
		index:     make(map[string]int, len(words)),
		adjacency: make([]map[int]int, len(words)),
		alive:     make([]bool, len(words)),
		vertices:  len(words),
		edges:     0,
	}

	for id, word := range words {
		if _, ok := g.index[word]; ok {
			panic(fmt.Sprintf("grass: duplicate vertex %q", word))
		}
		g.index[word] = id
		g.adjacency[id] = make(map[int]int)
		g.alive[id] = true
	}

	return g
}

func (r *Graph) VertexCount() int {
	return r.vertices
}

func (r *Graph) EdgeCount() int {
	return r.edges
}

func (r *Graph) HasVertex(word string) bool {
	id, ok := r.index[word]
	return ok && r.alive[id]
}

// AddEdge links a and b with weight. It reports false when the pair is already linked.
func (r *Graph) AddEdge(a string, b string, weight int) bool {
	u, v := r.id(a), r.id(b)
	if u == v {
		panic(fmt.Sprintf("grass: self loop on %q", a))
	}
	if _, ok := r.adjacency[u][v]; ok {
		return false
	}

	r.adjacency[u][v] = weight
	r.adjacency[v][u] = weight
	r.edges++
	return true
}

func (r *Graph) Weight(a string, b string) (int, bool) {
	weight, ok := r.adjacency[r.id(a)][r.id(b)]
	return weight, ok
}

func (r *Graph) Degree(word string) int {
	return len(r.adjacency[r.id(word)])
}

// Neighbors lists the current neighbours of word in vertex order.
func (r *Graph) Neighbors(word string) []string {
	ids := make([]int, 0, len(r.adjacency[r.id(word)]))
	for id := range r.adjacency[r.id(word)] {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	neighbors := make([]string, len(ids))
	for i, id := range ids {
		neighbors[i] = r.words[id]
	}
	return neighbors
}

func (r *Graph) id(word string) int {
	id, ok := r.index[word]
	if !ok || !r.alive[id] {
		panic(fmt.Sprintf("grass: unknown vertex %q", word))
	}
	return id
}

func (r *Graph) removeEdge(u int, v int) {
	if _, ok := r.adjacency[u][v]; !ok {
		return
	}
	delete(r.adjacency[u], v)
	delete(r.adjacency[v], u)
	r.edges--
}

// removeVertex drops u with its incident edges and returns the former neighbours.
func (r *Graph) removeVertex(u int) []int {
	if !r.alive[u] {
		return nil
	}

	neighbors := make([]int, 0, len(r.adjacency[u]))
	for v := range r.adjacency[u] {
		delete(r.adjacency[v], u)
		neighbors = append(neighbors, v)
	}
	r.edges -= len(neighbors)
	r.adjacency[u] = nil
	r.alive[u] = false
	r.vertices--

	return neighbors
}
