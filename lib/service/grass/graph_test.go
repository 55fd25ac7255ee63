package grass

import (
	"context"
	"slices"
	"testing"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

func TestGraphEdges(t *testing.T) {
	g := NewGraph([]string{"leg", "legal", "legs"})

	if !g.AddEdge("leg", "legs", 3) {
		t.Fatal("AddEdge(leg, legs) = false, want true")
	}
	if g.AddEdge("legs", "leg", 5) {
		t.Error("AddEdge(legs, leg) duplicate = true, want false")
	}
	if weight, ok := g.Weight("legs", "leg"); !ok || weight != 3 {
		t.Errorf("Weight(legs, leg) = (%d, %v), want (3, true)", weight, ok)
	}
	if _, ok := g.Weight("leg", "legal"); ok {
		t.Error("Weight(leg, legal) ok = true, want false")
	}

	g.AddEdge("legal", "leg", 1)
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if got := g.Neighbors("leg"); !slices.Equal(got, []string{"legal", "legs"}) {
		t.Errorf("Neighbors(leg) = %q, want %q", got, []string{"legal", "legs"})
	}
	if g.Degree("legs") != 1 {
		t.Errorf("Degree(legs) = %d, want 1", g.Degree("legs"))
	}

	neighbors := g.removeVertex(g.index["leg"])
	if len(neighbors) != 2 {
		t.Errorf("removeVertex(leg) neighbours = %d, want 2", len(neighbors))
	}
	if g.EdgeCount() != 0 || g.VertexCount() != 2 || g.HasVertex("leg") {
		t.Errorf("after removeVertex: edges=%d vertices=%d hasLeg=%v, want 0 2 false",
			g.EdgeCount(), g.VertexCount(), g.HasVertex("leg"))
	}
}

func TestGraphPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"duplicate vertex", func() { NewGraph([]string{"leg", "leg"}) }},
		{"self loop", func() { NewGraph([]string{"leg"}).AddEdge("leg", "leg", 1) }},
		{"unknown vertex", func() { NewGraph([]string{"leg"}).AddEdge("leg", "legs", 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestBuildGraph(t *testing.T) {
	lexicon := []string{"bar", "farm", "farms", "leg", "legs"}
	classes := PrefixClasses(lexicon, 3)

	table, err := SuffixFrequencies(context.Background(), classes, 2)
	if err != nil {
		t.Fatal(err)
	}

	g, err := BuildGraph(context.Background(), lexicon, classes, table.AlphaFrequent(2), 2)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if g.VertexCount() != 5 || g.EdgeCount() != 2 {
		t.Fatalf("BuildGraph() = |V|=%d |E|=%d, want 5 2", g.VertexCount(), g.EdgeCount())
	}
	for _, pair := range [][2]string{{"farm", "farms"}, {"leg", "legs"}} {
		if weight, ok := g.Weight(pair[0], pair[1]); !ok || weight != 2 {
			t.Errorf("Weight(%s, %s) = (%d, %v), want (2, true)", pair[0], pair[1], weight, ok)
		}
	}

	g, err = BuildGraph(context.Background(), lexicon, classes, table.AlphaFrequent(3), 2)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("BuildGraph(alpha=3) |E| = %d, want 0", g.EdgeCount())
	}
}

func TestCohesion(t *testing.T) {
	tests := []struct {
		pivot     map[string]int
		neighbors map[string]int
		want      float64
	}{
		{map[string]int{"b": 1, "c": 1}, map[string]int{"u": 1}, 1},
		{map[string]int{"b": 1, "c": 1}, map[string]int{"u": 1, "b": 1}, 1},
		{map[string]int{"b": 1}, map[string]int{"u": 1, "x": 1}, 0.5},
		{map[string]int{"b": 1, "c": 1}, map[string]int{"u": 1, "x": 1, "y": 1, "z": 1}, 0.25},
		{map[string]int{"b": 1}, map[string]int{}, 0},
	}

	for _, tt := range tests {
		if got := Cohesion(tt.pivot, tt.neighbors); got != tt.want {
			t.Errorf("Cohesion(%v, %v) = %v, want %v", tt.pivot, tt.neighbors, got, tt.want)
		}
	}
}

func pathGraph() *Graph {
	g := NewGraph([]string{"a", "b", "c", "d"})
	g.AddEdge("a", "b", 2)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "d", 1)
	return g
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		graph func() *Graph
		delta float64
		want  []tuple.StemClass
	}{
		{
			name:  "rejected candidate stays for a later pivot",
			graph: pathGraph,
			delta: 0.8,
			want:  []tuple.StemClass{{"b", "a"}, {"c", "d"}},
		},
		{
			name:  "low delta absorbs and flushes leftover",
			graph: pathGraph,
			delta: 0.5,
			want:  []tuple.StemClass{{"b", "a", "c"}, {"d"}},
		},
		{
			name: "candidates ordered by weight",
			graph: func() *Graph {
				g := NewGraph([]string{"p", "x", "y"})
				g.AddEdge("p", "x", 1)
				g.AddEdge("p", "y", 3)
				return g
			},
			delta: 0.8,
			want:  []tuple.StemClass{{"p", "y", "x"}},
		},
		{
			name: "pivot tie resolved by vertex order",
			graph: func() *Graph {
				g := NewGraph([]string{"a", "b", "c", "d"})
				g.AddEdge("c", "d", 1)
				g.AddEdge("a", "b", 1)
				return g
			},
			delta: 0.8,
			want:  []tuple.StemClass{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "no edges",
			graph: func() *Graph {
				return NewGraph([]string{"cat", "dog"})
			},
			delta: 0.8,
			want:  []tuple.StemClass{{"cat"}, {"dog"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.graph()
			got, err := Partition(context.Background(), g, tt.delta)
			if err != nil {
				t.Fatalf("Partition() error = %v", err)
			}
			if !classesEqual(got, tt.want) {
				t.Errorf("Partition() = %q, want %q", got, tt.want)
			}
			if g.VertexCount() != 0 || g.EdgeCount() != 0 {
				t.Errorf("graph not exhausted: |V|=%d |E|=%d", g.VertexCount(), g.EdgeCount())
			}
		})
	}
}

func TestPartitionCoversVertexSet(t *testing.T) {
	lexicon := sortedSample()
	for _, delta := range []float64{0.1, 0.5, 0.8, 1} {
		classes := PrefixClasses(lexicon, 4)
		table, err := SuffixFrequencies(context.Background(), classes, 0)
		if err != nil {
			t.Fatal(err)
		}
		g, err := BuildGraph(context.Background(), lexicon, classes, table.AlphaFrequent(1), 0)
		if err != nil {
			t.Fatal(err)
		}

		stems, err := Partition(context.Background(), g, delta)
		if err != nil {
			t.Fatalf("Partition(delta=%v) error = %v", delta, err)
		}
		if len(stems) > len(lexicon) {
			t.Errorf("Partition(delta=%v) = %d classes, want <= %d", delta, len(stems), len(lexicon))
		}

		seen := make(map[string]int)
		for _, class := range stems {
			for _, word := range class {
				seen[word]++
			}
		}
		for _, word := range lexicon {
			if seen[word] != 1 {
				t.Errorf("Partition(delta=%v) word %q seen %d times, want 1", delta, word, seen[word])
			}
		}
		if len(seen) != len(lexicon) {
			t.Errorf("Partition(delta=%v) covers %d words, want %d", delta, len(seen), len(lexicon))
		}
	}
}

func TestPartitionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Partition(ctx, pathGraph(), 0.8); err != context.Canceled {
		t.Errorf("Partition(cancelled) error = %v, want %v", err, context.Canceled)
	}
}

func classesEqual(a []tuple.StemClass, b []tuple.StemClass) bool {
	return slices.EqualFunc(a, b, func(x, y tuple.StemClass) bool {
		return slices.Equal(x, y)
	})
}
