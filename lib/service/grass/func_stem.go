package grass

import (
	"context"
	"fmt"
	"slices"

	"go.scnd.dev/open/syrup/grass/lib/type/enum"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

// Stem runs the whole pipeline: prefix classes, suffix pair frequencies,
// similarity graph, cohesion partition and stem table.
func (r *Service) Stem(ctx context.Context, lexicon []string) (*tuple.Result, error) {
	p := r.parameters
	if err := p.Validate(); err != nil {
		return nil, err
	}

	// * vertex identity needs a sorted, duplicate free lexicon
	words := slices.Clone(lexicon)
	slices.Sort(words)
	words = slices.Compact(words)

	stat := new(tuple.Stat)
	result := &tuple.Result{
		Classes: make([]tuple.StemClass, 0),
		Pairs:   make([]*tuple.StemPair, 0),
		Stat:    stat,
	}
	if len(words) == 0 {
		return result, nil
	}

	l := p.PrefixLength
	if l == 0 {
		l = AverageLength(words)
	}
	stat.PrefixLength = l

	// * prefix classes
	classes := PrefixClasses(words, l)
	stat.PrefixClasses = len(classes)

	// * suffix pair frequencies
	table, err := SuffixFrequencies(ctx, classes, p.Workers)
	if err != nil {
		return nil, err
	}
	frequent := table.AlphaFrequent(p.Alpha)
	stat.Signatures = len(table)
	stat.FrequentSignatures = len(frequent)

	// * similarity graph
	graph, err := BuildGraph(ctx, words, classes, frequent, p.Workers)
	if err != nil {
		return nil, err
	}
	stat.Vertices = graph.VertexCount()
	stat.Edges = graph.EdgeCount()

	if graph.EdgeCount() == 0 && len(words) > 1 && p.Exhaustion == enum.ExhaustionStrict {
		return nil, fmt.Errorf("%w: %d words, %d prefix classes, %d of %d signatures with alpha %d, l %d",
			ErrNoSimilarity, len(words), len(classes), len(frequent), len(table), p.Alpha, l)
	}

	// * cohesion partition
	result.Classes, err = Partition(ctx, graph, p.Delta)
	if err != nil {
		return nil, err
	}
	stat.StemClasses = len(result.Classes)

	// * stem table
	result.Pairs = StemTable(result.Classes, p.EmitRepresentative)

	return result, nil
}
