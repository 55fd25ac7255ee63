package grass

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type edge struct {
	a      string
	b      string
	weight int
}

// BuildGraph links every within-class pair whose signature is alpha-frequent.
// Edge lists are computed per class in parallel and inserted in class order.
func BuildGraph(ctx context.Context, lexicon []string, classes [][]string, frequent FrequencyTable, workers int) (*Graph, error) {
	g := NewGraph(lexicon)
	edges := make([][]edge, len(classes))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(workers))
	for i, class := range classes {
		if len(class) < 2 {
			continue
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			edges[i] = classEdges(class, frequent)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, list := range edges {
		for _, e := range list {
			g.AddEdge(e.a, e.b, e.weight)
		}
	}

	return g, nil
}

func classEdges(class []string, frequent FrequencyTable) []edge {
	edges := make([]edge, 0)
	for j := 0; j < len(class); j++ {
		for k := j + 1; k < len(class); k++ {
			weight, ok := frequent[PairSignature(class[j], class[k])]
			if !ok {
				continue
			}
			edges = append(edges, edge{a: class[j], b: class[k], weight: weight})
		}
	}
	return edges
}
