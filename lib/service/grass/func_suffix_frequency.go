package grass

import (
	"context"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
	"go.scnd.dev/open/syrup/grass/lib/util"
	"golang.org/x/sync/errgroup"
)

// FrequencyTable counts how many within-class word pairs produce each signature.
type FrequencyTable map[tuple.Signature]int

func (r FrequencyTable) Add(signature tuple.Signature, count int) {
	r[signature] += count
}

// Merge sums other into r. Merging is commutative and associative.
func (r FrequencyTable) Merge(other FrequencyTable) {
	for signature, count := range other {
		r[signature] += count
	}
}

// AlphaFrequent keeps the signatures seen at least alpha times.
func (r FrequencyTable) AlphaFrequent(alpha int) FrequencyTable {
	frequent := make(FrequencyTable)
	for signature, count := range r {
		if count >= alpha {
			frequent[signature] = count
		}
	}
	return frequent
}

// PairSignature is the canonical suffix pair of two words.
func PairSignature(a string, b string) tuple.Signature {
	sa, sb := util.SuffixPair(a, b)
	return tuple.NewSignature(sa, sb)
}

// CountClass folds every unordered pair of one prefix class into a partial table.
func CountClass(class []string) FrequencyTable {
	table := make(FrequencyTable)
	countClassInto(table, class)
	return table
}

func countClassInto(table FrequencyTable, class []string) {
	for j := 0; j < len(class); j++ {
		for k := j + 1; k < len(class); k++ {
			table.Add(PairSignature(class[j], class[k]), 1)
		}
	}
}

// SuffixFrequencies counts signatures over all classes, spreading classes across workers.
func SuffixFrequencies(ctx context.Context, classes [][]string, workers int) (FrequencyTable, error) {
	workers = min(workerLimit(workers), max(len(classes), 1))
	partials := make([]FrequencyTable, workers)

	group, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		group.Go(func() error {
			partial := make(FrequencyTable)
			for i := w; i < len(classes); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				countClassInto(partial, classes[i])
			}
			partials[w] = partial
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	table := make(FrequencyTable)
	for _, partial := range partials {
		table.Merge(partial)
	}

	return table, nil
}
