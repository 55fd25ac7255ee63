package evaluator

import (
	"fmt"
	"slices"

	"github.com/kljensen/snowball"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

// Baseline groups words by their snowball stem, classes are ordered by stem.
func (r *Service) Baseline(words []string) ([]tuple.StemClass, error) {
	stems, err := r.stems(words)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]tuple.StemClass)
	for _, word := range words {
		groups[stems[word]] = append(groups[stems[word]], word)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	classes := make([]tuple.StemClass, 0, len(keys))
	for _, key := range keys {
		classes = append(classes, groups[key])
	}

	return classes, nil
}

func (r *Service) stems(words []string) (map[string]string, error) {
	stems := make(map[string]string, len(words))
	for _, word := range words {
		if _, ok := stems[word]; ok {
			continue
		}

		stem, err := snowball.Stem(word, r.language, true)
		if err != nil {
			return nil, fmt.Errorf("snowball stem %q: %w", word, err)
		}
		stems[word] = stem
	}

	return stems, nil
}
