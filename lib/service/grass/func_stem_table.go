package grass

import (
	"slices"
	"strings"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

// StemTable flattens stem classes into word/stem pairs sorted by word.
// A class representative only gets its own line when it is a singleton, unless
// emitRepresentative is set.
func StemTable(classes []tuple.StemClass, emitRepresentative bool) []*tuple.StemPair {
	pairs := make([]*tuple.StemPair, 0)
	for _, class := range classes {
		stem := class.Representative()
		if len(class) == 1 || emitRepresentative {
			pairs = append(pairs, &tuple.StemPair{Word: stem, Stem: stem})
		}
		for _, word := range class[1:] {
			pairs = append(pairs, &tuple.StemPair{Word: word, Stem: stem})
		}
	}

	slices.SortFunc(pairs, func(a, b *tuple.StemPair) int {
		return strings.Compare(a.Word, b.Word)
	})

	return pairs
}
