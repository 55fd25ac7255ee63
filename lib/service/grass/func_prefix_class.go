package grass

import "go.scnd.dev/open/syrup/grass/lib/util"

// PrefixClasses splits a sorted lexicon into maximal runs whose neighbours share at least l runes.
func PrefixClasses(lexicon []string, l int) [][]string {
	classes := make([][]string, 0)
	current := make([]string, 0)

	for i, word := range lexicon {
		next := ""
		if i < len(lexicon)-1 {
			next = lexicon[i+1]
		}

		current = append(current, word)
		if util.CommonPrefixLength(word, next) < l {
			classes = append(classes, current)
			current = make([]string, 0)
		}
	}

	// * the last word always closes its class for l >= 1, the open one is empty
	if len(current) > 0 {
		classes = append(classes, current)
	}

	return classes
}

// AverageLength is the integer mean rune length of the lexicon, never below 1.
func AverageLength(lexicon []string) int {
	if len(lexicon) == 0 {
		return 1
	}

	sum := 0
	for _, word := range lexicon {
		sum += util.RuneLength(word)
	}

	average := sum / len(lexicon)
	if average < 1 {
		return 1
	}
	return average
}
