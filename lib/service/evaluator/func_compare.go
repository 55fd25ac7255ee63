package evaluator

import (
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

// Compare scores stem classes against the snowball grouping of their members.
// A pair of words counts when both sides put them in the same class.
func (r *Service) Compare(classes []tuple.StemClass) (*tuple.Report, error) {
	words := make([]string, 0)
	for _, class := range classes {
		words = append(words, class...)
	}

	stems, err := r.stems(words)
	if err != nil {
		return nil, err
	}

	report := &tuple.Report{
		Words:        len(words),
		GrassClasses: len(classes),
	}

	// * pairs agreed within each class
	baseline := make(map[string]int)
	for _, class := range classes {
		report.GrassPairs += pairs(len(class))

		local := make(map[string]int)
		for _, word := range class {
			local[stems[word]]++
			baseline[stems[word]]++
		}
		for _, count := range local {
			report.AgreedPairs += pairs(count)
		}
	}

	// * pairs of the baseline
	report.BaselineClasses = len(baseline)
	for _, count := range baseline {
		report.BaselinePairs += pairs(count)
	}

	report.Precision = ratio(report.AgreedPairs, report.GrassPairs)
	report.Recall = ratio(report.AgreedPairs, report.BaselinePairs)
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}

	return report, nil
}

func pairs(n int) int {
	return n * (n - 1) / 2
}

func ratio(a int, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
