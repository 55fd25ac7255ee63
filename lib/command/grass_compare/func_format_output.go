package main

import (
	"fmt"
	"slices"
	"strings"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

func OutputReport(report *tuple.Report) {
	fmt.Printf("words            %d\n", report.Words)
	fmt.Printf("grass classes    %d (%d pairs)\n", report.GrassClasses, report.GrassPairs)
	fmt.Printf("baseline classes %d (%d pairs)\n", report.BaselineClasses, report.BaselinePairs)
	fmt.Printf("agreed pairs     %d\n", report.AgreedPairs)
	fmt.Printf("precision        %.4f\n", report.Precision)
	fmt.Printf("recall           %.4f\n", report.Recall)
	fmt.Printf("f1               %.4f\n", report.F1)
}

// OutputDisagreement prints the classes that do not appear unchanged on the other side.
func OutputDisagreement(classes []tuple.StemClass, baseline []tuple.StemClass, limit int) {
	grassOnly := Disagreement(classes, baseline)
	baselineOnly := Disagreement(baseline, classes)

	fmt.Printf("\n=== GRASS ONLY (%d) ===\n", len(grassOnly))
	outputClasses(grassOnly, limit)
	fmt.Printf("\n=== BASELINE ONLY (%d) ===\n", len(baselineOnly))
	outputClasses(baselineOnly, limit)
}

// Disagreement returns the non-singleton classes of a whose member set is not a class of b.
func Disagreement(a []tuple.StemClass, b []tuple.StemClass) []tuple.StemClass {
	known := make(map[string]struct{}, len(b))
	for _, class := range b {
		known[classKey(class)] = struct{}{}
	}

	result := make([]tuple.StemClass, 0)
	for _, class := range a {
		if len(class) < 2 {
			continue
		}
		if _, ok := known[classKey(class)]; !ok {
			result = append(result, class)
		}
	}

	return result
}

func classKey(class tuple.StemClass) string {
	members := slices.Clone([]string(class))
	slices.Sort(members)
	return strings.Join(members, "\x00")
}

func outputClasses(classes []tuple.StemClass, limit int) {
	for i, class := range classes {
		if i >= limit {
			fmt.Printf("  ... and %d more\n", len(classes)-limit)
			break
		}
		fmt.Printf("  %s\n", strings.Join(class, " "))
	}
}
