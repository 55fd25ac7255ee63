package enum

// ExhaustionPolicy decides what happens when the similarity graph has no edges.
type ExhaustionPolicy string

const (
	// ExhaustionStrict reports the empty graph as an error.
	ExhaustionStrict ExhaustionPolicy = "strict"
	// ExhaustionLenient emits one singleton class per word.
	ExhaustionLenient ExhaustionPolicy = "lenient"
)

func ExhaustionFromStrict(strict bool) ExhaustionPolicy {
	if strict {
		return ExhaustionStrict
	}
	return ExhaustionLenient
}
