package grass

import "errors"

var (
	// ErrConfiguration marks a parameter rejected before any clustering starts.
	ErrConfiguration = errors.New("invalid grass configuration")

	// ErrNoSimilarity means no alpha-frequent suffix pair links any two words,
	// so every stem class would be a singleton.
	ErrNoSimilarity = errors.New("similarity graph has no edges")
)
