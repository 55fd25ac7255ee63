package tuple

// Signature is a canonical suffix pair, Left <= Right.
type Signature struct {
	Left  string
	Right string
}

func NewSignature(a string, b string) Signature {
	if a > b {
		a, b = b, a
	}
	return Signature{
		Left:  a,
		Right: b,
	}
}

// StemClass holds the representative first, followed by the members it absorbed.
type StemClass []string

func (r StemClass) Representative() string {
	return r[0]
}

type StemPair struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type Stat struct {
	PrefixLength       int `json:"prefixLength"`
	PrefixClasses      int `json:"prefixClasses"`
	Signatures         int `json:"signatures"`
	FrequentSignatures int `json:"frequentSignatures"`
	Vertices           int `json:"vertices"`
	Edges              int `json:"edges"`
	StemClasses        int `json:"stemClasses"`
}

type Result struct {
	Classes []StemClass `json:"classes"`
	Pairs   []*StemPair `json:"pairs"`
	Stat    *Stat       `json:"stat"`
}

// StemEntry is a persisted word with the stem class it belongs to.
type StemEntry struct {
	Word    string `json:"word"`
	Stem    string `json:"stem"`
	ClassNo uint64 `json:"classNo"`
}
