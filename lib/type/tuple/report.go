package tuple

type Report struct {
	Words           int     `json:"words"`
	GrassClasses    int     `json:"grassClasses"`
	BaselineClasses int     `json:"baselineClasses"`
	AgreedPairs     int     `json:"agreedPairs"`
	GrassPairs      int     `json:"grassPairs"`
	BaselinePairs   int     `json:"baselinePairs"`
	Precision       float64 `json:"precision"`
	Recall          float64 `json:"recall"`
	F1              float64 `json:"f1"`
}
