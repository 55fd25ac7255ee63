package tuple

type Word struct {
	Word string `json:"word"`
}
