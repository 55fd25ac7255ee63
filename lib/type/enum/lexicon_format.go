package enum

import "fmt"

type LexiconFormat string

const (
	LexiconFormatTxt   LexiconFormat = "txt"
	LexiconFormatCsv   LexiconFormat = "csv"
	LexiconFormatJsonl LexiconFormat = "jsonl"
)

var LexiconFormats = map[LexiconFormat]struct{}{
	LexiconFormatTxt:   {},
	LexiconFormatCsv:   {},
	LexiconFormatJsonl: {},
}

func ParseLexiconFormat(value string) (LexiconFormat, error) {
	format := LexiconFormat(value)
	if _, ok := LexiconFormats[format]; !ok {
		return "", fmt.Errorf("unknown lexicon format %q", value)
	}
	return format, nil
}
