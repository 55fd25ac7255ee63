package lexicon

import (
	"encoding/csv"
	"errors"
	"io"
)

// csvHeaderLines is the dictionary export preamble: a title line and a column header.
const csvHeaderLines = 2

// readCsv takes the first column of every record after the preamble.
func readCsv(reader io.Reader) ([]string, error) {
	words := make([]string, 0)

	parser := csv.NewReader(reader)
	parser.FieldsPerRecord = -1
	parser.LazyQuotes = true
	parser.ReuseRecord = true

	for lineNo := 0; ; lineNo++ {
		record, err := parser.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if lineNo < csvHeaderLines || len(record) == 0 {
			continue
		}

		words = append(words, record[0])
	}

	return words, nil
}
