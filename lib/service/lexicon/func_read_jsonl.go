package lexicon

import (
	"encoding/json"
	"fmt"
	"io"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

func readJsonl(reader io.Reader) ([]string, error) {
	words := make([]string, 0)

	// * read line by line
	scanner := newScanner(reader)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		word := new(tuple.Word)
		if err := json.Unmarshal(line, word); err != nil {
			return nil, fmt.Errorf("unmarshal line %d: %w", lineNo, err)
		}

		words = append(words, word.Word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
