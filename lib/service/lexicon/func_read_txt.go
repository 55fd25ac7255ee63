package lexicon

import (
	"io"
	"strings"
)

// readTxt takes the first field of every line, lines starting with # are comments.
func readTxt(reader io.Reader) ([]string, error) {
	words := make([]string, 0)

	scanner := newScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		words = append(words, fields[0])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
