package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.scnd.dev/open/syrup/grass/lib/type/enum"
	"golang.org/x/text/unicode/norm"
)

// Load reads the lexicon named by the configuration.
func (r *Service) Load() ([]string, error) {
	if r.config.Lexicon == nil || *r.config.Lexicon == "" {
		return nil, fmt.Errorf("no lexicon file configured")
	}

	format, err := enum.ParseLexiconFormat(*r.config.LexiconFormat)
	if err != nil {
		return nil, err
	}

	return r.ReadFile(*r.config.Lexicon, format)
}

func (r *Service) ReadFile(path string, format enum.LexiconFormat) ([]string, error) {
	// * open the file
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer file.Close()

	words, err := r.Read(file, format)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	return words, nil
}

// Read parses a lexicon and returns its words normalised, sorted and deduplicated.
func (r *Service) Read(reader io.Reader, format enum.LexiconFormat) ([]string, error) {
	var words []string
	var err error

	switch format {
	case enum.LexiconFormatTxt:
		words, err = readTxt(reader)
	case enum.LexiconFormatCsv:
		words, err = readCsv(reader)
	case enum.LexiconFormatJsonl:
		words, err = readJsonl(reader)
	default:
		return nil, fmt.Errorf("unknown lexicon format %q", format)
	}
	if err != nil {
		return nil, err
	}

	return Normalize(words), nil
}

// Normalize trims and NFC-composes every word, drops empty ones, sorts and deduplicates.
func Normalize(words []string) []string {
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		word = norm.NFC.String(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		normalized = append(normalized, word)
	}

	slices.Sort(normalized)
	return slices.Compact(normalized)
}

func newScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)

	// * set buffer
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	return scanner
}
