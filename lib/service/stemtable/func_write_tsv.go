package stemtable

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

// WriteTsv writes one "word\tstem" line per pair.
func (r *Service) WriteTsv(path string, pairs []*tuple.StemPair) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stem table %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	for _, pair := range pairs {
		if _, err := fmt.Fprintf(writer, "%s\t%s\n", pair.Word, pair.Stem); err != nil {
			_ = file.Close()
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// OutputName is the default stem table file name for a parameter set.
func OutputName(l int, alpha int, delta float64) string {
	return fmt.Sprintf("stem_%d_%d_%d.txt", l, alpha, int(math.Round(delta*10)))
}
