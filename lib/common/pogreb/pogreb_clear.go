package pogreb

import (
	"fmt"
	"os"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
)

// Clear removes both stores from disk, it must run before Open.
func Clear(config *config.Config) error {
	if err := os.RemoveAll(*config.PogrebStemMapper); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stem mapper pogreb: %w", err)
	}

	if err := os.RemoveAll(*config.PogrebClassMapper); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove class mapper pogreb: %w", err)
	}

	return nil
}
