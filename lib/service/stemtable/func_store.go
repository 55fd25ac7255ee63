package stemtable

import (
	"encoding/json"
	"fmt"

	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
	"go.scnd.dev/open/syrup/grass/lib/util"
)

// Store persists every class under a 1-based class number and maps each member to its representative.
func (r *Service) Store(classes []tuple.StemClass) error {
	for i, class := range classes {
		no := uint64(i + 1)

		// * store class
		value, err := json.Marshal(class)
		if err != nil {
			return fmt.Errorf("marshal class %d: %w", no, err)
		}
		if err := r.pogreb.ClassMapper.Put(util.Uint64ToBytes(no), value); err != nil {
			return fmt.Errorf("put class %d: %w", no, err)
		}

		// * store members
		payload := util.StemPayloadBuild(no, class.Representative())
		for _, word := range class {
			if err := r.pogreb.StemMapper.Put([]byte(word), payload); err != nil {
				return fmt.Errorf("put word %q: %w", word, err)
			}
		}
	}

	if err := r.pogreb.StemMapper.Sync(); err != nil {
		return err
	}
	return r.pogreb.ClassMapper.Sync()
}

func (r *Service) Count() uint32 {
	return r.pogreb.StemMapper.Count()
}
