package stemtable

import (
	"encoding/json"
	"errors"
	"fmt"

	pogreb2 "github.com/akrylysov/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
	"go.scnd.dev/open/syrup/grass/lib/util"
)

func (r *Service) Lookup(word string) (*tuple.StemEntry, error) {
	value, err := r.pogreb.StemMapper.Get([]byte(word))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("word %q: %w", word, ErrNotFound)
	}

	return entryOf([]byte(word), value)
}

func (r *Service) Class(no uint64) (tuple.StemClass, error) {
	value, err := r.pogreb.ClassMapper.Get(util.Uint64ToBytes(no))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("class %d: %w", no, ErrNotFound)
	}

	var class tuple.StemClass
	if err := json.Unmarshal(value, &class); err != nil {
		return nil, fmt.Errorf("unmarshal class %d: %w", no, err)
	}

	return class, nil
}

// Items walks the stem mapper in storage order until fn returns an error.
func (r *Service) Items(fn func(entry *tuple.StemEntry) error) error {
	it := r.pogreb.StemMapper.Items()
	for {
		key, value, err := it.Next()
		if errors.Is(err, pogreb2.ErrIterationDone) {
			return nil
		}
		if err != nil {
			return err
		}

		entry, err := entryOf(key, value)
		if err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
}

func entryOf(key []byte, value []byte) (*tuple.StemEntry, error) {
	no, stem, err := util.StemPayloadExtract(value)
	if err != nil {
		return nil, fmt.Errorf("word %q: %w", key, err)
	}

	return &tuple.StemEntry{
		Word:    string(key),
		Stem:    stem,
		ClassNo: no,
	}, nil
}
