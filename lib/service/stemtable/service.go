package stemtable

import (
	"errors"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

var ErrNotFound = errors.New("not found in stem table")

type Server interface {
	Store(classes []tuple.StemClass) error
	WriteTsv(path string, pairs []*tuple.StemPair) error
	Lookup(word string) (*tuple.StemEntry, error)
	Class(no uint64) (tuple.StemClass, error)
	Items(fn func(entry *tuple.StemEntry) error) error
	Count() uint32
}

type Service struct {
	config *config.Config
	pogreb *pogreb.Pogreb
}

func Serve(
	config *config.Config,
	pogreb *pogreb.Pogreb,
) Server {
	return &Service{
		config: config,
		pogreb: pogreb,
	}
}
