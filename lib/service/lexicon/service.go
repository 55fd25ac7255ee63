package lexicon

import (
	"io"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/type/enum"
)

type Server interface {
	Load() ([]string, error)
	ReadFile(path string, format enum.LexiconFormat) ([]string, error)
	Read(reader io.Reader, format enum.LexiconFormat) ([]string, error)
}

type Service struct {
	config *config.Config
}

func Serve(
	config *config.Config,
) Server {
	return &Service{
		config: config,
	}
}
