package evaluator

import (
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

type Server interface {
	Baseline(words []string) ([]tuple.StemClass, error)
	Compare(classes []tuple.StemClass) (*tuple.Report, error)
}

type Service struct {
	language string
}

func Serve(
	config *config.Config,
) Server {
	return New(*config.BaselineLanguage)
}

func New(language string) Server {
	return &Service{
		language: language,
	}
}
