package grass

import (
	"context"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

type Server interface {
	Parameters() *Parameters
	Stem(ctx context.Context, lexicon []string) (*tuple.Result, error)
}

type Service struct {
	parameters *Parameters
}

func Serve(
	config *config.Config,
) Server {
	return New(ParametersFromConfig(config.Grass))
}

func New(parameters *Parameters) Server {
	return &Service{
		parameters: parameters,
	}
}

func (r *Service) Parameters() *Parameters {
	return r.parameters
}
