package grass

import (
	"fmt"
	"math"
	"runtime"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/type/enum"
)

type Parameters struct {
	// PrefixLength is the class threshold l, zero means the average word length of the lexicon.
	PrefixLength       int
	Alpha              int
	Delta              float64
	Exhaustion         enum.ExhaustionPolicy
	Workers            int
	EmitRepresentative bool
}

func DefaultParameters() *Parameters {
	return &Parameters{
		PrefixLength:       0,
		Alpha:              1,
		Delta:              0.8,
		Exhaustion:         enum.ExhaustionStrict,
		Workers:            0,
		EmitRepresentative: false,
	}
}

func ParametersFromConfig(grass *config.Grass) *Parameters {
	p := DefaultParameters()
	if grass == nil {
		return p
	}
	if grass.PrefixLength != nil {
		p.PrefixLength = *grass.PrefixLength
	}
	if grass.Alpha != nil {
		p.Alpha = *grass.Alpha
	}
	if grass.Delta != nil {
		p.Delta = *grass.Delta
	}
	if grass.Strict != nil {
		p.Exhaustion = enum.ExhaustionFromStrict(*grass.Strict)
	}
	if grass.Workers != nil {
		p.Workers = *grass.Workers
	}
	if grass.EmitRepresentative != nil {
		p.EmitRepresentative = *grass.EmitRepresentative
	}
	return p
}

func (r *Parameters) Validate() error {
	if r.PrefixLength < 0 {
		return fmt.Errorf("%w: prefix length must be >= 0, got %d", ErrConfiguration, r.PrefixLength)
	}
	if r.Alpha < 1 {
		return fmt.Errorf("%w: alpha must be >= 1, got %d", ErrConfiguration, r.Alpha)
	}
	if math.IsNaN(r.Delta) || r.Delta <= 0 || r.Delta > 1 {
		return fmt.Errorf("%w: delta must be in (0, 1], got %v", ErrConfiguration, r.Delta)
	}
	if r.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrConfiguration, r.Workers)
	}
	switch r.Exhaustion {
	case enum.ExhaustionStrict, enum.ExhaustionLenient:
	default:
		return fmt.Errorf("%w: unknown exhaustion policy %q", ErrConfiguration, r.Exhaustion)
	}
	return nil
}

func workerLimit(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
