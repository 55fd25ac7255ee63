package fxo

import (
	"time"

	"go.uber.org/fx"
)

// Option is shared by every command, stdout is kept free of the fx event log.
func Option() fx.Option {
	return fx.Options(
		fx.StopTimeout(24*60*60*time.Second),
		fx.NopLogger,
	)
}
