package pogreb

import (
	"context"

	"github.com/akrylysov/pogreb"
	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.uber.org/fx"
)

type Pogreb struct {
	StemMapper  *pogreb.DB
	ClassMapper *pogreb.DB
}

func Init(lifecycle fx.Lifecycle, config *config.Config) *Pogreb {
	p, err := Open(config)
	if err != nil {
		gut.Fatal("unable to open pogreb", err)
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context context.Context) error {
			return nil
		},
		OnStop: func(context context.Context) error {
			return p.Close()
		},
	})

	return p
}

func Open(config *config.Config) (*Pogreb, error) {
	p := new(Pogreb)
	options := &pogreb.Options{
		BackgroundSyncInterval:       0,
		BackgroundCompactionInterval: 0,
		FileSystem:                   FileSystemFor(*config.PogrebInMemory),
	}

	var err error
	p.StemMapper, err = pogreb.Open(*config.PogrebStemMapper, options)
	if err != nil {
		return nil, err
	}

	p.ClassMapper, err = pogreb.Open(*config.PogrebClassMapper, options)
	if err != nil {
		_ = p.StemMapper.Close()
		return nil, err
	}

	return p, nil
}

func (r *Pogreb) Close() error {
	stemErr := r.StemMapper.Close()
	classErr := r.ClassMapper.Close()
	if stemErr != nil {
		return stemErr
	}
	return classErr
}
