package main

import (
	"context"
	"flag"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/fxo"
	"go.scnd.dev/open/syrup/grass/lib/service/evaluator"
	"go.scnd.dev/open/syrup/grass/lib/service/grass"
	"go.scnd.dev/open/syrup/grass/lib/service/lexicon"
	"go.uber.org/fx"
)

func main() {
	// * parse flags
	override := config.RegisterFlags(flag.CommandLine)
	limit := flag.Int("limit", 20, "number of disagreeing classes to print")
	flag.Parse()

	// * main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			lexicon.Serve,
			grass.Serve,
			evaluator.Serve,
		),
		fx.Decorate(
			override.Apply,
		),
		fx.Invoke(
			func(shutdowner fx.Shutdowner, lexicon lexicon.Server, grass grass.Server, evaluator evaluator.Server) {
				invoke(lexicon, grass, evaluator, *limit)
				_ = shutdowner.Shutdown()
			},
		),
	).Run()
}

func invoke(lexicon lexicon.Server, grass grass.Server, evaluator evaluator.Server, limit int) {
	// * read lexicon
	words, err := lexicon.Load()
	if err != nil {
		gut.Fatal("unable to read lexicon", err)
	}

	// * stem with both
	result, err := grass.Stem(context.Background(), words)
	if err != nil {
		gut.Fatal("unable to stem lexicon", err)
	}
	baseline, err := evaluator.Baseline(words)
	if err != nil {
		gut.Fatal("unable to stem baseline", err)
	}

	// * score
	report, err := evaluator.Compare(result.Classes)
	if err != nil {
		gut.Fatal("unable to compare", err)
	}

	OutputReport(report)
	OutputDisagreement(result.Classes, baseline, limit)
}
