package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/fxo"
	"go.scnd.dev/open/syrup/grass/lib/common/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/service/grass"
	"go.scnd.dev/open/syrup/grass/lib/service/lexicon"
	"go.scnd.dev/open/syrup/grass/lib/service/stemtable"
	"go.uber.org/fx"
)

func main() {
	// * parse flags
	override := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// * clear pogreb database
	if err := pogreb.Clear(config.Init()); err != nil {
		gut.Fatal("unable to clear pogreb", err)
	}

	// * main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			pogreb.Init,
			lexicon.Serve,
			grass.Serve,
			stemtable.Serve,
		),
		fx.Decorate(
			override.Apply,
		),
		fx.Invoke(
			invoke,
		),
	).Run()
}

func invoke(
	shutdowner fx.Shutdowner,
	config *config.Config,
	lexicon lexicon.Server,
	grass grass.Server,
	stemtable stemtable.Server,
) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	start := time.Now()

	// * read lexicon
	words, err := lexicon.Load()
	if err != nil {
		gut.Fatal("unable to read lexicon", err)
	}
	fmt.Printf("+ lexicon loaded (%d words)\n", len(words))

	// * run clustering
	result, err := grass.Stem(ctx, words)
	if err != nil {
		gut.Fatal("unable to stem lexicon", err)
	}
	PrintStat(result.Stat)

	// * write stem table
	output := OutputPath(config, grass, result.Stat.PrefixLength)
	if err := stemtable.WriteTsv(output, result.Pairs); err != nil {
		gut.Fatal("unable to write stem table", err)
	}
	fmt.Printf("+ stem table written to %s (%d pairs)\n", output, len(result.Pairs))

	// * persist classes
	if err := stemtable.Store(result.Classes); err != nil {
		gut.Fatal("unable to store stem table", err)
	}
	fmt.Printf("+ stem table stored (%d words)\n", stemtable.Count())

	fmt.Printf("+ done in %s\n", time.Since(start).Round(time.Millisecond))
	_ = shutdowner.Shutdown()
}
