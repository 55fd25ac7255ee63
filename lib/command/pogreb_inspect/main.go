package main

import (
	"flag"
	"log"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/fxo"
	"go.scnd.dev/open/syrup/grass/lib/common/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/service/stemtable"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
	"go.uber.org/fx"
)

func main() { // * main fx application
	changed := flag.Bool("changed", false, "only print words whose stem differs from the word")
	flag.Parse()

	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			pogreb.Init,
			stemtable.Serve,
		),
		fx.Invoke(
			func(shutdowner fx.Shutdowner, table stemtable.Server) {
				invoke(table, *changed)
				_ = shutdowner.Shutdown()
			},
		),
	).Run()
}

func invoke(table stemtable.Server, changed bool) {
	err := table.Items(func(entry *tuple.StemEntry) error {
		if changed && entry.Word == entry.Stem {
			return nil
		}
		log.Printf("%s %s %s", gut.Base62(entry.ClassNo), entry.Word, entry.Stem)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%d words", table.Count())
}
