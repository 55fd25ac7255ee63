package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/fxo"
	"go.scnd.dev/open/syrup/grass/lib/common/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/service/lexicon"
	"go.scnd.dev/open/syrup/grass/lib/service/stemtable"
	"go.uber.org/fx"
)

func main() {
	// parse word flag
	text := flag.String("word", "", "Words to look up, separated by spaces")
	class := flag.Bool("class", false, "Print the whole stem class of each word")
	flag.Parse()

	if *text == "" {
		gut.Fatal("Word is required. Use -word flag.", fmt.Errorf("missing word"))
	}

	// main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			pogreb.Init,
			stemtable.Serve,
		),
		fx.Invoke(
			func(shutdowner fx.Shutdowner, table stemtable.Server) {
				invoke(shutdowner, table, *text, *class)
			},
		),
	).Run()
}

func invoke(shutdowner fx.Shutdowner, table stemtable.Server, text string, class bool) {
	// words are stored normalised
	words := lexicon.Normalize(strings.Fields(text))

	for _, word := range words {
		entry, err := table.Lookup(word)
		if errors.Is(err, stemtable.ErrNotFound) {
			fmt.Printf("%s\t%s\t-\n", word, word)
			continue
		}
		if err != nil {
			gut.Fatal("Error looking up word: ", err)
		}

		fmt.Printf("%s\t%s\t%d\n", entry.Word, entry.Stem, entry.ClassNo)
		if !class {
			continue
		}

		members, err := table.Class(entry.ClassNo)
		if err != nil {
			gut.Fatal("Error reading class: ", err)
		}
		fmt.Printf("\t[%s]\n", strings.Join(members, " "))
	}

	_ = shutdowner.Shutdown()
}
