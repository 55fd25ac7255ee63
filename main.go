package main

import "C"
import (
	"errors"
	"sync"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/common/pogreb"
	"go.scnd.dev/open/syrup/grass/lib/service/lexicon"
	"go.scnd.dev/open/syrup/grass/lib/service/stemtable"
)

var (
	table     stemtable.Server
	tableOnce sync.Once
)

func main() {}

func open() stemtable.Server {
	tableOnce.Do(func() {
		cfg := config.Init()
		p, err := pogreb.Open(cfg)
		if err != nil {
			gut.Fatal("unable to open pogreb", err)
		}
		table = stemtable.Serve(cfg, p)
	})
	return table
}

// stem returns the stem of a word, unknown words are their own stem.
// The caller frees the returned string.
//
//export stem
func stem(word *C.char) *C.char {
	words := lexicon.Normalize([]string{C.GoString(word)})
	if len(words) == 0 {
		return C.CString("")
	}

	entry, err := open().Lookup(words[0])
	if errors.Is(err, stemtable.ErrNotFound) {
		return C.CString(words[0])
	}
	if err != nil {
		return C.CString("")
	}

	return C.CString(entry.Stem)
}
