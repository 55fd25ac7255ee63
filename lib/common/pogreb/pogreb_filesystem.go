package pogreb

import (
	"github.com/akrylysov/pogreb/fs"
)

// FileSystemFor picks the backing store of the stem databases. The in-memory
// variant serves dry runs that must not touch the persisted table.
func FileSystemFor(inMemory bool) fs.FileSystem {
	if inMemory {
		return fs.Mem
	}
	return fs.OSMMap
}
