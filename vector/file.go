package vector

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ezrec/alu8/internal"
)

// Open returns a source over a vector file. Files ending in '.star' are run
// as vector scripts, anything else is decoded as a JSON vector document.
// Each vector's Source is set to the path.
func Open(path string) iter.Seq2[Vector, error] {
	var vectors []Vector
	var err error

	if strings.EqualFold(filepath.Ext(path), ".star") {
		vectors, err = Script(path, nil)
	} else {
		var file *os.File
		file, err = os.Open(path)
		if err == nil {
			vectors, err = Decode(file)
			file.Close()
			if err != nil {
				err = ErrFile{Path: path, Err: err}
			}
		}
	}
	if err != nil {
		return Fail(err)
	}

	for n := range vectors {
		vectors[n].Source = path
	}

	return All(slices.Values(vectors))
}

// OpenAll concatenates the sources of several vector files. Each file is
// read when iteration reaches it.
func OpenAll(paths ...string) iter.Seq2[Vector, error] {
	sources := make([]iter.Seq2[Vector, error], 0, len(paths))
	for _, path := range paths {
		sources = append(sources, internal.IterSeq2Lazy(func() iter.Seq2[Vector, error] {
			return Open(path)
		}))
	}

	return Concat(sources...)
}
