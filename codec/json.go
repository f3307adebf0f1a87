// Package codec streams tree entries as JSON lines.
package codec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ErrEntry marks a malformed line in an entry stream.
var ErrEntry = errors.New("bad entry")

// Entry is one key/value pair of a string-valued tree.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Mapper is the part of a tree EncodeEntries needs.
type Mapper interface {
	Map(fn func(key []byte, value string))
}

// EncodeEntries writes one JSON object per line in the tree's Map order
// and returns the number written.
func EncodeEntries(w io.Writer, m Mapper) (int, error) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	var (
		n   int
		err error
	)
	m.Map(func(key []byte, value string) {
		if err != nil {
			return
		}
		if err = enc.Encode(Entry{Key: string(key), Value: value}); err == nil {
			n++
		}
	})
	return n, errors.Wrapf(err, "encode entry %d", n+1)
}

// DecodeEntries reads entries from r until EOF and hands each to fn.
// Reading stops at the first error, from the stream or from fn.
func DecodeEntries(r io.Reader, fn func(Entry) error) (int, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	for n := 1; ; n++ {
		var e Entry
		err := dec.Decode(&e)
		if err == io.EOF {
			return n - 1, nil
		}
		if err != nil {
			return n - 1, errors.Wrapf(ErrEntry, "entry %d: %v", n, err)
		}
		if e.Key == "" {
			return n - 1, errors.Wrapf(ErrEntry, "entry %d: empty key", n)
		}
		if err := fn(e); err != nil {
			return n - 1, errors.Wrapf(err, "entry %d", n)
		}
	}
}
