package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/alecthomas/unsafeslice"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
)

const (
	Murmur3 = iota
	Metro
)

var ErrUnknownHash = fmt.Errorf("cannot create a hasher of unknown hash type")

// Hasher fingerprints an enumeration result expressed as positions in its
// source(s). Equal vectors always get equal fingerprints.
type Hasher interface {
	Sum64(v []int) uint64
}

// New creates a hasher of type t keyed with seed
func New(t int, seed uint64) (Hasher, error) {
	switch t {
	case Murmur3:
		return murmur64{seed: seed}, nil
	case Metro:
		return metro{seed: seed}, nil
	default:
		return nil, ErrUnknownHash
	}
}

type murmur64 struct {
	seed uint64
}

func (m murmur64) Sum64(v []int) uint64 {
	return murmur3.SeedSum64(m.seed, Ints(v))
}

type metro struct {
	seed uint64
}

func (m metro) Sum64(v []int) uint64 {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], m.seed)

	h := metrohash.NewMetroHash64()
	h.Write(prefix[:])
	h.Write(Ints(v))
	return h.Sum64()
}

// Ints returns the bytes of an index vector as 64 bit words,
// without copying them a second time.
func Ints(v []int) []byte {
	var words = make([]uint64, len(v))
	for i, x := range v {
		words[i] = uint64(x)
	}
	return unsafeslice.ByteSliceFromUint64Slice(words)
}
