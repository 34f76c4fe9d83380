package sequence

import "errors"

var (
	// ErrExhausted is returned by an enumerator's Next once every result
	// has been produced.
	ErrExhausted = errors.New("no more results: enumeration exhausted")
	// ErrInvalidConstruction is returned when an enumerator is built
	// without one of its source sequences.
	ErrInvalidConstruction = errors.New("cannot create an enumerator from a nil sequence")
)

// Sequence is a read-only, finitely indexed ordered collection.
// Enumerators only ever read from a Sequence, so one may be shared
// between enumerators and goroutines.
type Sequence[V any] interface {
	Len() int
	At(i int) V
}

// Slice adapts a plain slice to a Sequence.
// A nil Slice is a valid empty sequence.
type Slice[V any] []V

func (s Slice[V]) Len() int {
	return len(s)
}

func (s Slice[V]) At(i int) V {
	return s[i]
}

// ToSlice copies the elements of s into a new slice.
func ToSlice[V any](s Sequence[V]) []V {
	var out = make([]V, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
