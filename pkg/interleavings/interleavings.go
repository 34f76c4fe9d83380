package interleavings

import (
	"context"
	"fmt"
	"iter"
	"math/big"

	"github.com/go-logr/logr"
	"github.com/profolsen/collating/pkg/log"
	"github.com/profolsen/collating/pkg/sequence"
)

// The errors returned by this package are those of package sequence, so
// errors.Is matches them across both enumerators.
var (
	// ErrExhausted is sequence.ErrExhausted, returned by Next past the last result.
	ErrExhausted = sequence.ErrExhausted
	// ErrInvalidConstruction is sequence.ErrInvalidConstruction, returned by New for a nil source.
	ErrInvalidConstruction = sequence.ErrInvalidConstruction
)

// Interleavings enumerates the ways of merging two sequences, one at a time.
//
// digits holds one entry per element of the first sequence: digits[i] is the
// number of elements of the second sequence emitted right before one[i].
// Decoding walks the first sequence from its last element to its first, so
// in every result the elements of one appear in reverse order while those of
// two keep their original order.
//
// An Interleavings is not safe for concurrent use.
type Interleavings[V any] struct {
	one, two sequence.Sequence[V]
	// digits is nil until the first call to Next
	digits []int
	logger logr.Logger
}

// New returns an enumerator over the C(m+n, m) interleavings of one (length m)
// and two (length n). The logger, if any, is taken from ctx.
//
// Only nil interfaces are rejected with ErrInvalidConstruction. A nil
// sequence.Slice is an empty source, while a typed nil pointer implementing
// Sequence is accepted here and panics on the first call to Next.
func New[V any](ctx context.Context, one, two sequence.Sequence[V]) (*Interleavings[V], error) {
	logger := log.GetLoggerFromContextWithName(ctx, "interleavings").WithValues("enumerator", "interleavings")
	if one == nil {
		err := fmt.Errorf("interleavings: first source: %w", ErrInvalidConstruction)
		logger.Error(err, "invalid construction")
		return nil, err
	}
	if two == nil {
		err := fmt.Errorf("interleavings: second source: %w", ErrInvalidConstruction)
		logger.Error(err, "invalid construction")
		return nil, err
	}

	it := &Interleavings[V]{one: one, two: two, logger: logger}
	if v := logger.V(1); v.Enabled() {
		v.Info("created", "one", one.Len(), "two", two.Len(), "count", it.Count().String())
	}
	return it, nil
}

// FromSlices returns an enumerator over the interleavings of one and two.
func FromSlices[V any](one, two []V) *Interleavings[V] {
	it, _ := New[V](context.Background(), sequence.Slice[V](one), sequence.Slice[V](two))
	return it
}

// HasNext reports whether another interleaving is available.
func (it *Interleavings[V]) HasNext() bool {
	if it.digits == nil {
		return true
	}
	// an empty first sequence has a single interleaving: two itself
	if len(it.digits) == 0 {
		return false
	}
	return it.digits[len(it.digits)-1] < it.two.Len()
}

// Next returns the next interleaving as a freshly allocated slice.
// Once HasNext reports false, Next returns ErrExhausted.
func (it *Interleavings[V]) Next() ([]V, error) {
	if it.digits == nil {
		it.digits = make([]int, it.one.Len())
		it.logger.V(2).Info("digits initialized", "length", len(it.digits))
	} else {
		if !it.HasNext() {
			it.logger.V(1).Info("next called on an exhausted enumerator")
			return nil, ErrExhausted
		}
		it.increment()
	}
	return it.decode(), nil
}

// increment moves to the next composition: the lowest digit that still has
// room under n, once the digits above it are accounted for, is bumped and
// every digit below it is reset.
func (it *Interleavings[V]) increment() {
	n := it.two.Len()
	for i := range it.digits {
		if it.digits[i]+it.sumRight(i) < n {
			it.digits[i]++
			return
		}
		it.digits[i] = 0
	}
}

// sumRight returns the sum of the digits above index i.
func (it *Interleavings[V]) sumRight(i int) (sum int) {
	for _, d := range it.digits[i+1:] {
		sum += d
	}
	return
}

func (it *Interleavings[V]) decode() []V {
	var out = make([]V, 0, it.one.Len()+it.two.Len())
	var j int
	for i := len(it.digits) - 1; i >= 0; i-- {
		for k := 0; k < it.digits[i]; k++ {
			out = append(out, it.two.At(j))
			j++
		}
		out = append(out, it.one.At(i))
	}
	for ; j < it.two.Len(); j++ {
		out = append(out, it.two.At(j))
	}
	return out
}

// Count returns the total number of interleavings, C(m+n, m).
func (it *Interleavings[V]) Count() *big.Int {
	m, n := int64(it.one.Len()), int64(it.two.Len())
	return new(big.Int).Binomial(m+n, m)
}

// All returns an iterator over the interleavings not yet produced.
// Ranging over it advances it.
func (it *Interleavings[V]) All() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
