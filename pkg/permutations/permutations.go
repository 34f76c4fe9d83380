package permutations

import (
	"context"
	"fmt"
	"iter"
	"math/big"
	"slices"

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

// Permutations enumerates every ordering of a source sequence, one at a time.
//
// The state is a factoradic number held in digits: digit i ranges over 0..i.
// Each call to Next increments that number and decodes it into a permutation,
// so the n! results come out in increasing factoradic order without ever being
// stored.
//
// A Permutations is not safe for concurrent use.
type Permutations[V any] struct {
	source sequence.Sequence[V]
	// digits is nil until the first call to Next
	digits []int
	logger logr.Logger
}

// New returns an enumerator over all the permutations of source.
// The logger, if any, is taken from ctx.
//
// Only a nil interface is rejected with ErrInvalidConstruction. A nil
// sequence.Slice is an empty source, while a typed nil pointer implementing
// Sequence is accepted here and panics on the first call to Next.
func New[V any](ctx context.Context, source sequence.Sequence[V]) (*Permutations[V], error) {
	logger := log.GetLoggerFromContextWithName(ctx, "permutations").WithValues("enumerator", "permutations")
	if source == nil {
		err := fmt.Errorf("permutations: source: %w", ErrInvalidConstruction)
		logger.Error(err, "invalid construction")
		return nil, err
	}

	p := &Permutations[V]{source: source, logger: logger}
	if v := logger.V(1); v.Enabled() {
		v.Info("created", "length", source.Len(), "count", p.Count().String())
	}
	return p, nil
}

// FromSlice returns an enumerator over all the permutations of values.
func FromSlice[V any](values []V) *Permutations[V] {
	p, _ := New[V](context.Background(), sequence.Slice[V](values))
	return p
}

// HasNext reports whether another permutation is available.
// It runs in O(n) and does not change the enumerator's state.
func (p *Permutations[V]) HasNext() bool {
	if p.digits == nil {
		return true
	}
	// the last permutation is the one where every digit sits at its maximum
	for i, d := range p.digits {
		if d < i {
			return true
		}
	}
	return false
}

// Next returns the next permutation as a freshly allocated slice.
// Once HasNext reports false, Next returns ErrExhausted.
func (p *Permutations[V]) Next() ([]V, error) {
	if p.digits == nil {
		p.digits = make([]int, p.source.Len())
		p.logger.V(2).Info("digits initialized", "length", len(p.digits))
	} else {
		if !p.HasNext() {
			p.logger.V(1).Info("next called on an exhausted enumerator")
			return nil, ErrExhausted
		}
		p.increment()
	}
	return p.decode(), nil
}

// increment adds one to the factoradic number, carrying toward higher digits.
func (p *Permutations[V]) increment() {
	for i := range p.digits {
		p.digits[i]++
		if p.digits[i] <= i {
			return
		}
		p.digits[i] = 0
	}
}

// decode turns the digits into a permutation: walking from the highest digit
// down, digit k picks which of the not yet placed elements comes next.
func (p *Permutations[V]) decode() []V {
	var from = sequence.ToSlice(p.source)
	var out = make([]V, 0, len(p.digits))
	for k := len(p.digits) - 1; k >= 0; k-- {
		d := p.digits[k]
		out = append(out, from[d])
		from = slices.Delete(from, d, d+1)
	}
	return out
}

// Count returns the total number of permutations, n!.
func (p *Permutations[V]) Count() *big.Int {
	return new(big.Int).MulRange(1, int64(p.source.Len()))
}

// All returns an iterator over the permutations not yet produced.
// Ranging over it advances p.
func (p *Permutations[V]) All() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for p.HasNext() {
			perm, err := p.Next()
			if err != nil {
				return
			}
			if !yield(perm) {
				return
			}
		}
	}
}
