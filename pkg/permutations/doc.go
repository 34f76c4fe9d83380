// Package permutations enumerates every ordering of a sequence, lazily.
//
// The enumerator keeps a factoradic counter and decodes it on each call to
// Next, so memory stays O(n) no matter how many of the n! results are
// consumed. Results come out in lexicographic order of source positions:
//
//	p := permutations.FromSlice([]string{"A", "B", "C"})
//	for perm := range p.All() {
//	    // [A B C], [A C B], [B A C], [B C A], [C A B], [C B A]
//	}
//
// Positions, not values, make a permutation distinct: a source holding equal
// elements still yields n! results.
package permutations
