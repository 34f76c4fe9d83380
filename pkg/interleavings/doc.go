// Package interleavings enumerates the ways of merging two sequences.
//
// Given sequences one (length m) and two (length n), an Interleavings
// produces C(m+n, m) results of length m+n, lazily, one per call to Next.
// Within every result the elements taken from two keep their original order
// while the elements taken from one appear in reverse:
//
//	it := interleavings.FromSlices([]string{"X", "Y"}, []string{"1", "2"})
//	for it.HasNext() {
//	    v, _ := it.Next() // [Y X 1 2], [Y 1 X 2], ..., [1 2 Y X]
//	}
//
// Callers wanting both orders preserved reverse one before constructing the
// enumerator.
//
// The state between calls is a composition of at most n into m digits, and
// advancing it costs O(m). Elements are never compared, so equal elements
// produce equal results rather than being collapsed.
package interleavings
