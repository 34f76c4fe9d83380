// Package sequence holds the source abstraction shared by the permutations
// and interleavings enumerators, along with the errors they both return.
//
// An enumerator needs nothing from its elements beyond positional access:
// no ordering, hashing or equality. Any type with a length and an indexer can
// be enumerated by implementing Sequence; plain slices are covered by Slice.
package sequence
