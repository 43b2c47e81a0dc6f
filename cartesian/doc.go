// Package cartesian enumerates combinations that pick exactly one element
// from each of k ordered lists.
//
// Product materializes the full Cartesian product in lexicographic order:
// the first list varies slowest (outermost), the last list fastest. The
// result is finite and restartable; its length is the product of the input
// list lengths, i.e. exponential in the number and size of the lists —
// callers own that cost.
//
// The implementation is an iterative odometer over list positions; it never
// recurses and needs no particular sequence abstraction beyond slices.
package cartesian
