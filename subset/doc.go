// Package subset provides a bijective mapping between integer indices and
// subsets of an ordered agent set.
//
// For an ordered set of n elements, every index in [0, 2^n) selects exactly
// one subset: bit p of the index (least significant bit first) selects the
// p-th element. Every subset has exactly one index and vice versa.
//
//	Decode(set, index) — index → subset
//	Encode(set, sub)   — subset → index (inverse of Decode)
//	Bits(index, size)  — raw LSB-first bit expansion
//
// Indices outside [0, 2^size) are rejected with ErrIndexOutOfRange; callers
// receive an explicit error, never a panic. Sets larger than 62 elements are
// rejected with ErrSetTooLarge before any 1<<size arithmetic can overflow.
//
// Complexity: all operations are O(size) time, O(size) space.
package subset
