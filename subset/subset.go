package subset

// MaxSetSize is the largest ordered-set size the codec accepts. One more
// element and 1<<size no longer fits a positive int64.
const MaxSetSize = 62

// Bits returns the size-bit binary expansion of index, least significant
// bit first, zero-padded to exactly size entries.
//
// Contracts:
//   - 0 ≤ size ≤ MaxSetSize, otherwise ErrSetTooLarge.
//   - 0 ≤ index < 2^size, otherwise ErrIndexOutOfRange.
//
// Complexity: O(size) time, O(size) space.
func Bits(index, size int) ([]int, error) {
	if size < 0 || size > MaxSetSize {
		return nil, ErrSetTooLarge
	}
	if index < 0 || index >= 1<<uint(size) {
		return nil, ErrIndexOutOfRange
	}

	bits := make([]int, size)
	for p := 0; p < size; p++ {
		bits[p] = (index >> uint(p)) & 1
	}

	return bits, nil
}

// Decode returns the subset of set selected by index: bit p of index set
// means set[p] is included. The result preserves the order of set and is
// never nil on success (index 0 yields an empty, non-nil slice).
//
// Contracts:
//   - len(set) ≤ MaxSetSize, otherwise ErrSetTooLarge.
//   - 0 ≤ index < 2^len(set), otherwise ErrIndexOutOfRange.
//
// Complexity: O(len(set)) time, O(len(set)) space.
func Decode(set []int, index int) ([]int, error) {
	n := len(set)
	if n > MaxSetSize {
		return nil, ErrSetTooLarge
	}
	if index < 0 || index >= 1<<uint(n) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]int, 0, popcount(index))
	for p := 0; p < n; p++ {
		if index&(1<<uint(p)) != 0 {
			out = append(out, set[p])
		}
	}

	return out, nil
}

// Encode is the inverse of Decode: it returns the unique index whose bit
// pattern selects exactly the elements of sub within set. Elements of sub
// may appear in any order; repeated or foreign elements yield ErrNotSubset.
//
// Complexity: O(len(set)+len(sub)) time, O(len(set)) space.
func Encode(set, sub []int) (int, error) {
	n := len(set)
	if n > MaxSetSize {
		return 0, ErrSetTooLarge
	}

	// Position of each element within set; first occurrence wins.
	pos := make(map[int]int, n)
	for p := n - 1; p >= 0; p-- {
		pos[set[p]] = p
	}

	index := 0
	for _, e := range sub {
		p, ok := pos[e]
		if !ok {
			return 0, ErrNotSubset
		}
		bit := 1 << uint(p)
		if index&bit != 0 {
			return 0, ErrNotSubset // repeated element
		}
		index |= bit
	}

	return index, nil
}

// Cardinality returns 2^size, the number of subsets of a size-element set.
// It guards the shift so callers never overflow when sizing index ranges.
//
// Contracts:
//   - 0 ≤ size ≤ MaxSetSize, otherwise ErrSetTooLarge.
//
// Complexity: O(1).
func Cardinality(size int) (int, error) {
	if size < 0 || size > MaxSetSize {
		return 0, ErrSetTooLarge
	}

	return 1 << uint(size), nil
}

// popcount counts set bits; used only to presize Decode results.
func popcount(x int) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}

	return c
}
