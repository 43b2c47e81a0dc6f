package cartesian

import "errors"

// ErrNoLists indicates Product was called with zero input lists; there is
// no meaningful product of nothing, so the case is an explicit error rather
// than a silent empty result.
var ErrNoLists = errors.New("cartesian: no input lists")

// Size returns the number of combinations Product will emit for lists:
// the product of all list lengths (0 when any list is empty, 1 for k = 0).
//
// Complexity: O(k).
func Size(lists [][]int) int {
	size := 1
	for _, l := range lists {
		size *= len(l)
	}

	return size
}

// Product returns every combination of length k = len(lists) that picks
// exactly one element from each list, ordered with the first list outermost
// and the last list innermost.
//
// Contracts:
//   - len(lists) > 0, otherwise ErrNoLists.
//   - Any empty input list yields an empty, non-nil product.
//
// Complexity: O(k·Π len(lists)) time and space.
func Product(lists [][]int) ([][]int, error) {
	k := len(lists)
	if k == 0 {
		return nil, ErrNoLists
	}

	total := Size(lists)
	out := make([][]int, 0, total)
	if total == 0 {
		return out, nil
	}

	// Odometer over positions: cursor[j] indexes into lists[j]; the last
	// wheel turns fastest, matching lexicographic order.
	cursor := make([]int, k)
	for {
		combo := make([]int, k)
		for j := 0; j < k; j++ {
			combo[j] = lists[j][cursor[j]]
		}
		out = append(out, combo)

		j := k - 1
		for j >= 0 {
			cursor[j]++
			if cursor[j] < len(lists[j]) {
				break
			}
			cursor[j] = 0
			j--
		}
		if j < 0 {
			return out, nil
		}
	}
}
