package stability

// StrongBlock reports whether every member of coalition would strictly
// improve on its status-quo utility if its interactions were restricted to
// seen. A single member that merely matches its baseline vetoes the block;
// the scan short-circuits on the first veto. An empty coalition is
// vacuously true — callers decide whether that counts as a deviation.
//
// Complexity: O(len(coalition)·len(seen)) time, O(1) space.
func StrongBlock(coalition, seen []int, win [][]float64, utility []float64) bool {
	for _, a := range coalition {
		u := 0.0
		for _, b := range seen {
			u += win[a][b]
		}
		if u <= utility[a] {
			return false
		}
	}

	return true
}
