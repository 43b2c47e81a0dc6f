package stability

// validateInputs fails fast, before any search work, when the declared
// preconditions do not hold: win must be n×n, and tiers must contain every
// agent in [0, n) exactly once.
//
// Complexity: O(n²) time, O(n) space.
func validateInputs(tiers [][]int, win [][]float64) error {
	n := len(win)
	for i := range win {
		if len(win[i]) != n {
			return ErrNonSquare
		}
	}

	counted := make([]int, n)
	total := 0
	for _, tier := range tiers {
		for _, a := range tier {
			if a < 0 || a >= n {
				return ErrAgentIndex
			}
			counted[a]++
			total++
		}
	}
	if total != n {
		return ErrNotPartition
	}
	for _, c := range counted {
		if c != 1 {
			return ErrNotPartition
		}
	}

	return nil
}
