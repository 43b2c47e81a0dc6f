package stability

// Utilities returns each agent's status-quo utility under the given tiers:
// for an agent in tier i, the sum of its win values against every agent in
// tiers 0..i. Tiers ranked behind an agent contribute nothing. The vector
// is freshly allocated on every call and indexed by agent.
//
// Contracts:
//   - tiers partition {0..len(win)-1}; win is square (see Check validation).
//
// Complexity: O(k·n·max tier size) time, O(n) space.
func Utilities(tiers [][]int, win [][]float64) []float64 {
	util := make([]float64, len(win))
	for i := range tiers {
		for _, a := range tiers[i] {
			u := 0.0
			for r := 0; r <= i; r++ {
				for _, b := range tiers[r] {
					u += win[a][b]
				}
			}
			util[a] = u
		}
	}

	return util
}
