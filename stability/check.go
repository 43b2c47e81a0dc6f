package stability

import (
	"sort"

	"github.com/katalvlaran/tiercore/cartesian"
	"github.com/katalvlaran/tiercore/subset"
)

// IsCoreStable reports whether no coalition can strictly improve all of its
// members by repositioning earlier. Boolean convenience wrapper over Check.
func IsCoreStable(tiers [][]int, win [][]float64, opts ...Option) (bool, error) {
	res, err := Check(tiers, win, opts...)

	return res.Stable, err
}

// Check searches every candidate coalition and every target position for a
// strong block of the given tier structure.
//
// For each anchor tier i, a candidate coalition is tier i in full plus one
// subset of every other tier. Each candidate is tested at the front
// position (it sees only itself) and at every intermediate position
// (tiers fold into its seen set in rank order). Candidates whose seen set
// equals the status quo's visible set T[0..i] are skipped — staying put is
// not a deviation. The first block found wins; its Witness is returned and
// the search stops.
//
// Contracts:
//   - win is n×n; tiers partition {0..n-1} (validated unless
//     WithoutValidation).
//   - len(tiers) == 0 is vacuously stable, returned before validation.
//
// Errors: ErrNonSquare, ErrAgentIndex, ErrNotPartition from validation;
// subset.ErrSetTooLarge for tiers beyond addressable subset indices.
//
// Complexity: O(k·2^(n−min tier size)) candidate evaluations, each O(n·k);
// O(n + 2^max tier size) auxiliary space plus the materialized combination
// list per anchor.
func Check(tiers [][]int, win [][]float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	k := len(tiers)
	if k == 0 {
		// No tier exists to deviate to.
		return Result{Stable: true}, nil
	}
	if o.validate {
		if err := validateInputs(tiers, win); err != nil {
			return Result{}, err
		}
	}
	n := len(win)

	util := Utilities(tiers, win)

	// One admissible subset-index range [0, 2^|T[j]|) per tier.
	spans := make([][]int, k)
	for j, tier := range tiers {
		span, err := subset.Cardinality(len(tier))
		if err != nil {
			return Result{}, err
		}
		idx := make([]int, span)
		for x := range idx {
			idx[x] = x
		}
		spans[j] = idx
	}

	// The anchor tier joins in full; its subset choice is pinned to empty.
	pinned := []int{0}

	alreadySeen := make([]bool, n)
	alreadyCount := 0

	for i := 0; i < k; i++ {
		// T[0..i]: the agents currently visible to anyone anchored at tier i.
		for _, a := range tiers[i] {
			if !alreadySeen[a] {
				alreadySeen[a] = true
				alreadyCount++
			}
		}

		marks := make([][]int, k)
		for j := 0; j < k; j++ {
			if j == i {
				marks[j] = pinned
			} else {
				marks[j] = spans[j]
			}
		}
		combos, err := cartesian.Product(marks)
		if err != nil {
			return Result{}, err
		}

		for _, combo := range combos {
			c := make([]int, 0, n)
			c = append(c, tiers[i]...)
			for j := 0; j < k; j++ {
				sub, derr := subset.Decode(tiers[j], combo[j])
				if derr != nil {
					// Unreachable with internally generated indices; kept so
					// codec misuse surfaces as data, not a crash.
					if o.log != nil {
						o.log.Error("subset index rejected",
							"index", combo[j], "tier", j, "size", len(tiers[j]))
					}

					return Result{}, derr
				}
				c = append(c, sub...)
			}
			if len(c) == 0 {
				continue // empty anchor tier, nobody deviates
			}

			seen := make([]bool, n)
			seenList := make([]int, 0, n)
			for _, a := range c {
				if !seen[a] {
					seen[a] = true
					seenList = append(seenList, a)
				}
			}

			// Front move: the coalition relocates ahead of everything and
			// sees only itself.
			if !sameSet(seenList, alreadySeen, alreadyCount) &&
				StrongBlock(c, seenList, win, util) {
				return blocked(c, 0, o), nil
			}

			// Intermediate moves: fold tiers into the seen set in rank
			// order; every growth is a candidate position after tier j.
			for j := 0; j < k; j++ {
				changed := false
				for _, a := range tiers[j] {
					if !seen[a] {
						seen[a] = true
						seenList = append(seenList, a)
						changed = true
					}
				}
				if changed &&
					!sameSet(seenList, alreadySeen, alreadyCount) &&
					StrongBlock(c, seenList, win, util) {
					return blocked(c, j+1, o), nil
				}
			}
		}
	}

	return Result{Stable: true}, nil
}

// sameSet reports whether seenList and the membership set behind already
// contain exactly the same agents.
func sameSet(seenList []int, already []bool, alreadyCount int) bool {
	if len(seenList) != alreadyCount {
		return false
	}
	for _, a := range seenList {
		if !already[a] {
			return false
		}
	}

	return true
}

// blocked assembles the deterministic witness for coalition c targeting
// the given tier position and emits the diagnostic when a logger is wired.
func blocked(c []int, tier int, o Options) Result {
	w := &Witness{Coalition: append([]int(nil), c...), Tier: tier}
	sort.Ints(w.Coalition)
	if o.log != nil {
		o.log.Debug("blocking coalition found",
			"coalition", w.Coalition, "tier", w.Tier)
	}

	return Result{Stable: false, Witness: w}
}
