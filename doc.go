// Package tiercore decides core stability of tiered coalition structures:
// given agents ranked into ordered tiers and a pairwise win matrix, it
// verifies whether any coalition could strictly improve every one of its
// members by repositioning to an earlier tier.
//
// 🚀 What is tiercore?
//
//	A small, deterministic library that brings together:
//		• subset/    — bijective index ↔ subset codec over ordered agent sets
//		• cartesian/ — one-pick-per-tier combination enumeration
//		• stability/ — utilities, strong-block test, full core-stability check
//
// ✨ Why choose tiercore?
//
//   - Exact answers – exhaustive search, never a heuristic verdict
//   - Structured witnesses – a blocking coalition and its target position,
//     not a log line
//   - Strict sentinels – every failure is a package-level error matched
//     with errors.Is
//   - Pure Go core – nothing outlives a single check call
//
// Quick example:
//
//	tiers := [][]int{{0, 1}, {2}, {3, 4}}
//	res, err := stability.Check(tiers, win)
//	if err != nil { ... }
//	if !res.Stable {
//	    fmt.Println("blocked by", res.Witness.Coalition)
//	}
//
// The search is exponential in tier sizes (roughly k·2^(n−min tier size)
// candidate coalitions); callers needing bounded latency must impose their
// own deadline around a call.
//
// See cmd/tiercore for a YAML-driven command-line verifier.
package tiercore
