// Package stability verifies core stability of a tiered coalition structure.
//
// 🚀 The decision problem
//
//	Agents 0..n-1 are partitioned into k ordered tiers; tier 0 is the most
//	favored position. win[i][j] is the utility agent i derives from being
//	co-present with agent j (possibly negative, possibly asymmetric). An
//	agent's status-quo utility is its summed win value against every agent
//	in its own tier and all tiers ranked ahead of it.
//
//	A coalition — one full "anchor" tier plus any subset of every other
//	tier — blocks the structure if repositioning earlier would strictly
//	improve every single member. Ties never block. Check searches all such
//	coalitions and all target positions; if none blocks, the structure is
//	core-stable.
//
// Entry points:
//
//	Check(tiers, win, opts...)        — full verdict with a Witness on block
//	IsCoreStable(tiers, win, opts...) — boolean convenience wrapper
//	Utilities(tiers, win)             — status-quo utility vector
//	StrongBlock(c, seen, win, u)      — the strict improvement predicate
//
// Determinism & cost:
//
//	Evaluation is single-threaded, synchronous and deterministic: repeated
//	calls on the same inputs return the same verdict and the same witness.
//	Nothing is shared between calls, so concurrent independent invocations
//	are safe. Worst-case cost is exponential — roughly k·2^(n−min tier
//	size) candidate evaluations; callers needing bounded latency must wrap
//	a call with their own deadline.
//
// An empty tier list is vacuously stable: with no tiers there is no
// position to deviate to, so Check returns a stable Result and no error.
package stability
