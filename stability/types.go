package stability

import "errors"

var (
	// ErrNonSquare indicates the win matrix is not n×n.
	ErrNonSquare = errors.New("stability: win matrix is not square")
	// ErrAgentIndex indicates a tier references an agent outside [0, n).
	ErrAgentIndex = errors.New("stability: agent index out of range")
	// ErrNotPartition indicates the tiers do not partition {0..n-1} exactly.
	ErrNotPartition = errors.New("stability: tiers do not partition the agent set")
)

// Witness describes a blocking coalition found by Check.
type Witness struct {
	// Coalition holds the deviating agents in ascending order.
	Coalition []int

	// Tier is the position the coalition prefers: 0 means the very front,
	// j+1 means directly after current tier j. Tier may equal the tier
	// count (a fresh position behind the last tier).
	Tier int
}

// Result is the outcome of a core-stability check.
type Result struct {
	// Stable is true when no blocking coalition exists.
	Stable bool

	// Witness is the first blocking coalition discovered, in deterministic
	// search order; nil when Stable.
	Witness *Witness
}
