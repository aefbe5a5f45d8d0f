package bubble

// Rand is a deterministic pseudo-random number generator (LCG) used for all
// engine randomness: bubble colors, shot kinds, row generation, obstacle
// placement. The same seed always yields the same round.
type Rand struct {
	state uint64
}

// NewRand creates a generator with the given seed.
func NewRand(seed int64) *Rand {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &Rand{state: s}
}

// Next generates the next random uint64.
func (r *Rand) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// State exposes the internal state for snapshotting.
func (r *Rand) State() uint64 {
	return r.state
}
