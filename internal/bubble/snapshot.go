package bubble

// Snapshot captures the complete round state using primitive types only,
// for determinism testing. Continuous quantities are quantized to
// milliunits so equal simulations hash identically.
type Snapshot struct {
	NowMilli    int64
	OffsetMilli int64

	Score int
	Combo int
	Lives int
	State string

	FreezeMilli   int64
	AimBoostMilli int64

	// Grid cells flattened row-major; each occupied cell contributes
	// (row, col, color, kind), empty cells are omitted.
	CellData []int

	QueueKinds []int

	// Flight is 5 ints (x, y, dirX, dirY milli, color<<8|kind) or empty.
	FlightData []int64

	RNGState uint64
}

// Snapshot returns the current state of the round.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		NowMilli:      int64(r.now * 1000),
		OffsetMilli:   int64(r.grid.Offset * 1000),
		Score:         r.score,
		Combo:         r.combo,
		Lives:         r.lives,
		State:         r.state.Current(),
		FreezeMilli:   int64(r.freezeUntil * 1000),
		AimBoostMilli: int64(r.aimBoostUntil * 1000),
		RNGState:      r.rng.State(),
	}

	r.grid.Each(func(b *Bubble) {
		snap.CellData = append(snap.CellData, b.Row, b.Col, int(b.Color), int(b.Kind))
	})

	for _, k := range r.queue.Upcoming() {
		snap.QueueKinds = append(snap.QueueKinds, int(k))
	}

	if r.flight != nil {
		b := r.flight.Bubble
		snap.FlightData = []int64{
			int64(b.X * 1000),
			int64(b.Y * 1000),
			int64(r.flight.DirX * 1000),
			int64(r.flight.DirY * 1000),
			int64(b.Color)<<8 | int64(b.Kind),
		}
	}

	return snap
}

// Hash folds the snapshot into a single value for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.NowMilli)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.OffsetMilli) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	h = h*31 + uint64(snap.FreezeMilli)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AimBoostMilli) //#nosec G115 -- hash computation

	for _, v := range snap.CellData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.QueueKinds {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.FlightData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
