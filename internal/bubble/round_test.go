package bubble

import (
	"math"
	"testing"
)

func testLevel() Level {
	return Level{
		ID:      1,
		Name:    "test",
		Colors:  3,
		Pattern: PatternSimple,
	}
}

// newBareRound builds a round with zero descent and an empty grid so tests
// can stage exact scenarios.
func newBareRound(t *testing.T) *Round {
	t.Helper()
	r := NewRound(testLevel(), 384, 480, 42, 3)
	r.grid.Clear()
	r.score = 0
	return r
}

// land stages an in-flight bubble at the given pixel position and resolves
// its contact, as if the simulator had just detected the hit.
func land(r *Round, b *Bubble, x, y float64) {
	b.X, b.Y = x, y
	b.Row, b.Col = -1, -1
	r.flight = NewFlight(b, 0)
	r.resolveContact()
}

func TestMatchRowOfSix(t *testing.T) {
	r := newBareRound(t)
	g := r.grid
	for c := 0; c < 5; c++ {
		placeBubble(t, g, 0, c, Red, KindNormal)
	}

	x, y := g.ToXY(0, 5)
	land(r, &Bubble{ID: 99, Color: Red}, x, y)

	if g.Count() != 0 {
		t.Errorf("%d bubbles remain, want 0", g.Count())
	}
	if r.score != 60 {
		t.Errorf("score = %d, want 60", r.score)
	}
	if r.combo != 1 {
		t.Errorf("combo = %d, want 1", r.combo)
	}
}

func TestMatchBelowMinimumKeepsGrid(t *testing.T) {
	r := newBareRound(t)
	g := r.grid
	placeBubble(t, g, 0, 0, Red, KindNormal)
	r.combo = 4

	x, y := g.ToXY(0, 1)
	land(r, &Bubble{ID: 99, Color: Red}, x, y)

	if g.Count() != 2 {
		t.Errorf("%d bubbles on grid, want 2 (no removal below match minimum)", g.Count())
	}
	if r.score != 0 {
		t.Errorf("score = %d, want 0", r.score)
	}
	if r.combo != 0 {
		t.Error("failed match must reset the combo chain")
	}
}

func TestMatchDropScoringAndComboEvent(t *testing.T) {
	r := newBareRound(t)
	g := r.grid
	placeBubble(t, g, 0, 0, Red, KindNormal)
	placeBubble(t, g, 0, 1, Red, KindNormal)
	// Chain supported only by the red pair above.
	placeBubble(t, g, 1, 0, Blue, KindNormal)
	placeBubble(t, g, 2, 0, Blue, KindNormal)
	placeBubble(t, g, 2, 1, Blue, KindNormal)

	x, y := g.ToXY(0, 2)
	land(r, &Bubble{ID: 99, Color: Red, Kind: KindNormal}, x, y)

	// 3 matched reds (30) plus 3 dropped blues (15).
	if r.score != 45 {
		t.Errorf("score = %d, want 45", r.score)
	}
	if g.Count() != 0 {
		t.Errorf("%d bubbles remain, want 0", g.Count())
	}

	combos := 0
	for _, e := range r.drain() {
		if c, ok := e.(ComboAchieved); ok {
			combos++
			if c.Dropped != 3 {
				t.Errorf("combo event dropped = %d, want 3", c.Dropped)
			}
			if c.Chain != 1 {
				t.Errorf("combo chain = %d, want 1", c.Chain)
			}
		}
	}
	if combos != 1 {
		t.Errorf("raised %d combo events, want 1", combos)
	}
}

func TestBombClearsRadiusWithoutMatchScore(t *testing.T) {
	r := newBareRound(t)
	g := r.grid
	placeBubble(t, g, 0, 4, Blue, KindNormal) // keeps neighbors anchored pre-blast
	placeBubble(t, g, 1, 4, Green, KindNormal)
	placeBubble(t, g, 2, 3, Yellow, KindNormal)
	placeBubble(t, g, 2, 5, Red, KindNormal)

	x, y := g.ToXY(2, 4)
	land(r, &Bubble{ID: 99, Color: Purple, Kind: KindBomb}, x, y)

	if g.Count() != 0 {
		t.Errorf("%d bubbles remain after bomb, want 0", g.Count())
	}
	if r.score != 0 {
		t.Errorf("score = %d, want 0 (no credit for the blast itself)", r.score)
	}
}

func TestFreezeSlowsDescent(t *testing.T) {
	r := newBareRound(t)
	r.level.DescentRate = 10
	placeBubble(t, r.grid, 0, 0, Red, KindNormal)

	x, y := r.grid.ToXY(2, 4)
	land(r, &Bubble{ID: 99, Color: Red, Kind: KindFreeze}, x, y)

	if got := r.grid.At(2, 4); got != nil {
		t.Error("freeze bubble should remove itself after placement")
	}
	if !r.FreezeActive() {
		t.Fatal("freeze should be active after pickup")
	}

	before := r.grid.Offset
	r.Advance(0.02, 0)
	delta := r.grid.Offset - before
	want := 10 * freezeFactor * 0.02
	if math.Abs(delta-want) > 1e-9 {
		t.Errorf("frozen descent advanced %.5f px, want %.5f", delta, want)
	}

	// Past the expiry the full rate applies again.
	r.now = r.freezeUntil + 1
	before = r.grid.Offset
	r.Advance(0.02, 0)
	delta = r.grid.Offset - before
	if math.Abs(delta-10*0.02) > 1e-9 {
		t.Errorf("thawed descent advanced %.5f px, want %.5f", delta, 10*0.02)
	}
}

func TestAimBoostExtendsGuide(t *testing.T) {
	r := newBareRound(t)
	placeBubble(t, r.grid, 0, 0, Red, KindNormal)

	x, y := r.grid.ToXY(2, 4)
	land(r, &Bubble{ID: 99, Color: Red, Kind: KindAim}, x, y)

	if !r.AimBoostActive() {
		t.Fatal("aim boost should be active after pickup")
	}

	pts := r.Guide()
	total := 0.0
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	if math.Abs(total-GuideLengthBoosted) > 1.0 {
		t.Errorf("boosted guide length %.1f, want %.1f", total, GuideLengthBoosted)
	}
}

func TestShootWhileAirborneIsNoop(t *testing.T) {
	r := NewRound(testLevel(), 384, 480, 7, 3)

	if !r.Shoot() {
		t.Fatal("first shot should launch")
	}
	queued := r.Upcoming()

	if r.Shoot() {
		t.Error("second shot must be rejected while a bubble is airborne")
	}
	after := r.Upcoming()
	if len(after) != len(queued) {
		t.Fatalf("queue length changed from %d to %d", len(queued), len(after))
	}
	for i := range queued {
		if queued[i] != after[i] {
			t.Errorf("queue entry %d changed from %v to %v", i, queued[i], after[i])
		}
	}
}

func TestShotFlightSnapsAndMatches(t *testing.T) {
	r := NewRound(testLevel(), 384, 480, 7, 3)
	r.grid.Clear()
	r.score = 0
	// Two reds straight above the launch column, plus an anchored blue pair
	// far away so clearing the reds does not also win the round.
	placeBubble(t, r.grid, 0, 5, Red, KindNormal)
	placeBubble(t, r.grid, 1, 5, Red, KindNormal)
	placeBubble(t, r.grid, 0, 0, Blue, KindNormal)
	placeBubble(t, r.grid, 1, 0, Blue, KindNormal)

	r.Advance(0.016, 0)
	if !r.Shoot() {
		t.Fatal("shot rejected")
	}
	// Force a red projectile so the match is deterministic.
	r.flight.Bubble.Color = Red

	for i := 0; i < 200 && r.flight != nil; i++ {
		r.Advance(0.016, 0)
	}
	if r.flight != nil {
		t.Fatal("projectile never made contact")
	}
	if r.score != 30 {
		t.Errorf("score = %d, want 30 for a 3-match", r.score)
	}
}

func TestWinScoringAndSuspend(t *testing.T) {
	r := newBareRound(t)
	placeBubble(t, r.grid, 0, 0, Gray, KindNormal) // only obstacles remain

	events := r.Advance(0.016, 0)

	var won *RoundWon
	for _, e := range events {
		if w, ok := e.(RoundWon); ok {
			won = &w
		}
	}
	if won == nil {
		t.Fatal("expected a RoundWon event")
	}
	// 500 time bonus (elapsed < 1s) + 3 lives * 50.
	if won.Score != 650 {
		t.Errorf("win score = %d, want 650", won.Score)
	}
	if r.State() != StateWon {
		t.Errorf("state = %q, want %q", r.State(), StateWon)
	}

	// Ticking while won is inert.
	if evs := r.Advance(0.016, 0); len(evs) != 0 {
		t.Errorf("suspended round raised %d events", len(evs))
	}

	r.NextLevel(Levels[1])
	if r.State() != StatePlaying {
		t.Errorf("state after NextLevel = %q, want %q", r.State(), StatePlaying)
	}
	if r.grid.Count() == 0 {
		t.Error("next level should reseed the grid")
	}
}

func TestHeightLossResetsRound(t *testing.T) {
	r := newBareRound(t)
	placeBubble(t, r.grid, 14, 3, Red, KindNormal)

	events := r.Advance(0.016, 0)

	var lost *LifeLost
	for _, e := range events {
		if l, ok := e.(LifeLost); ok {
			lost = &l
		}
	}
	if lost == nil {
		t.Fatal("expected a LifeLost event")
	}
	if lost.Remaining != 2 {
		t.Errorf("remaining lives = %d, want 2", lost.Remaining)
	}
	if r.State() != StatePlaying {
		t.Errorf("state = %q, want %q after reset", r.State(), StatePlaying)
	}
	if r.grid.Count() == 0 {
		t.Error("grid should be reseeded after a height loss")
	}
}

func TestTimeoutCostsLife(t *testing.T) {
	r := newBareRound(t)
	r.level.TimeLimit = 1
	placeBubble(t, r.grid, 0, 0, Red, KindNormal)

	lostLives := 0
	for i := 0; i < 40; i++ {
		for _, e := range r.Advance(0.033, 0) {
			if _, ok := e.(LifeLost); ok {
				lostLives++
			}
		}
	}
	if lostLives != 1 {
		t.Errorf("lost %d lives in 1.3 simulated seconds, want exactly 1", lostLives)
	}
	if r.lives != 2 {
		t.Errorf("lives = %d, want 2", r.lives)
	}
}

func TestElapsedTimeClamp(t *testing.T) {
	r := newBareRound(t)
	placeBubble(t, r.grid, 0, 0, Red, KindNormal)

	r.Advance(5.0, 0) // a long host pause
	if r.now > maxTickSeconds+1e-9 {
		t.Errorf("tick consumed %.3fs, want at most %.3f", r.now, maxTickSeconds)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		r := NewRound(Levels[2], 384, 480, 12345, 3)
		for i := 0; i < 300; i++ {
			aim := math.Sin(float64(i)/10) * 0.8
			r.Advance(0.016, aim)
			if i%25 == 0 {
				r.Shoot()
			}
		}
		snap := r.Snapshot()
		return snap.Hash()
	}

	h1 := run()
	h2 := run()
	if h1 != h2 {
		t.Errorf("same seed and inputs diverged: %d != %d", h1, h2)
	}
}

func TestQueueRefill(t *testing.T) {
	q := NewQueue()
	q.Fill(func() Kind { return KindNormal })
	if q.Len() < 2 {
		t.Fatalf("queue length %d after fill, want >= 2", q.Len())
	}

	n := q.Len()
	q.Pop()
	if q.Len() != n-1 {
		t.Errorf("pop should shrink the queue by one")
	}

	for q.Len() >= 2 {
		q.Pop()
	}
	q.Fill(func() Kind { return KindBomb })
	if q.Len() < 2 {
		t.Errorf("refill left only %d entries", q.Len())
	}
}
