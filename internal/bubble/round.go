package bubble

import (
	"context"

	"github.com/looplab/fsm"
)

// Round lifecycle states.
const (
	StatePlaying   = "playing"
	StateWon       = "won"
	StateResetting = "resetting"
)

// Engine tuning constants.
const (
	// maxTickSeconds clamps elapsed time per Advance so long host pauses
	// cannot tunnel the projectile through the grid or descend several rows
	// in one step.
	maxTickSeconds = 0.033

	matchMin = 3

	freezeDuration   = 5.0
	aimBoostDuration = 6.0
	freezeFactor     = 0.35

	matchPoints = 10
	dropPoints  = 5

	winBonusBase    = 500
	winBonusPerSec  = 5
	winBonusPerLife = 50

	// dangerMargin is the distance from the playfield bottom to the danger
	// line; a bubble whose bottom edge reaches it costs a life.
	dangerMargin = 80.0
)

// Round is the complete simulation for one playfield: grid, projectile,
// queue, power-ups, score, lives and the win/lose/timeout state machine.
// It is single-threaded: one Advance call runs one tick to completion.
type Round struct {
	grid   *Grid
	level  Level
	fieldW float64
	fieldH float64

	rng   *Rand
	state *fsm.FSM

	// now accumulates host-supplied elapsed time; the engine never reads a
	// wall clock, so tests drive time by choosing dt values.
	now        float64
	roundStart float64

	freezeUntil   float64
	aimBoostUntil float64

	score int
	combo int
	lives int

	queue  *Queue
	flight *Flight
	aim    float64

	descentScale float64
	nextID       int
	events       []Event
}

// NewRound builds a round for the given level and playfield size and seeds
// the initial grid.
func NewRound(level Level, fieldW, fieldH float64, seed int64, lives int) *Round {
	r := &Round{
		level:        level,
		fieldW:       fieldW,
		fieldH:       fieldH,
		rng:          NewRand(seed),
		lives:        lives,
		queue:        NewQueue(),
		descentScale: 1,
	}
	r.grid = NewGrid(fieldW)

	r.state = fsm.NewFSM(
		StatePlaying,
		fsm.Events{
			{Name: "win", Src: []string{StatePlaying}, Dst: StateWon},
			{Name: "drop", Src: []string{StatePlaying}, Dst: StateResetting},
			{Name: "relaunch", Src: []string{StateResetting}, Dst: StatePlaying},
			{Name: "next", Src: []string{StateWon}, Dst: StatePlaying},
		},
		fsm.Callbacks{
			"enter_" + StateResetting: func(_ context.Context, _ *fsm.Event) {
				r.reseed()
			},
		},
	)

	r.seedGrid()
	r.grid.RefreshPositions()
	r.queue.Fill(r.rollKind)
	return r
}

// Advance runs one simulation tick: descent, projectile physics, collision
// resolution, and the win/lose/timeout checks. The aim angle is sampled at
// tick start and held for the whole step. Returns the events raised since
// the previous Advance call.
func (r *Round) Advance(dt float64, aim float64) []Event {
	if r.state.Current() != StatePlaying {
		return r.drain()
	}

	if dt > maxTickSeconds {
		dt = maxTickSeconds
	}
	if dt < 0 {
		dt = 0
	}
	r.now += dt
	r.aim = aim

	r.advanceDescent(dt)

	if r.flight != nil {
		if contact := r.flight.Step(dt, r.fieldW, r.grid); contact != ContactNone {
			r.resolveContact()
		}
	}

	r.checkState()
	return r.drain()
}

// Shoot launches the queue head from the bottom-center launch point along
// the current aim angle. It is a no-op while a bubble is already airborne
// or the round is not playing.
func (r *Round) Shoot() bool {
	if r.flight != nil || r.state.Current() != StatePlaying {
		return false
	}

	r.queue.Fill(r.rollKind)
	kind := r.queue.Pop()
	color := BubbleColor(r.rng.Intn(r.level.PaletteSize()))

	b := &Bubble{
		ID:    r.takeID(),
		Row:   -1,
		Col:   -1,
		X:     r.fieldW / 2,
		Y:     r.fieldH - Radius,
		Color: color,
		Kind:  kind,
	}
	r.flight = NewFlight(b, r.aim)
	r.emit(ShotFired{Kind: kind, Color: color})
	return true
}

// NextLevel swaps in a new level after a win and resumes play.
func (r *Round) NextLevel(level Level) {
	if r.state.Current() != StateWon {
		return
	}
	r.level = level
	r.reseed()
	//nolint:errcheck // transition source is checked above
	r.state.Event(context.Background(), "next")
}

// advanceDescent applies continuous creep and splices in a new top row each
// time the offset crosses one row spacing.
func (r *Round) advanceDescent(dt float64) {
	rate := r.level.DescentRate * r.descentScale
	if r.now < r.freezeUntil {
		rate *= freezeFactor
	}

	g := r.grid
	g.Offset += rate * dt
	if g.Offset >= RowSpacing {
		g.Offset -= RowSpacing
		g.ShiftDown(r.spawnRow())
	}
	g.RefreshPositions()
}

// resolveContact snaps the in-flight bubble and dispatches its kind.
func (r *Round) resolveContact() {
	b := r.flight.Bubble
	r.flight = nil

	row, col, ok := r.grid.Snap(b, b.X, b.Y)
	if !ok {
		// Full neighborhood: the designed failure mode is a silent discard.
		return
	}

	switch b.Kind {
	case KindBomb:
		r.grid.Blast(row, col)
		if drops := r.grid.RemoveDisconnected(); drops > 0 {
			r.score += dropPoints * drops
		}

	case KindFreeze:
		r.grid.Remove(row, col)
		r.freezeUntil = r.now + freezeDuration

	case KindAim:
		r.grid.Remove(row, col)
		r.aimBoostUntil = r.now + aimBoostDuration

	default:
		// Normal and rainbow shots match on their own color slot; rainbow
		// status only widens what OTHER bubbles this one can link through.
		set := r.grid.FloodMatch(row, col, b.Color)
		if len(set) < matchMin {
			r.combo = 0
			return
		}
		for _, rc := range set {
			r.grid.Remove(rc[0], rc[1])
		}
		r.score += matchPoints * len(set)
		r.combo++
		if drops := r.grid.RemoveDisconnected(); drops > 0 {
			r.score += dropPoints * drops
			r.emit(ComboAchieved{Chain: r.combo, Dropped: drops})
		}
	}
}

// checkState evaluates the lose-by-height, win, and timeout transitions, in
// that order. Height loss precedes the win check so a round cannot win in
// the same tick it crosses the danger line.
func (r *Round) checkState() {
	danger := false
	limit := r.fieldH - dangerMargin
	r.grid.Each(func(b *Bubble) {
		if b.Y+Radius >= limit {
			danger = true
		}
	})
	if danger {
		r.loseLife()
		return
	}

	if r.grid.CountColored() == 0 {
		elapsed := int(r.now - r.roundStart)
		bonus := winBonusBase - winBonusPerSec*elapsed
		if bonus < 0 {
			bonus = 0
		}
		r.score += bonus + winBonusPerLife*r.lives
		r.emit(RoundWon{Score: r.score})
		//nolint:errcheck // playing is the only reachable source state here
		r.state.Event(context.Background(), "win")
		return
	}

	if r.level.TimeLimit > 0 && r.now-r.roundStart > r.level.TimeLimit {
		r.loseLife()
	}
}

// loseLife reduces lives and restarts the round with a fresh grid. Lives
// may reach zero; the engine keeps no game-over concept and leaves that
// composition to the host.
func (r *Round) loseLife() {
	r.lives--
	r.emit(LifeLost{Remaining: r.lives})
	ctx := context.Background()
	//nolint:errcheck // drop is always valid from playing
	r.state.Event(ctx, "drop")
	//nolint:errcheck // relaunch is always valid from resetting
	r.state.Event(ctx, "relaunch")
}

// reseed atomically replaces all mutable round state for a new attempt.
func (r *Round) reseed() {
	r.grid.Clear()
	r.seedGrid()
	r.grid.RefreshPositions()
	r.queue = NewQueue()
	r.queue.Fill(r.rollKind)
	r.flight = nil
	r.combo = 0
	r.freezeUntil = 0
	r.aimBoostUntil = 0
	r.roundStart = r.now
}

// rollKind draws the next queue entry. Rainbow appears only when the level
// enables it; the slot falls through to a normal bubble otherwise.
func (r *Round) rollKind() Kind {
	roll := r.rng.Intn(100)
	switch {
	case roll < 6:
		return KindBomb
	case roll < 10:
		return KindFreeze
	case roll < 13:
		return KindAim
	case roll < 18:
		if r.level.Rainbow {
			return KindRainbow
		}
		return KindNormal
	default:
		return KindNormal
	}
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

func (r *Round) drain() []Event {
	evs := r.events
	r.events = nil
	return evs
}

func (r *Round) takeID() int {
	id := r.nextID
	r.nextID++
	return id
}

// Query surface for the host and renderer.

// Grid returns the round's grid for read access.
func (r *Round) Grid() *Grid { return r.grid }

// Level returns the active level parameters.
func (r *Round) Level() Level { return r.level }

// InFlight returns the airborne bubble, or nil.
func (r *Round) InFlight() *Bubble {
	if r.flight == nil {
		return nil
	}
	return r.flight.Bubble
}

// Guide returns the current aim-guide polyline from the launch point.
func (r *Round) Guide() []GuidePoint {
	budget := GuideLength
	if r.level.ReducedGuide {
		budget = GuideLengthReduced
	}
	if r.now < r.aimBoostUntil {
		budget = GuideLengthBoosted
	}
	return GuidePath(r.fieldW/2, r.fieldH-Radius, r.aim, r.fieldW, budget)
}

// Score returns the accumulated round score.
func (r *Round) Score() int { return r.score }

// Combo returns the current combo chain length.
func (r *Round) Combo() int { return r.combo }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// State returns the lifecycle state name.
func (r *Round) State() string { return r.state.Current() }

// Aim returns the sampled aim angle in radians.
func (r *Round) Aim() float64 { return r.aim }

// Now returns accumulated simulation time in seconds.
func (r *Round) Now() float64 { return r.now }

// TimeLeft returns remaining seconds for timed levels, or -1.
func (r *Round) TimeLeft() float64 {
	if r.level.TimeLimit <= 0 {
		return -1
	}
	left := r.level.TimeLimit - (r.now - r.roundStart)
	if left < 0 {
		left = 0
	}
	return left
}

// FreezeActive reports whether the descent slowdown is in effect.
func (r *Round) FreezeActive() bool { return r.now < r.freezeUntil }

// AimBoostActive reports whether the extended guide is in effect.
func (r *Round) AimBoostActive() bool { return r.now < r.aimBoostUntil }

// Upcoming returns the queued shot kinds, head first.
func (r *Round) Upcoming() []Kind { return r.queue.Upcoming() }

// FieldWidth returns the playfield width in pixels.
func (r *Round) FieldWidth() float64 { return r.fieldW }

// FieldHeight returns the playfield height in pixels.
func (r *Round) FieldHeight() float64 { return r.fieldH }

// DangerY returns the danger line's y position in pixels.
func (r *Round) DangerY() float64 { return r.fieldH - dangerMargin }

// ScaleDescent multiplies the level descent rate; endless mode ramps this
// up after each cleared board.
func (r *Round) ScaleDescent(f float64) {
	if f > 0 {
		r.descentScale = f
	}
}
