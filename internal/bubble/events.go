package bubble

// Event is a discrete lifecycle occurrence raised during Advance or Shoot
// and drained by the host on the next Advance call.
type Event interface {
	event()
}

// ShotFired is raised when a queued bubble launches.
type ShotFired struct {
	Kind  Kind
	Color BubbleColor
}

// ComboAchieved is raised when a match also knocks bubbles loose.
type ComboAchieved struct {
	Chain   int // consecutive combo count including this one
	Dropped int // bubbles removed by the disconnection pass
}

// LifeLost is raised when the grid crosses the danger line or the level
// timer runs out. Remaining zero means the host should end the session;
// the engine itself keeps playing with a fresh grid.
type LifeLost struct {
	Remaining int
}

// RoundWon is raised when no colored bubble remains. Score includes the
// time and lives bonuses. The round suspends until NextLevel is called.
type RoundWon struct {
	Score int
}

func (ShotFired) event()     {}
func (ComboAchieved) event() {}
func (LifeLost) event()      {}
func (RoundWon) event()      {}
