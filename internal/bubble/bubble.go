// Package bubble provides the core game logic for the hexpop bubble shooter.
// This package is UI-agnostic and deterministic: all state advances through
// Round.Advance with host-supplied elapsed time, and all randomness flows
// through a seeded generator.
package bubble

// BubbleColor identifies one of the fixed palette colors.
// Gray is reserved for unbreakable obstacles and never matches anything.
type BubbleColor uint8

const (
	Red BubbleColor = iota
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	Pink
	Gray
)

// MatchableColors is the number of colors that can participate in matches.
const MatchableColors = 8

// String returns the color name.
func (c BubbleColor) String() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Pink:
		return "pink"
	case Gray:
		return "gray"
	default:
		return "unknown"
	}
}

// Matchable reports whether the color can be part of a flood match.
func (c BubbleColor) Matchable() bool {
	return c != Gray
}

// Kind determines what happens when a bubble snaps into the grid.
type Kind uint8

const (
	KindNormal Kind = iota
	KindRainbow
	KindBomb
	KindFreeze
	KindAim
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindRainbow:
		return "rainbow"
	case KindBomb:
		return "bomb"
	case KindFreeze:
		return "freeze"
	case KindAim:
		return "aim"
	default:
		return "unknown"
	}
}

// Bubble is a placed or in-flight game piece.
//
// While in flight Row and Col are -1 and X,Y are authoritative. Once
// grid-resident, X,Y are a cache derived from Row,Col and the current
// descent offset; Grid.RefreshPositions keeps the cache current.
type Bubble struct {
	ID         int
	Row, Col   int
	X, Y       float64
	Color      BubbleColor
	Kind       Kind
	Stationary bool
}
