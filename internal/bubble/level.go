package bubble

// Pattern selects the initial grid seeding scheme for a level.
type Pattern uint8

const (
	PatternSimple Pattern = iota
	PatternAlternating
	PatternRandom
	PatternFull
)

// String returns the pattern name used in level definitions.
func (p Pattern) String() string {
	switch p {
	case PatternSimple:
		return "simple"
	case PatternAlternating:
		return "alternating"
	case PatternRandom:
		return "random"
	case PatternFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParsePattern maps a pattern name to its value. Unknown names fall back to
// the simple pattern.
func ParsePattern(s string) Pattern {
	switch s {
	case "alternating":
		return PatternAlternating
	case "random":
		return PatternRandom
	case "full":
		return PatternFull
	default:
		return PatternSimple
	}
}

// Level holds the per-round parameters supplied by the level collaborator.
type Level struct {
	ID   int
	Name string

	Colors       int     // in-play palette size (clamped to 2..MatchableColors)
	Pattern      Pattern // starting pattern
	DoubleLayer  bool    // seed twice as many rows
	Obstacles    int     // unbreakable gray bubbles mixed into the seed
	DescentRate  float64 // downward creep in pixels per second
	RandomChance float64 // chance a new-row cell draws from the full palette
	TimeLimit    float64 // seconds; 0 means no limit
	Rainbow      bool    // rainbow power-up can appear in the queue
	ReducedGuide bool    // shorter aim guide unless boosted
}

// PaletteSize returns the usable color count, bounded to a sane range.
func (l Level) PaletteSize() int {
	n := l.Colors
	if n < 2 {
		n = 2
	}
	if n > MatchableColors {
		n = MatchableColors
	}
	return n
}

// Levels defines the built-in campaign, easiest first. Descent speeds up,
// palettes widen, and obstacles and time limits arrive in the later half.
var Levels = []Level{
	{ID: 1, Name: "First Pop", Colors: 3, Pattern: PatternSimple, DescentRate: 4, RandomChance: 0.05},
	{ID: 2, Name: "Two by Two", Colors: 3, Pattern: PatternAlternating, DescentRate: 5, RandomChance: 0.05},
	{ID: 3, Name: "Scatter Shot", Colors: 4, Pattern: PatternRandom, DescentRate: 6, RandomChance: 0.08, Rainbow: true},
	{ID: 4, Name: "Heavy Sky", Colors: 4, Pattern: PatternRandom, DoubleLayer: true, DescentRate: 6, RandomChance: 0.08, Rainbow: true},
	{ID: 5, Name: "Stonework", Colors: 5, Pattern: PatternAlternating, Obstacles: 2, DescentRate: 7, RandomChance: 0.10, Rainbow: true},
	{ID: 6, Name: "Against the Clock", Colors: 5, Pattern: PatternRandom, DescentRate: 7, RandomChance: 0.10, TimeLimit: 150, Rainbow: true},
	{ID: 7, Name: "Full House", Colors: 6, Pattern: PatternFull, DescentRate: 8, RandomChance: 0.12, Rainbow: true},
	{ID: 8, Name: "Narrow Sight", Colors: 6, Pattern: PatternRandom, DoubleLayer: true, Obstacles: 3, DescentRate: 9, RandomChance: 0.12, Rainbow: true, ReducedGuide: true},
	{ID: 9, Name: "Rockfall", Colors: 7, Pattern: PatternFull, Obstacles: 4, DescentRate: 10, RandomChance: 0.15, TimeLimit: 180, Rainbow: true, ReducedGuide: true},
	{ID: 10, Name: "Last Stand", Colors: 8, Pattern: PatternFull, DoubleLayer: true, Obstacles: 4, DescentRate: 12, RandomChance: 0.18, TimeLimit: 180, Rainbow: true, ReducedGuide: true},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based), or nil.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all campaign levels in order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
