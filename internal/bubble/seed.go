package bubble

// seedRows is the base number of seeded rows per pattern; the full pattern
// and the double-layer flag add more.
const seedRows = 3

// seedGrid populates a cleared grid according to the level's starting
// pattern, then converts random seeded cells into gray obstacles.
func (r *Round) seedGrid() {
	g := r.grid
	n := r.level.PaletteSize()

	rows := seedRows
	if r.level.Pattern == PatternFull {
		rows = seedRows + 2
	}
	if r.level.DoubleLayer {
		rows *= 2
	}
	if rows > GridRows-6 {
		rows = GridRows - 6
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < g.RowWidth(row); col++ {
			var color BubbleColor
			switch r.level.Pattern {
			case PatternAlternating:
				color = BubbleColor((col/2 + row) % n)
			case PatternRandom:
				color = BubbleColor(r.rng.Intn(n))
			case PatternFull:
				color = BubbleColor(r.rng.Intn(MatchableColors))
			default: // simple
				color = BubbleColor((col + row) % n)
			}
			b := &Bubble{ID: r.takeID(), Color: color, Kind: KindNormal}
			g.Occupy(b, row, col)
		}
	}

	// Obstacles overwrite seeded cells; a few retries cover collisions with
	// previously placed grays.
	placed := 0
	for attempt := 0; attempt < r.level.Obstacles*4 && placed < r.level.Obstacles; attempt++ {
		row := r.rng.Intn(rows)
		col := r.rng.Intn(g.RowWidth(row))
		b := g.At(row, col)
		if b == nil || b.Color == Gray {
			continue
		}
		b.Color = Gray
		b.Kind = KindNormal
		placed++
	}
}

// spawnRow generates one fully populated top row for descent insertion.
// Each cell independently draws from the full palette with the level's
// random-color chance, otherwise from the restricted in-play palette.
func (r *Round) spawnRow() []*Bubble {
	g := r.grid
	row := make([]*Bubble, g.Cols)
	for c := 0; c < g.RowWidth(0); c++ {
		var color BubbleColor
		if r.rng.Chance(r.level.RandomChance) {
			color = BubbleColor(r.rng.Intn(MatchableColors))
		} else {
			color = BubbleColor(r.rng.Intn(r.level.PaletteSize()))
		}
		row[c] = &Bubble{ID: r.takeID(), Color: color, Kind: KindNormal, Stationary: true}
	}
	return row
}
