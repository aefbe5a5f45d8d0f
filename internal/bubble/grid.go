package bubble

import "math"

// Playfield geometry constants, in pixels.
const (
	// Radius is the bubble radius; Diameter is the horizontal hex pitch.
	Radius   = 16.0
	Diameter = 2 * Radius

	// RowSpacing is the vertical distance between hex rows (sqrt(3)/2 * d).
	RowSpacing = Diameter * 0.8660254037844386

	// GridRows is the fixed logical row capacity. New rows enter at index 0
	// and the bottom row is discarded on descent, so the array never grows.
	GridRows = 18

	// Column count bounds derived from playfield width.
	MinCols = 8
	MaxCols = 12
)

// Grid owns the 2D array of optional bubbles in offset hex coordinates.
// Odd rows are shifted right by half a column width and have one fewer
// usable column than even rows.
type Grid struct {
	Cols int

	// Offset is the continuous descent offset subtracted from every derived
	// y-position. Invariant: 0 <= Offset < RowSpacing outside the instant of
	// row insertion.
	Offset float64

	cells [GridRows][]*Bubble
}

// NewGrid creates an empty grid sized for the given playfield width.
func NewGrid(fieldW float64) *Grid {
	cols := int(fieldW / Diameter)
	if cols < MinCols {
		cols = MinCols
	}
	if cols > MaxCols {
		cols = MaxCols
	}

	g := &Grid{Cols: cols}
	for r := range g.cells {
		g.cells[r] = make([]*Bubble, cols)
	}
	return g
}

// RowWidth returns the usable column count for the given row.
func (g *Grid) RowWidth(row int) int {
	if row%2 != 0 {
		return g.Cols - 1
	}
	return g.Cols
}

// InBounds reports whether (row, col) addresses a usable cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < GridRows && col >= 0 && col < g.RowWidth(row)
}

// At returns the bubble at (row, col), or nil if empty or out of bounds.
func (g *Grid) At(row, col int) *Bubble {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// ToXY returns the pixel-space center for a cell, incorporating the current
// descent offset. Exact inverse of FromXY modulo rounding.
func (g *Grid) ToXY(row, col int) (x, y float64) {
	x = float64(col)*Diameter + Radius
	if row%2 != 0 {
		x += Radius
	}
	y = float64(row)*RowSpacing + Radius + g.Offset
	return x, y
}

// FromXY returns the coarse grid cell for a pixel position. The result may
// be out of range; callers clamp or bounds-check as appropriate.
func (g *Grid) FromXY(x, y float64) (row, col int) {
	row = int(math.Round((y - Radius - g.Offset) / RowSpacing))
	shift := 0.0
	if row%2 != 0 {
		shift = Radius
	}
	col = int(math.Round((x - Radius - shift) / Diameter))
	return row, col
}

// Neighbors returns the up-to-6 in-bounds adjacent cells of (row, col).
// Vertical neighbors use a parity-dependent column delta: even rows reach
// columns c-1 and c above/below, odd rows reach c and c+1.
func (g *Grid) Neighbors(row, col int) [][2]int {
	lo := col - 1
	if row%2 != 0 {
		lo = col
	}

	candidates := [6][2]int{
		{row, col - 1},
		{row, col + 1},
		{row - 1, lo},
		{row - 1, lo + 1},
		{row + 1, lo},
		{row + 1, lo + 1},
	}

	out := make([][2]int, 0, 6)
	for _, rc := range candidates {
		if g.InBounds(rc[0], rc[1]) {
			out = append(out, rc)
		}
	}
	return out
}

// Occupy places a bubble into (row, col), clamping out-of-range coordinates
// to the nearest valid cell. Returns false without modification if the
// target cell is already occupied.
func (g *Grid) Occupy(b *Bubble, row, col int) bool {
	row = clampInt(row, 0, GridRows-1)
	col = clampInt(col, 0, g.RowWidth(row)-1)

	if g.cells[row][col] != nil {
		return false
	}

	g.cells[row][col] = b
	b.Row, b.Col = row, col
	b.Stationary = true
	b.X, b.Y = g.ToXY(row, col)
	return true
}

// Remove detaches and returns the bubble at (row, col), or nil.
func (g *Grid) Remove(row, col int) *Bubble {
	if !g.InBounds(row, col) {
		return nil
	}
	b := g.cells[row][col]
	g.cells[row][col] = nil
	return b
}

// Each calls fn for every grid-resident bubble, top row first.
func (g *Grid) Each(fn func(b *Bubble)) {
	for r := range g.cells {
		for c := 0; c < g.RowWidth(r); c++ {
			if b := g.cells[r][c]; b != nil {
				fn(b)
			}
		}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	g.Each(func(*Bubble) { n++ })
	return n
}

// CountColored returns the number of occupied cells holding a matchable
// (non-obstacle) color. Zero means the round is won.
func (g *Grid) CountColored() int {
	n := 0
	g.Each(func(b *Bubble) {
		if b.Color.Matchable() {
			n++
		}
	})
	return n
}

// Clear empties every cell and resets the descent offset.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = nil
		}
	}
	g.Offset = 0
}

// RefreshPositions recomputes the cached pixel position of every resident
// bubble from its cell and the current descent offset.
func (g *Grid) RefreshPositions() {
	g.Each(func(b *Bubble) {
		b.X, b.Y = g.ToXY(b.Row, b.Col)
	})
}

// ShiftDown inserts newRow at logical row 0, pushes every existing row down
// by one, and discards the bottom row. Bubbles whose column no longer fits
// the new row parity are discarded as well.
func (g *Grid) ShiftDown(newRow []*Bubble) {
	for r := GridRows - 1; r >= 1; r-- {
		g.cells[r] = g.cells[r-1]
		for c := range g.cells[r] {
			b := g.cells[r][c]
			if b == nil {
				continue
			}
			if c >= g.RowWidth(r) {
				g.cells[r][c] = nil
				continue
			}
			b.Row = r
		}
	}

	row := make([]*Bubble, g.Cols)
	copy(row, newRow)
	g.cells[0] = row
	for c := 0; c < g.RowWidth(0); c++ {
		if b := g.cells[0][c]; b != nil {
			b.Row, b.Col = 0, c
			b.Stationary = true
		}
	}

	g.RefreshPositions()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
