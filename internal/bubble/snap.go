package bubble

// snapProbes is the fixed candidate order tried around the coarse target
// cell: the guess itself, left/right, up/down, then the up-left/down-right
// diagonals.
var snapProbes = [7][2]int{
	{0, 0},
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
	{-1, -1},
	{1, 1},
}

// Snap places a contacting bubble into the first free candidate cell near
// its pixel position. The coarse guess is clamped into bounds first;
// out-of-bounds candidates are skipped. Returns the occupied cell, or
// ok=false when every candidate is taken, in which case the bubble is not
// placed and the caller discards it.
func (g *Grid) Snap(b *Bubble, x, y float64) (row, col int, ok bool) {
	gr, gc := g.FromXY(x, y)
	gr = clampInt(gr, 0, GridRows-1)
	gc = clampInt(gc, 0, g.RowWidth(gr)-1)

	for _, d := range snapProbes {
		r := gr + d[0]
		c := gc + d[1]
		if !g.InBounds(r, c) {
			continue
		}
		if g.cells[r][c] != nil {
			continue
		}
		if g.Occupy(b, r, c) {
			return r, c, true
		}
	}
	return 0, 0, false
}
