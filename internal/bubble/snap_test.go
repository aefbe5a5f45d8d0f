package bubble

import "testing"

func TestSnapTakesExactCell(t *testing.T) {
	g := NewGrid(384)
	b := &Bubble{ID: 1, Color: Red}

	x, y := g.ToXY(3, 4)
	row, col, ok := g.Snap(b, x, y)
	if !ok {
		t.Fatal("snap into an empty grid failed")
	}
	if row != 3 || col != 4 {
		t.Errorf("snapped to (%d,%d), want (3,4)", row, col)
	}
	if g.At(3, 4) != b {
		t.Error("cell does not hold the snapped bubble")
	}
	if b.Row != 3 || b.Col != 4 {
		t.Errorf("bubble coords (%d,%d), want (3,4)", b.Row, b.Col)
	}
}

func TestSnapFallsBackInProbeOrder(t *testing.T) {
	g := NewGrid(384)
	placeBubble(t, g, 3, 4, Red, KindNormal)

	// Guess occupied: the first probe is the left neighbor.
	b := &Bubble{ID: 9, Color: Blue}
	x, y := g.ToXY(3, 4)
	row, col, ok := g.Snap(b, x, y)
	if !ok {
		t.Fatal("snap with one occupied candidate failed")
	}
	if row != 3 || col != 3 {
		t.Errorf("snapped to (%d,%d), want left fallback (3,3)", row, col)
	}
}

func TestSnapDiscardsWhenNeighborhoodFull(t *testing.T) {
	g := NewGrid(384)
	target := [2]int{3, 4}
	fill := [][2]int{
		{3, 4}, {3, 3}, {3, 5}, {2, 4}, {4, 4}, {2, 3}, {4, 5},
	}
	for _, rc := range fill {
		placeBubble(t, g, rc[0], rc[1], Red, KindNormal)
	}

	b := &Bubble{ID: 50, Color: Blue}
	x, y := g.ToXY(target[0], target[1])
	if _, _, ok := g.Snap(b, x, y); ok {
		t.Error("snap should report failure when every candidate is taken")
	}
	if g.Count() != len(fill) {
		t.Errorf("grid population changed on a discarded snap")
	}
}

func TestSnapClampsOutOfRangeGuess(t *testing.T) {
	g := NewGrid(384)
	b := &Bubble{ID: 2, Color: Green}

	// Far above the ceiling and past the right wall.
	row, col, ok := g.Snap(b, 10_000, -10_000)
	if !ok {
		t.Fatal("clamped snap failed on an empty grid")
	}
	if row != 0 || col != g.RowWidth(0)-1 {
		t.Errorf("snapped to (%d,%d), want top-right corner", row, col)
	}
}
