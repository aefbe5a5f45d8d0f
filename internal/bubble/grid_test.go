package bubble

import (
	"math"
	"testing"
)

func TestRowWidthParity(t *testing.T) {
	g := NewGrid(384)
	if g.Cols != 12 {
		t.Fatalf("expected 12 columns for width 384, got %d", g.Cols)
	}
	if g.RowWidth(0) != 12 {
		t.Errorf("even row width = %d, want 12", g.RowWidth(0))
	}
	if g.RowWidth(1) != 11 {
		t.Errorf("odd row width = %d, want 11", g.RowWidth(1))
	}
}

func TestGridColumnBounds(t *testing.T) {
	if g := NewGrid(100); g.Cols != MinCols {
		t.Errorf("narrow field should clamp to %d cols, got %d", MinCols, g.Cols)
	}
	if g := NewGrid(10000); g.Cols != MaxCols {
		t.Errorf("wide field should clamp to %d cols, got %d", MaxCols, g.Cols)
	}
}

func TestNeighborSymmetry(t *testing.T) {
	g := NewGrid(384)

	contains := func(list [][2]int, rc [2]int) bool {
		for _, x := range list {
			if x == rc {
				return true
			}
		}
		return false
	}

	for row := 0; row < GridRows; row++ {
		for col := 0; col < g.RowWidth(row); col++ {
			for _, n := range g.Neighbors(row, col) {
				back := g.Neighbors(n[0], n[1])
				if !contains(back, [2]int{row, col}) {
					t.Errorf("neighbor symmetry broken: (%d,%d) -> (%d,%d) has no back edge",
						row, col, n[0], n[1])
				}
			}
		}
	}
}

func TestNeighborCount(t *testing.T) {
	g := NewGrid(384)

	// Interior cells have all 6 neighbors.
	if n := len(g.Neighbors(5, 5)); n != 6 {
		t.Errorf("interior cell has %d neighbors, want 6", n)
	}
	// Top-left corner has 3: right, down-left (same col), down-right.
	if n := len(g.Neighbors(0, 0)); n != 3 {
		t.Errorf("corner cell has %d neighbors, want 3", n)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	g := NewGrid(384)

	for _, offset := range []float64{0, 7.3, RowSpacing - 0.01} {
		g.Offset = offset
		for row := 0; row < GridRows; row++ {
			for col := 0; col < g.RowWidth(row); col++ {
				x, y := g.ToXY(row, col)
				r2, c2 := g.FromXY(x, y)
				if r2 != row || c2 != col {
					t.Fatalf("round trip (%d,%d) with offset %.2f -> (%d,%d)",
						row, col, offset, r2, c2)
				}
			}
		}
	}
}

func TestOccupyClampsAndRejects(t *testing.T) {
	g := NewGrid(384)

	b := &Bubble{ID: 1, Color: Red}
	if !g.Occupy(b, -5, 99) {
		t.Fatal("Occupy with out-of-range coordinates should clamp and place")
	}
	if b.Row != 0 || b.Col != g.RowWidth(0)-1 {
		t.Errorf("clamped to (%d,%d), want (0,%d)", b.Row, b.Col, g.RowWidth(0)-1)
	}

	// Occupying the same cell again is a defensive no-op.
	other := &Bubble{ID: 2, Color: Blue}
	if g.Occupy(other, b.Row, b.Col) {
		t.Error("Occupy over an occupied cell should return false")
	}
	if g.At(b.Row, b.Col) != b {
		t.Error("original occupant was displaced")
	}
}

func TestResidentPositionDerivedFromCell(t *testing.T) {
	g := NewGrid(384)
	b := &Bubble{ID: 1, Color: Green}
	g.Occupy(b, 3, 4)

	g.Offset = 11.5
	g.RefreshPositions()

	wantX, wantY := g.ToXY(3, 4)
	if math.Abs(b.X-wantX) > 1e-9 || math.Abs(b.Y-wantY) > 1e-9 {
		t.Errorf("cached position (%.2f,%.2f) does not match derived (%.2f,%.2f)",
			b.X, b.Y, wantX, wantY)
	}
}

func TestShiftDownReindexesAndDiscards(t *testing.T) {
	g := NewGrid(384)

	// A bubble in the last even-row column (11) cannot fit on an odd row.
	edge := &Bubble{ID: 1, Color: Red}
	g.Occupy(edge, 0, 11)
	mid := &Bubble{ID: 2, Color: Blue}
	g.Occupy(mid, 0, 4)
	deep := &Bubble{ID: 3, Color: Green}
	g.Occupy(deep, GridRows-1, 0)

	newRow := make([]*Bubble, g.Cols)
	newRow[0] = &Bubble{ID: 4, Color: Yellow}
	g.ShiftDown(newRow)

	if mid.Row != 1 {
		t.Errorf("shifted bubble row = %d, want 1", mid.Row)
	}
	if g.At(1, 11) != nil {
		t.Error("bubble past odd-row width should have been discarded")
	}
	if g.At(GridRows-1, 0) == deep {
		t.Error("bottom row should have been discarded")
	}
	if b := g.At(0, 0); b == nil || b.ID != 4 {
		t.Error("new row did not land at row 0")
	}
}

func TestShiftDownKeepsCapacity(t *testing.T) {
	g := NewGrid(384)
	for i := 0; i < 40; i++ {
		row := make([]*Bubble, g.Cols)
		for c := 0; c < g.RowWidth(0); c++ {
			row[c] = &Bubble{ID: i*100 + c, Color: Red}
		}
		g.ShiftDown(row)

		if len(g.cells) != GridRows {
			t.Fatalf("logical row count changed to %d", len(g.cells))
		}
		if g.Count() > GridRows*g.Cols {
			t.Fatalf("grid overflowed its capacity: %d bubbles", g.Count())
		}
	}
}
