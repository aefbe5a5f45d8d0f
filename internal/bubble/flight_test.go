package bubble

import (
	"math"
	"testing"
)

func TestFlightDirectionFromAngle(t *testing.T) {
	f := NewFlight(&Bubble{}, 0)
	if f.DirX != 0 || f.DirY != -1 {
		t.Errorf("angle 0 gives dir (%.3f, %.3f), want (0, -1)", f.DirX, f.DirY)
	}

	f = NewFlight(&Bubble{}, math.Pi/4)
	if f.DirX <= 0 {
		t.Error("positive angle should lean right")
	}
	if f.DirY >= 0 {
		t.Error("aim never points downward")
	}
}

func TestFlightReflectsOffWalls(t *testing.T) {
	g := NewGrid(384)
	b := &Bubble{X: 380, Y: 300}
	f := &Flight{Bubble: b, DirX: 1, DirY: 0}

	if c := f.Step(0.016, 384, g); c != ContactNone {
		t.Fatalf("wall bounce reported contact %v", c)
	}
	if f.DirX != -1 {
		t.Errorf("DirX = %.1f after right wall, want -1", f.DirX)
	}
	if b.X != 384-Radius {
		t.Errorf("bubble x = %.1f, want pinned to %.1f", b.X, 384-Radius)
	}
}

func TestFlightCeilingContact(t *testing.T) {
	g := NewGrid(384)
	b := &Bubble{X: 100, Y: Radius + ceilingSlack + 1}
	f := &Flight{Bubble: b, DirX: 0, DirY: -1}

	if c := f.Step(0.016, 384, g); c != ContactCeiling {
		t.Errorf("contact = %v, want ceiling", c)
	}
}

func TestFlightBubbleContact(t *testing.T) {
	g := NewGrid(384)
	placeBubble(t, g, 0, 5, Red, KindNormal)
	rx, ry := g.ToXY(0, 5)

	b := &Bubble{X: rx, Y: ry + Diameter}
	f := &Flight{Bubble: b, DirX: 0, DirY: -1}

	// One step closes the gap below the contact distance.
	if c := f.Step(0.016, 384, g); c != ContactBubble {
		t.Errorf("contact = %v, want bubble", c)
	}
}

func TestFlightTangentCellsDoNotCollide(t *testing.T) {
	g := NewGrid(384)
	placeBubble(t, g, 5, 5, Red, KindNormal)
	rx, ry := g.ToXY(5, 5)

	// Exactly one diameter away, stationary-adjacent spacing.
	b := &Bubble{X: rx + Diameter, Y: ry}
	f := &Flight{Bubble: b, DirX: 0, DirY: -1}

	if c := f.Step(0.0001, 384, g); c != ContactNone {
		t.Errorf("tangent spacing registered contact %v", c)
	}
}
