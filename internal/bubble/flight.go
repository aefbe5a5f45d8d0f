package bubble

import "math"

// Projectile constants.
const (
	// ShotSpeed is the fixed projectile speed in pixels per second.
	ShotSpeed = 520.0

	// ceilingSlack declares ceiling contact slightly before the bubble edge
	// touches the top, so an empty top row still produces a snap.
	ceilingSlack = 2.0

	// contactSlack shrinks the contact distance below one full diameter so
	// that tangent bubbles in adjacent cells do not register as collisions.
	contactSlack = 4.0
)

// ContactKind classifies what an in-flight bubble hit this tick.
type ContactKind uint8

const (
	ContactNone ContactKind = iota
	ContactCeiling
	ContactBubble
)

// Flight advances a single in-flight bubble. The direction vector is unit
// length; walls reflect it without energy loss.
type Flight struct {
	Bubble *Bubble
	DirX   float64
	DirY   float64
}

// NewFlight launches a bubble along the given aim angle.
// Angle zero points straight up; positive angles lean right.
func NewFlight(b *Bubble, angle float64) *Flight {
	return &Flight{
		Bubble: b,
		DirX:   math.Sin(angle),
		DirY:   -math.Cos(angle),
	}
}

// Step advances the bubble by one tick, resolving wall bounces, and reports
// any contact with the ceiling or an occupied grid cell.
func (f *Flight) Step(dt, fieldW float64, g *Grid) ContactKind {
	b := f.Bubble
	b.X += f.DirX * ShotSpeed * dt
	b.Y += f.DirY * ShotSpeed * dt

	if b.X <= Radius {
		b.X = Radius
		f.DirX = -f.DirX
	} else if b.X >= fieldW-Radius {
		b.X = fieldW - Radius
		f.DirX = -f.DirX
	}

	if b.Y <= Radius+ceilingSlack {
		return ContactCeiling
	}

	limit := Diameter - contactSlack
	hit := false
	g.Each(func(o *Bubble) {
		if hit {
			return
		}
		dx := o.X - b.X
		dy := o.Y - b.Y
		if dx*dx+dy*dy < limit*limit {
			hit = true
		}
	})
	if hit {
		return ContactBubble
	}
	return ContactNone
}
