package bubble

import "math"

// Aim guide constants. The guide is a render hint only: it reflects off the
// side walls exactly like a projectile but never consults the grid.
const (
	GuideSegments      = 6
	GuideLength        = 240.0
	GuideLengthReduced = 120.0
	GuideLengthBoosted = 400.0
)

// GuidePoint is one vertex of the aim guide polyline.
type GuidePoint struct {
	X, Y float64
}

// GuidePath traces the aim ray from (x, y) along the given angle for up to
// budget pixels, reflecting off the left/right walls, for at most
// GuideSegments segments. The returned points start at the origin.
func GuidePath(x, y, angle, fieldW, budget float64) []GuidePoint {
	dirX := math.Sin(angle)
	dirY := -math.Cos(angle)

	points := make([]GuidePoint, 0, GuideSegments+1)
	points = append(points, GuidePoint{X: x, Y: y})

	for seg := 0; seg < GuideSegments && budget > 0; seg++ {
		// Distance to the wall the ray is heading toward.
		t := budget
		if dirX > 1e-9 {
			if w := (fieldW - Radius - x) / dirX; w < t {
				t = w
			}
		} else if dirX < -1e-9 {
			if w := (Radius - x) / dirX; w < t {
				t = w
			}
		}
		if t < 0 {
			t = 0
		}

		x += dirX * t
		y += dirY * t
		budget -= t
		points = append(points, GuidePoint{X: x, Y: y})

		if budget <= 0 {
			break
		}
		dirX = -dirX
	}

	return points
}
