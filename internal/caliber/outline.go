package caliber

import "math"

// Point represents a 2D coordinate in mm, origin at the pass centre
type Point struct {
	X float64
	Y float64
}

// arcSegments controls how finely curved contours are approximated
const arcSegments = 48

// outlineLegRatio is the drawn leg thickness of an L groove, heavier than AngleLegRatio for legibility
const outlineLegRatio = 0.2

// Outline returns a closed polygon (counter-clockwise, first vertex not repeated)
// approximating the contour of a groove or bar of the given type.
// radius rounds the corners of box and flat grooves; pass 0 for a bar.
func Outline(t Type, width, height, radius float64) []Point {
	if width <= 0 || height <= 0 || !t.Valid() {
		return nil
	}
	w, h := width/2, height/2

	switch t {
	case Box, Flat:
		return roundedRect(w, h, radius)
	case Oval:
		return ellipse(w, h)
	case Round:
		return ellipse(w, w)
	case Diamond, Square:
		// square grooves are cut diagonally in the rolls
		return []Point{{0, -h}, {w, 0}, {0, h}, {-w, 0}}
	case Angle:
		leg := math.Min(width, height) * outlineLegRatio
		x, y := -w, -h
		return []Point{
			{x, y},
			{x + width, y},
			{x + width, y + leg},
			{x + leg, y + leg},
			{x + leg, y + height},
			{x, y + height},
		}
	}
	return nil
}

func ellipse(a, b float64) []Point {
	pts := make([]Point, 0, arcSegments)
	for i := 0; i < arcSegments; i++ {
		theta := 2 * math.Pi * float64(i) / arcSegments
		pts = append(pts, Point{X: a * math.Cos(theta), Y: b * math.Sin(theta)})
	}
	return pts
}

func roundedRect(w, h, r float64) []Point {
	r = math.Max(0, math.Min(r, math.Min(w, h)))
	if r == 0 {
		return []Point{{-w, -h}, {w, -h}, {w, h}, {-w, h}}
	}

	corners := []struct {
		cx, cy, start float64
	}{
		{w - r, -h + r, -math.Pi / 2},
		{w - r, h - r, 0},
		{-w + r, h - r, math.Pi / 2},
		{-w + r, -h + r, math.Pi},
	}

	steps := arcSegments / 4
	pts := make([]Point, 0, 4*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			theta := c.start + (math.Pi/2)*float64(i)/float64(steps)
			pts = append(pts, Point{X: c.cx + r*math.Cos(theta), Y: c.cy + r*math.Sin(theta)})
		}
	}
	return pts
}

// Bounds returns the bounding box of a polygon
func Bounds(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
