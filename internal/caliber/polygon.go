package caliber

import (
	"math"
	"sort"
)

// PolygonArea returns the area and centroid of a closed polygon using the shoelace formula
func PolygonArea(pts []Point) (area float64, centroid Point) {
	n := len(pts)
	if n < 3 {
		return 0, Point{}
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		signedArea += cross
		sumX += (pts[i].X + pts[j].X) * cross
		sumY += (pts[i].Y + pts[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		centroid.X = sumX / (6 * signedArea)
		centroid.Y = sumY / (6 * signedArea)
	}

	return area, centroid
}

// Spans returns the [from, to] X intervals where a horizontal line at y
// crosses the inside of the polygon, sorted left to right.
func Spans(pts []Point, y float64) [][2]float64 {
	var xs []float64
	n := len(pts)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := pts[i], pts[j]

		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}

	sort.Float64s(xs)
	spans := make([][2]float64, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, [2]float64{xs[i], xs[i+1]})
	}
	return spans
}

// WidthAt returns the total width of the polygon at height y
func WidthAt(pts []Point, y float64) float64 {
	var w float64
	for _, s := range Spans(pts, y) {
		w += s[1] - s[0]
	}
	return w
}
