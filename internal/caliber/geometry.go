package caliber

import "math"

const (
	// FillFactor corrects rectangular sections for their rounded corners
	FillFactor = 0.98

	// AngleLegRatio estimates the leg thickness of an L-profile from its smaller side
	AngleLegRatio = 0.12

	// ChannelClearance is the extra groove width left for free spread
	ChannelClearance = 1.04
)

type shapeFormula struct {
	area      func(w, h float64) float64
	perimeter func(w, h float64) float64
}

func rectArea(w, h float64) float64      { return w * h * FillFactor }
func rectPerimeter(w, h float64) float64 { return 2 * (w + h) }

// formulas holds one entry per Type; adding a shape means adding a row here
var formulas = [...]shapeFormula{
	Box:    {area: rectArea, perimeter: rectPerimeter},
	Square: {area: rectArea, perimeter: rectPerimeter},
	Flat:   {area: rectArea, perimeter: rectPerimeter},
	Oval: {
		area: func(w, h float64) float64 { return math.Pi * w * h / 4 },
		perimeter: func(w, h float64) float64 {
			// Ramanujan's approximation
			a, b := w/2, h/2
			return math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b)))
		},
	},
	Round: {
		// average of width and height taken as the diameter
		area: func(w, h float64) float64 {
			d := (w + h) / 2
			return math.Pi * d * d / 4
		},
		perimeter: func(w, h float64) float64 { return math.Pi * (w + h) / 2 },
	},
	Diamond: {
		area:      func(w, h float64) float64 { return w * h / 2 },
		perimeter: func(w, h float64) float64 { return 2 * math.Sqrt(w*w+h*h) },
	},
	Angle: {
		area: func(w, h float64) float64 {
			t := math.Min(w, h) * AngleLegRatio
			return w*t + h*t - t*t
		},
		// outer contour only, the cut corner is ignored
		perimeter: rectPerimeter,
	},
}

// Area returns the cross-section area (mm²) of a bar or groove of the given type.
// Non-positive or non-finite dimensions yield 0.
func Area(t Type, width, height float64) float64 {
	if !usable(t, width, height) {
		return 0
	}
	return finite(formulas[t].area(width, height))
}

// Perimeter returns the cross-section perimeter (mm).
// Non-positive or non-finite dimensions yield 0.
func Perimeter(t Type, width, height float64) float64 {
	if !usable(t, width, height) {
		return 0
	}
	return finite(formulas[t].perimeter(width, height))
}

// ChannelWidth returns the physical groove width for a nominal exit bar width.
// The groove is the same for every type: 4% wider than the bar.
func ChannelWidth(t Type, exitWidth float64) float64 {
	if exitWidth <= 0 || math.IsNaN(exitWidth) || math.IsInf(exitWidth, 0) {
		return 0
	}
	return exitWidth * ChannelClearance
}

// DefaultWideningFactor suggests a spread multiplier for a freshly designed pass
func DefaultWideningFactor(t Type) float64 {
	switch t {
	case Oval, Round:
		return 0.85
	case Box:
		return 0.75
	case Flat:
		return 0.80
	default:
		return 0.85
	}
}

func usable(t Type, width, height float64) bool {
	if !t.Valid() {
		return false
	}
	if width <= 0 || height <= 0 {
		return false
	}
	return !math.IsInf(width, 0) && !math.IsInf(height, 0)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
