package rolling

import "github.com/alexiusacademia/gorolling/internal/caliber"

// Twisted reports whether twist guides turn the bar 90° between a stand
// with channel prev and the next stand with channel curr.
//
// Flat sections (oval, flat) are turned before entering a closed pass
// (round, square, diamond, oval) so the next bite attacks the former width;
// a diamond is turned before a square so opposite corners are rolled.
// This follows common twist-guide practice and is not derived from first principles.
func Twisted(prev, curr caliber.Type) bool {
	switch prev {
	case caliber.Oval, caliber.Flat:
		switch curr {
		case caliber.Round, caliber.Square, caliber.Diamond, caliber.Oval:
			return true
		}
	case caliber.Diamond:
		return curr == caliber.Square
	}
	return false
}

// Orient returns the bar as presented to a stand with channel curr,
// width and height swapped when the transition is twisted.
func Orient(bar Bar, curr caliber.Type) Bar {
	if Twisted(bar.Channel, curr) {
		bar.Width, bar.Height = bar.Height, bar.Width
	}
	return bar
}
