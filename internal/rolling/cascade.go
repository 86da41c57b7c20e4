package rolling

import (
	"sort"

	"github.com/alexiusacademia/gorolling/internal/thermal"
)

// Environment carries the mill-wide inputs of a cascade
type Environment struct {
	Steel          thermal.Steel
	CarbonDilation float64

	// GearRatios per train; a train with no entry uses 1
	GearRatios map[Train]float64
}

// GearRatio returns the gear ratio used for stands of a train
func (e Environment) GearRatio(t Train) float64 {
	if r, ok := e.GearRatios[t]; ok {
		return r
	}
	return 1
}

// Less reports whether stand a is rolled before stand b
func Less(a, b Stand) bool {
	if a.Train != b.Train {
		return a.Train < b.Train
	}
	return a.PassNumber < b.PassNumber
}

// SortCanonical returns a copy of stands ordered by train, then pass number
func SortCanonical(stands []Stand) []Stand {
	out := make([]Stand, len(stands))
	copy(out, stands)
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Cascade rolls the seed bar through every stand in canonical order and
// returns a new stand list with all derived fields recomputed. The input
// slice is not modified.
func Cascade(seed Bar, stands []Stand, env Environment) []Stand {
	out := SortCanonical(stands)

	bar := seed
	for i := range out {
		s := &out[i]
		cond := Conditions{
			GearRatio:      env.GearRatio(s.Train),
			Steel:          env.Steel,
			CarbonDilation: env.CarbonDilation,
		}
		in := Orient(bar, s.Channel)
		s.Derived = Roll(in, s.Tool, s.Position(), cond)
		s.Derived.Twisted = i > 0 && Twisted(bar.Channel, s.Channel)
		bar = s.Derived.Exit(s.Channel)
	}
	return out
}
