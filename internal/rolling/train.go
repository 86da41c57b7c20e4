package rolling

import (
	"errors"
	"fmt"
	"strings"
)

// Train is a section of the mill. Trains are rolled in declaration order.
type Train int

const (
	Roughing Train = iota
	Intermediate
	Finishing
)

// ErrUnknownTrain is returned when a train name cannot be parsed
var ErrUnknownTrain = errors.New("unknown train")

// Trains lists the trains in rolling order
func Trains() []Train {
	return []Train{Roughing, Intermediate, Finishing}
}

func (t Train) String() string {
	switch t {
	case Roughing:
		return "roughing"
	case Intermediate:
		return "intermediate"
	case Finishing:
		return "finishing"
	}
	return fmt.Sprintf("Train(%d)", int(t))
}

// Valid reports whether t is one of the declared trains
func (t Train) Valid() bool {
	return t >= Roughing && t <= Finishing
}

// ParseTrain converts a train name to a Train.
// Shop-floor names (desbaste, intermediario, acabador) are accepted too.
func ParseTrain(name string) (Train, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "roughing", "desbaste":
		return Roughing, nil
	case "intermediate", "intermediario":
		return Intermediate, nil
	case "finishing", "acabador":
		return Finishing, nil
	}
	return Roughing, fmt.Errorf("%w: %q", ErrUnknownTrain, name)
}

// MarshalText encodes the train by name
func (t Train) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrain, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a train name
func (t *Train) UnmarshalText(text []byte) error {
	parsed, err := ParseTrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
