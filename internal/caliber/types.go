package caliber

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the groove shape cut into a pair of rolls.
type Type int

const (
	Box Type = iota
	Oval
	Round
	Square
	Diamond
	Flat
	Angle
)

// ErrUnknownType is returned when a channel type name cannot be parsed
var ErrUnknownType = errors.New("unknown channel type")

var typeNames = [...]string{
	Box:     "box",
	Oval:    "oval",
	Round:   "round",
	Square:  "square",
	Diamond: "diamond",
	Flat:    "flat",
	Angle:   "angle",
}

// Types lists every channel type in declaration order
func Types() []Type {
	return []Type{Box, Oval, Round, Square, Diamond, Flat, Angle}
}

func (t Type) String() string {
	if t < Box || t > Angle {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the declared channel types
func (t Type) Valid() bool {
	return t >= Box && t <= Angle
}

// Parse converts a channel type name (case-insensitive) to a Type
func Parse(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range typeNames {
		if s == n {
			return Type(i), nil
		}
	}
	return Box, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// MarshalText encodes the type by name so project files stay readable
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
