package model

import (
	"fmt"
	"strings"
)

// Side is one of the two competing colours
type Side uint8

const (
	Red  Side = 1
	Blue Side = 2
)

// Cell is the content of a single board position
type Cell uint8

const (
	Empty     Cell = 0
	RedStone  Cell = Cell(Red)
	BlueStone Cell = Cell(Blue)
)

// Opponent returns the other side. Red and Blue map onto each other.
func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

// Cell returns the stone this side places
func (s Side) Cell() Cell {
	return Cell(s)
}

// IsValid reports whether s is Red or Blue
func (s Side) IsValid() bool {
	return s == Red || s == Blue
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Symbol returns the single-character board symbol for the side
func (s Side) Symbol() byte {
	if s == Red {
		return 'X'
	}
	return 'O'
}

// MarshalText encodes the side as "red" or "blue"
func (s Side) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidSide
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a side name
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSide accepts "red"/"x" and "blue"/"o", case-insensitively
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red", "x":
		return Red, nil
	case "blue", "o":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidSide)
	}
}
