// Package timeunit defines the hour, minute and second units shown by the
// picker wheels, their valid ranges, and their localized labels.
package timeunit

import (
	"errors"
	"fmt"
	"strings"
)

// Unit identifies one of the three picker wheels.
type Unit int

const (
	Hours Unit = iota
	Minutes
	Seconds
)

// ErrUnknownUnit is returned when a unit name cannot be parsed.
var ErrUnknownUnit = errors.New("unknown time unit")

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// All returns the units in display order.
func All() []Unit {
	return []Unit{Hours, Minutes, Seconds}
}

// Range returns the valid values for the unit.
func (u Unit) Range() Range {
	switch u {
	case Hours:
		return Range{Min: 0, Max: 23}
	default:
		return Range{Min: 0, Max: 59}
	}
}

// Clamp limits v to the unit's range.
func (u Unit) Clamp(v int) int {
	return u.Range().Clamp(v)
}

// DefaultStyle returns the label style the picker uses for the unit.
// Hours read better spelled out; minutes and seconds are abbreviated.
func (u Unit) DefaultStyle() Style {
	if u == Hours {
		return StyleLong
	}
	return StyleShort
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= Hours && u <= Seconds
}

func (u Unit) String() string {
	switch u {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

var unitNames = map[string]Unit{
	"h":       Hours,
	"hr":      Hours,
	"hrs":     Hours,
	"hour":    Hours,
	"hours":   Hours,
	"m":       Minutes,
	"min":     Minutes,
	"mins":    Minutes,
	"minute":  Minutes,
	"minutes": Minutes,
	"s":       Seconds,
	"sec":     Seconds,
	"secs":    Seconds,
	"second":  Seconds,
	"seconds": Seconds,
}

// ParseUnit parses a unit name such as "hours", "min" or "s".
func ParseUnit(s string) (Unit, error) {
	u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// Style selects which form of a unit symbol is used.
type Style int

const (
	StyleDefault Style = iota // resolves to Unit.DefaultStyle
	StyleLong                 // "hours"
	StyleShort                // "hrs"
	StyleNarrow               // "h"
)

// ErrUnknownStyle is returned when a style name cannot be parsed.
var ErrUnknownStyle = errors.New("unknown label style")

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleLong:
		return "long"
	case StyleShort:
		return "short"
	case StyleNarrow:
		return "narrow"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses "default", "long", "short" (or "abbreviated") and "narrow".
// The empty string parses as StyleDefault.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return StyleDefault, nil
	case "long", "wide", "full":
		return StyleLong, nil
	case "short", "abbreviated", "abbrev":
		return StyleShort, nil
	case "narrow":
		return StyleNarrow, nil
	default:
		return StyleDefault, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// resolve maps StyleDefault to the unit's preferred style.
func (s Style) resolve(u Unit) Style {
	if s == StyleDefault || s < StyleDefault || s > StyleNarrow {
		return u.DefaultStyle()
	}
	return s
}
