package timeunit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSelection is returned when a selection string cannot be parsed.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection holds one value per wheel. The fields are independent: there is
// no carry from seconds into minutes or from minutes into hours.
type Selection struct {
	Hours   int
	Minutes int
	Seconds int
}

// Clamp limits every field to its unit's range.
func (s Selection) Clamp() Selection {
	return Selection{
		Hours:   Hours.Clamp(s.Hours),
		Minutes: Minutes.Clamp(s.Minutes),
		Seconds: Seconds.Clamp(s.Seconds),
	}
}

// Get returns the value for the given unit.
func (s Selection) Get(u Unit) int {
	switch u {
	case Hours:
		return s.Hours
	case Minutes:
		return s.Minutes
	case Seconds:
		return s.Seconds
	default:
		return 0
	}
}

// IsZero reports whether all fields are zero.
func (s Selection) IsZero() bool {
	return s.Hours == 0 && s.Minutes == 0 && s.Seconds == 0
}

// Duration converts the selection to a time.Duration.
func (s Selection) Duration() time.Duration {
	s = s.Clamp()
	return time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute +
		time.Duration(s.Seconds)*time.Second
}

// TotalSeconds returns the selection as a number of seconds.
func (s Selection) TotalSeconds() int {
	return int(s.Duration() / time.Second)
}

// String formats the selection as "HH:MM:SS".
func (s Selection) String() string {
	s = s.Clamp()
	return fmt.Sprintf("%02d:%02d:%02d", s.Hours, s.Minutes, s.Seconds)
}

// ParseSelection parses "HH:MM:SS", "MM:SS" or "SS".
// Each field must be within its unit's range.
func ParseSelection(v string) (Selection, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Selection{}, fmt.Errorf("%w: empty value", ErrInvalidSelection)
	}
	parts := strings.Split(v, ":")
	if len(parts) > 3 {
		return Selection{}, fmt.Errorf("%w: %q must be HH:MM:SS", ErrInvalidSelection, v)
	}

	// Right-align the fields so "05:30" means minutes and seconds.
	units := All()[3-len(parts):]
	var values [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || part == "" || strings.ContainsAny(part, "+-") {
			return Selection{}, fmt.Errorf("%w: %q must be HH:MM:SS", ErrInvalidSelection, v)
		}
		u := units[i]
		if !u.Range().Contains(n) {
			r := u.Range()
			return Selection{}, fmt.Errorf("%w: %s %d out of range %d-%d", ErrInvalidSelection, u, n, r.Min, r.Max)
		}
		values[u] = n
	}

	return Selection{Hours: values[Hours], Minutes: values[Minutes], Seconds: values[Seconds]}, nil
}
