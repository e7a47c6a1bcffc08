// Package timeunit converts durations expressed in a fixed set of time units.
//
// The set of units is closed: Second, Minute, Hour and Day. Any other Unit value
// is rejected with ErrUnknownUnit.
package timeunit

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Unit identifies a duration unit.
type Unit string

const (
	Second Unit = "second"
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
)

var (
	// ErrUnknownUnit is returned for a Unit outside Second, Minute, Hour and Day.
	ErrUnknownUnit = errors.New("timeunit: unknown unit")
	// ErrOutOfRange is returned when a result is NaN or overflows an int64.
	ErrOutOfRange = errors.New("timeunit: duration out of range")
)

// All returns every known unit, smallest first.
func All() []Unit {
	return []Unit{Second, Minute, Hour, Day}
}

// Milliseconds returns the number of milliseconds in one u.
func Milliseconds(u Unit) (int64, error) {
	switch u {
	case Second:
		return 1000, nil
	case Minute:
		return 60 * 1000, nil
	case Hour:
		return 60 * 60 * 1000, nil
	case Day:
		return 24 * 60 * 60 * 1000, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(u))
	}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	_, err := Milliseconds(u)
	return err == nil
}

func (u Unit) String() string {
	return string(u)
}

// ToMilliseconds converts duration units of u into milliseconds.
// Fractional results are kept as is.
//
// Example: fractional hours
//
//	ms, _ := timeunit.ToMilliseconds(1.5, timeunit.Hour)
//	fmt.Println(ms) // 5.4e+06
func ToMilliseconds(duration float64, u Unit) (float64, error) {
	ms, err := Milliseconds(u)
	if err != nil {
		return 0, err
	}
	return duration * float64(ms), nil
}

// Convert converts duration from one unit to another, truncating toward zero.
//
// Example: seconds to minutes
//
//	n, _ := timeunit.Convert(90, timeunit.Second, timeunit.Minute)
//	fmt.Println(n) // 1
func Convert(duration float64, from, to Unit) (int64, error) {
	ms, err := ToMilliseconds(duration, from)
	if err != nil {
		return 0, err
	}
	per, err := Milliseconds(to)
	if err != nil {
		return 0, err
	}
	out := math.Trunc(ms / float64(per))
	if math.IsNaN(out) || out >= math.MaxInt64 || out <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %v %s", ErrOutOfRange, duration, from)
	}
	return int64(out), nil
}

// Duration converts duration units of u into a time.Duration.
// Precision below one nanosecond is dropped.
func Duration(duration float64, u Unit) (time.Duration, error) {
	ms, err := ToMilliseconds(duration, u)
	if err != nil {
		return 0, err
	}
	ns := ms * float64(time.Millisecond)
	if math.IsNaN(ns) || ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %v %s", ErrOutOfRange, duration, u)
	}
	return time.Duration(ns), nil
}

// Parse resolves a unit name. It accepts singular and plural names and the
// short forms s, m, h and d, ignoring case and surrounding space.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "m", "min", "minute", "minutes":
		return Minute, nil
	case "h", "hr", "hour", "hours":
		return Hour, nil
	case "d", "day", "days":
		return Day, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}
