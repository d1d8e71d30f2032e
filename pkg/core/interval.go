package core

import "math"

// Interval represents a closed range [Min, Max] of doubles. The zero value
// is not a valid interval; use Universe() or Empty() for the sentinel
// unbounded/empty ranges.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from explicit bounds.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Universe returns the unbounded interval [-inf, +inf], the default AABB
// axis range before any geometry has been unioned into it.
func Universe() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Empty returns an interval that contains no values.
func Empty() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Contains reports whether x lies in the interval, inclusive of both ends.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp returns x clamped to the interval.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Size returns Max - Min.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Hull returns the smallest interval that contains both intervals.
func (i Interval) Hull(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}
