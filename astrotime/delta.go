package astrotime

import (
	"cmp"
	"fmt"
	"iter"
	"math"
)

// floatEps is the difference between 1.0 and the next larger float64.
const floatEps = 2.220446049250313e-16

// TimeDeltaError is returned when a float cannot be represented as a
// TimeDelta.
type TimeDeltaError struct {
	Raw    float64
	Detail string
}

func (e *TimeDeltaError) Error() string {
	return fmt.Sprintf("`%v` cannot be represented as a TimeDelta: %s", e.Raw, e.Detail)
}

// TimeDelta is a signed, continuous time difference supporting femtosecond
// precision.
type TimeDelta struct {
	// The sign of the delta is determined by the sign of the Seconds field.
	Seconds int64

	// The positive fraction since the last whole second. A delta of -0.25 s
	// is represented as {Seconds: -1, Subsecond: 0.75}.
	Subsecond Subsecond
}

// DeltaFromSeconds returns a TimeDelta of an integral number of seconds.
func DeltaFromSeconds(seconds int64) TimeDelta {
	return TimeDelta{Seconds: seconds}
}

// DeltaFromDecimalSeconds converts a floating-point number of seconds to a
// TimeDelta.
//
// As the magnitude of the input grows, the resolution of the resulting delta
// falls. Callers requiring precision guarantees should construct the delta
// from its integral and fractional parts directly.
func DeltaFromDecimalSeconds(value float64) (TimeDelta, error) {
	if math.IsNaN(value) {
		return TimeDelta{}, &TimeDeltaError{Raw: value, Detail: "NaN is unrepresentable"}
	}
	if value >= math.MaxInt64 {
		return TimeDelta{}, &TimeDeltaError{
			Raw:    value,
			Detail: "input seconds cannot exceed the maximum value of an int64",
		}
	}
	if value <= math.MinInt64 {
		return TimeDelta{}, &TimeDeltaError{
			Raw:    value,
			Detail: "input seconds cannot be less than the minimum value of an int64",
		}
	}
	return deltaFromDecimalSeconds(value), nil
}

// deltaFromDecimalSeconds assumes a finite value within the int64 range.
func deltaFromDecimalSeconds(value float64) TimeDelta {
	seconds := int64(value)
	fraction := value - math.Trunc(value)
	if math.Signbit(value) && fraction != 0 {
		seconds--
		fraction++
		if fraction == 1 {
			// 1 + fraction rounds to 1.0 for magnitudes below one float64 ulp.
			seconds++
			fraction = 0
		}
	}
	return TimeDelta{Seconds: seconds, Subsecond: Subsecond(fraction)}
}

// DeltaFromMinutes converts a floating-point number of minutes to a TimeDelta.
func DeltaFromMinutes(value float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(value * SecondsPerMinute)
}

// DeltaFromHours converts a floating-point number of hours to a TimeDelta.
func DeltaFromHours(value float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(value * SecondsPerHour)
}

// DeltaFromDays converts a floating-point number of days to a TimeDelta.
func DeltaFromDays(value float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(value * SecondsPerDay)
}

// DeltaFromJulianYears converts a floating-point number of Julian years to a
// TimeDelta.
func DeltaFromJulianYears(value float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(value * SecondsPerJulianYear)
}

// DeltaFromJulianCenturies converts a floating-point number of Julian
// centuries to a TimeDelta.
func DeltaFromJulianCenturies(value float64) (TimeDelta, error) {
	return DeltaFromDecimalSeconds(value * SecondsPerJulianCentury)
}

// ToDecimalSeconds collapses the delta to a floating-point number of seconds,
// with potential loss of precision.
func (d TimeDelta) ToDecimalSeconds() float64 {
	return float64(d.Subsecond) + float64(d.Seconds)
}

// IsNegative reports whether the delta is less than zero.
func (d TimeDelta) IsNegative() bool {
	return d.Seconds < 0
}

// IsPositive reports whether the delta is greater than zero.
func (d TimeDelta) IsPositive() bool {
	return d.Seconds > 0 || d.Seconds == 0 && d.Subsecond > 0
}

// IsZero reports whether the delta is exactly zero.
func (d TimeDelta) IsZero() bool {
	return d.Seconds == 0 && d.Subsecond == 0
}

// Neg returns the additive inverse of the delta.
func (d TimeDelta) Neg() TimeDelta {
	if d.Subsecond == 0 {
		return TimeDelta{Seconds: -d.Seconds}
	}
	return TimeDelta{Seconds: -d.Seconds - 1, Subsecond: 1 - d.Subsecond}
}

// Add returns the sum of two deltas.
func (d TimeDelta) Add(other TimeDelta) TimeDelta {
	if other.IsNegative() {
		return d.Sub(other.Neg())
	}
	sum := float64(d.Subsecond) + float64(other.Subsecond)
	seconds := d.Seconds + other.Seconds
	if sum >= 1 {
		sum = sum - math.Trunc(sum)
		seconds++
	}
	return TimeDelta{Seconds: seconds, Subsecond: Subsecond(sum)}
}

// Sub returns the difference of two deltas.
func (d TimeDelta) Sub(other TimeDelta) TimeDelta {
	if other.IsNegative() {
		return d.Add(other.Neg())
	}
	diff := float64(d.Subsecond) - float64(other.Subsecond)
	seconds := d.Seconds - other.Seconds
	// Differences below one ulp of 1.0 are float noise, not a borrow.
	if math.Abs(diff) > floatEps && diff < 0 {
		diff++
		seconds--
	}
	return TimeDelta{Seconds: seconds, Subsecond: Subsecond(diff)}
}

// Scale multiplies the delta by a dimensionless factor, with possible loss of
// precision.
func (d TimeDelta) Scale(factor float64) TimeDelta {
	// Treating both operands as positive and correcting the sign at the end
	// substantially simplifies the implementation.
	negative := false
	if d.IsNegative() {
		d = d.Neg()
		negative = !math.Signbit(factor)
		factor = math.Abs(factor)
	} else if d.IsPositive() && math.Signbit(factor) {
		negative = true
		factor = math.Abs(factor)
	}

	scaledSeconds := float64(d.Seconds) * factor
	scaledSubsecond := math.FMA(float64(d.Subsecond), factor, scaledSeconds-math.Trunc(scaledSeconds))
	if scaledSubsecond >= 1 {
		scaledSeconds += math.Trunc(scaledSubsecond)
		scaledSubsecond = scaledSubsecond - math.Trunc(scaledSubsecond)
	}

	result := TimeDelta{Seconds: int64(scaledSeconds), Subsecond: Subsecond(scaledSubsecond)}
	if negative {
		return result.Neg()
	}
	return result
}

// Cmp compares two deltas, returning -1 if d is less than other, 0 if equal,
// and +1 if greater.
func (d TimeDelta) Cmp(other TimeDelta) int {
	if c := cmp.Compare(d.Seconds, other.Seconds); c != 0 {
		return c
	}
	return cmp.Compare(d.Subsecond, other.Subsecond)
}

// SecondsFromEpoch expresses the delta as an integral number of seconds since
// the given epoch.
func (d TimeDelta) SecondsFromEpoch(epoch Epoch) int64 {
	switch epoch {
	case EpochJulianDate:
		return d.Seconds + SecondsBetweenJDAndJ2000
	case EpochModifiedJulianDate:
		return d.Seconds + SecondsBetweenMJDAndJ2000
	case EpochJ1950:
		return d.Seconds + SecondsBetweenJ1950AndJ2000
	default:
		return d.Seconds
	}
}

// JulianDate projects the delta onto the given epoch in the given unit.
func (d TimeDelta) JulianDate(epoch Epoch, unit Unit) float64 {
	seconds := float64(d.SecondsFromEpoch(epoch)) + float64(d.Subsecond)
	switch unit {
	case UnitSeconds:
		return seconds
	case UnitDays:
		return seconds / SecondsPerDay
	default:
		return seconds / SecondsPerJulianCentury
	}
}

func (d TimeDelta) String() string {
	return fmt.Sprintf("%v s", d.ToDecimalSeconds())
}

// DeltaRange returns an iterator over deltas from start to end inclusive,
// advancing by step. The sign of the step determines the direction of
// traversal; start is always yielded.
func DeltaRange(start, end, step TimeDelta) iter.Seq[TimeDelta] {
	return func(yield func(TimeDelta) bool) {
		if !yield(start) || step.IsZero() {
			return
		}
		descending := step.IsNegative()
		for curr := start.Add(step); ; curr = curr.Add(step) {
			if descending {
				if curr.Cmp(end) < 0 {
					return
				}
			} else if curr.Cmp(end) > 0 {
				return
			}
			if !yield(curr) {
				return
			}
		}
	}
}

// Range returns an iterator over whole-second deltas from start to end
// inclusive.
func Range(start, end int64) iter.Seq[TimeDelta] {
	return DeltaRange(DeltaFromSeconds(start), DeltaFromSeconds(end), DeltaFromSeconds(1))
}
