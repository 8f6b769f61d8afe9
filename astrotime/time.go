// Package astrotime implements instants in the continuous astronomical time
// scales with femtosecond resolution, conversions between them, and the UTC
// bridge with leap-second support.
package astrotime

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrLeapSecondOutsideUTC is returned when second 60 is passed to a
// constructor for a continuous time scale.
var ErrLeapSecondOutsideUTC = errors.New("leap seconds do not exist in continuous time scales; use UTC instead")

// JulianDateOutOfRangeError is returned when a Julian date lies outside the
// representable range of seconds since J2000.
type JulianDateOutOfRangeError struct {
	Seconds float64
}

func (e *JulianDateOutOfRangeError) Error() string {
	return fmt.Sprintf("Julian date must be between %d and %d seconds since J2000 but was %v",
		int64(math.MinInt64), int64(math.MaxInt64), e.Seconds)
}

// Time is an instant in one of the continuous astronomical time scales,
// counted in seconds since J2000 with femtosecond resolution.
type Time struct {
	scale     TimeScale
	seconds   int64
	subsecond Subsecond
}

// NewTime constructs a Time in the given scale from seconds since J2000 and a
// subsecond.
func NewTime(scale TimeScale, seconds int64, subsecond Subsecond) Time {
	return Time{scale: scale, seconds: seconds, subsecond: subsecond}
}

// TimeFromDelta constructs a Time in the given scale from a delta relative to
// J2000.
func TimeFromDelta(scale TimeScale, delta TimeDelta) Time {
	return Time{scale: scale, seconds: delta.Seconds, subsecond: delta.Subsecond}
}

// TimeFromDateAndTime combines a date and a time of day into a Time in the
// given scale.
func TimeFromDateAndTime(scale TimeScale, date Date, time TimeOfDay) (Time, error) {
	if time.Second() == 60 {
		return Time{}, ErrLeapSecondOutsideUTC
	}
	seconds := date.secondsSinceJ2000() + time.SecondOfDay()
	return Time{scale: scale, seconds: seconds, subsecond: time.Subsecond()}, nil
}

// CivilTime constructs a Time in the given scale from calendar and clock
// components.
func CivilTime(scale TimeScale, year, month, day, hour, minute int, seconds float64) (Time, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return Time{}, err
	}
	time, err := TimeOfDayFromHMS(hour, minute, seconds)
	if err != nil {
		return Time{}, err
	}
	return TimeFromDateAndTime(scale, date, time)
}

// ParseTime constructs a Time from an ISO 8601 timestamp. A trailing scale
// abbreviation is accepted if it matches the requested scale.
func ParseTime(scale TimeScale, iso string) (Time, error) {
	dateStr, rest, found := strings.Cut(iso, "T")
	if !found {
		return Time{}, &InvalidISOStringError{Input: iso}
	}
	timeStr := rest
	abbreviation := ""
	if fields := strings.Fields(rest); len(fields) == 2 {
		timeStr, abbreviation = fields[0], fields[1]
	}
	if abbreviation != "" && abbreviation != scale.Abbreviation() {
		return Time{}, &InvalidISOStringError{Input: iso}
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return Time{}, err
	}
	time, err := ParseTimeOfDay(timeStr)
	if err != nil {
		return Time{}, err
	}
	return TimeFromDateAndTime(scale, date, time)
}

// TimeFromEpoch returns the instant of a standard epoch in the given scale.
func TimeFromEpoch(scale TimeScale, epoch Epoch) Time {
	switch epoch {
	case EpochJulianDate:
		return Time{scale: scale, seconds: -SecondsBetweenJDAndJ2000}
	case EpochModifiedJulianDate:
		return Time{scale: scale, seconds: -SecondsBetweenMJDAndJ2000}
	case EpochJ1950:
		return Time{scale: scale, seconds: -SecondsBetweenJ1950AndJ2000}
	default:
		return Time{scale: scale}
	}
}

// JD0 returns the Julian date epoch -4712-01-01T12:00:00 in the given scale.
func JD0(scale TimeScale) Time {
	return TimeFromEpoch(scale, EpochJulianDate)
}

// MJD0 returns the modified Julian date epoch 1858-11-17T00:00:00 in the
// given scale.
func MJD0(scale TimeScale) Time {
	return TimeFromEpoch(scale, EpochModifiedJulianDate)
}

// J1950 returns the epoch 1950-01-01T00:00:00 in the given scale.
func J1950(scale TimeScale) Time {
	return TimeFromEpoch(scale, EpochJ1950)
}

// J2000 returns the epoch 2000-01-01T12:00:00 in the given scale.
func J2000(scale TimeScale) Time {
	return TimeFromEpoch(scale, EpochJ2000)
}

// TimeFromJulianDate constructs a Time from a Julian date in days since the
// given epoch.
func TimeFromJulianDate(scale TimeScale, jd float64, epoch Epoch) (Time, error) {
	seconds := jd * SecondsPerDay
	if !(seconds >= math.MinInt64 && seconds <= math.MaxInt64) {
		return Time{}, &JulianDateOutOfRangeError{Seconds: seconds}
	}
	whole := int64(seconds)
	fraction := seconds - math.Trunc(seconds)
	if fraction < 0 {
		whole--
		fraction++
	}
	switch epoch {
	case EpochJulianDate:
		whole -= SecondsBetweenJDAndJ2000
	case EpochModifiedJulianDate:
		whole -= SecondsBetweenMJDAndJ2000
	case EpochJ1950:
		whole -= SecondsBetweenJ1950AndJ2000
	}
	return Time{scale: scale, seconds: whole, subsecond: Subsecond(fraction)}, nil
}

// TimeFromTwoPartJulianDate constructs a Time from a two-part Julian date,
// preserving the precision of the split.
func TimeFromTwoPartJulianDate(scale TimeScale, jd1, jd2 float64) (Time, error) {
	s1 := jd1 * SecondsPerDay
	s2 := jd2 * SecondsPerDay
	sum := math.Trunc(s1) + math.Trunc(s2) - SecondsBetweenJDAndJ2000
	if !(sum >= math.MinInt64 && sum <= math.MaxInt64) {
		return Time{}, &JulianDateOutOfRangeError{Seconds: sum}
	}
	seconds := int64(sum)
	f1 := s1 - math.Trunc(s1)
	f2 := s2 - math.Trunc(s2)
	if f1 < f2 {
		f1, f2 = f2, f1
	}
	fraction := f2 + f1
	if fraction >= 1 {
		seconds++
		fraction--
	}
	if fraction < 0 {
		seconds--
		fraction++
	}
	return Time{scale: scale, seconds: seconds, subsecond: Subsecond(fraction)}, nil
}

// Scale returns the time scale of the instant.
func (t Time) Scale() TimeScale {
	return t.scale
}

// Seconds returns the whole seconds since J2000.
func (t Time) Seconds() int64 {
	return t.seconds
}

// Subsecond returns the fraction of the current second.
func (t Time) Subsecond() Subsecond {
	return t.subsecond
}

// ToDelta expresses the instant as a delta relative to J2000.
func (t Time) ToDelta() TimeDelta {
	return TimeDelta{Seconds: t.seconds, Subsecond: t.subsecond}
}

// WithScale reinterprets the instant in another scale without conversion.
func (t Time) WithScale(scale TimeScale) Time {
	t.scale = scale
	return t
}

// WithScaleAndDelta reinterprets the instant in another scale shifted by
// delta.
func (t Time) WithScaleAndDelta(scale TimeScale, delta TimeDelta) Time {
	return TimeFromDelta(scale, t.ToDelta().Add(delta))
}

// Add returns the instant shifted forwards by delta, or backwards if delta is
// negative.
func (t Time) Add(delta TimeDelta) Time {
	if delta.IsNegative() {
		return t.sub(delta.Neg())
	}
	carry := float64(t.subsecond) + float64(delta.Subsecond)
	t.seconds += delta.Seconds + int64(carry)
	t.subsecond = Subsecond(carry - math.Trunc(carry))
	return t
}

// sub shifts the instant backwards by a non-negative delta.
func (t Time) sub(delta TimeDelta) Time {
	if delta.IsNegative() {
		return t.Add(delta.Neg())
	}
	subsecond := float64(t.subsecond) - float64(delta.Subsecond)
	seconds := t.seconds - delta.Seconds
	if math.Signbit(subsecond) {
		seconds--
		subsecond++
	}
	t.seconds = seconds
	t.subsecond = Subsecond(subsecond)
	return t
}

// Sub returns the signed delta between two instants in the same scale.
func (t Time) Sub(other Time) TimeDelta {
	subsecond := float64(t.subsecond) - float64(other.subsecond)
	seconds := t.seconds - other.seconds
	if math.Signbit(subsecond) {
		seconds--
		subsecond++
	}
	return TimeDelta{Seconds: seconds, Subsecond: Subsecond(subsecond)}
}

// Date returns the calendar date of the instant. It is not leap-second aware.
func (t Time) Date() Date {
	return DateFromSecondsSinceJ2000(t.seconds)
}

// TimeOfDay returns the civil time of day of the instant. It is not
// leap-second aware.
func (t Time) TimeOfDay() TimeOfDay {
	return timeOfDayFromSecondsSinceJ2000(t.seconds).WithSubsecond(t.subsecond)
}

// Year returns the calendar year of the instant.
func (t Time) Year() int {
	return t.Date().Year()
}

// Month returns the calendar month of the instant.
func (t Time) Month() int {
	return t.Date().Month()
}

// Day returns the day of the month of the instant.
func (t Time) Day() int {
	return t.Date().Day()
}

// DayOfYear returns the one-based day number within the year.
func (t Time) DayOfYear() int {
	return t.Date().DayOfYear()
}

// Hour returns the hour of the instant.
func (t Time) Hour() int {
	return t.TimeOfDay().Hour()
}

// Minute returns the minute of the instant.
func (t Time) Minute() int {
	return t.TimeOfDay().Minute()
}

// Second returns the second of the instant.
func (t Time) Second() int {
	return t.TimeOfDay().Second()
}

// DecimalSeconds returns the seconds of the instant including the fraction.
func (t Time) DecimalSeconds() float64 {
	return float64(t.subsecond) + float64(t.Second())
}

// Millisecond returns the millisecond component of the instant.
func (t Time) Millisecond() int {
	return t.subsecond.Millisecond()
}

// Microsecond returns the microsecond component of the instant.
func (t Time) Microsecond() int {
	return t.subsecond.Microsecond()
}

// Nanosecond returns the nanosecond component of the instant.
func (t Time) Nanosecond() int {
	return t.subsecond.Nanosecond()
}

// Picosecond returns the picosecond component of the instant.
func (t Time) Picosecond() int {
	return t.subsecond.Picosecond()
}

// Femtosecond returns the femtosecond component of the instant.
func (t Time) Femtosecond() int {
	return t.subsecond.Femtosecond()
}

// JulianDate projects the instant onto the given epoch in the given unit.
func (t Time) JulianDate(epoch Epoch, unit Unit) float64 {
	return t.ToDelta().JulianDate(epoch, unit)
}

// TwoPartJulianDate splits the Julian date of the instant into a whole and a
// fractional number of days.
func (t Time) TwoPartJulianDate() (float64, float64) {
	jd := t.JulianDate(EpochJulianDate, UnitDays)
	return math.Trunc(jd), jd - math.Trunc(jd)
}

// SecondsSinceJulianEpoch returns the seconds since -4712-01-01T12:00:00.
func (t Time) SecondsSinceJulianEpoch() float64 {
	return t.JulianDate(EpochJulianDate, UnitSeconds)
}

// DaysSinceJulianEpoch returns the days since -4712-01-01T12:00:00.
func (t Time) DaysSinceJulianEpoch() float64 {
	return t.JulianDate(EpochJulianDate, UnitDays)
}

// CenturiesSinceJulianEpoch returns the Julian centuries since
// -4712-01-01T12:00:00.
func (t Time) CenturiesSinceJulianEpoch() float64 {
	return t.JulianDate(EpochJulianDate, UnitCenturies)
}

// SecondsSinceModifiedJulianEpoch returns the seconds since
// 1858-11-17T00:00:00.
func (t Time) SecondsSinceModifiedJulianEpoch() float64 {
	return t.JulianDate(EpochModifiedJulianDate, UnitSeconds)
}

// DaysSinceModifiedJulianEpoch returns the days since 1858-11-17T00:00:00.
func (t Time) DaysSinceModifiedJulianEpoch() float64 {
	return t.JulianDate(EpochModifiedJulianDate, UnitDays)
}

// CenturiesSinceModifiedJulianEpoch returns the Julian centuries since
// 1858-11-17T00:00:00.
func (t Time) CenturiesSinceModifiedJulianEpoch() float64 {
	return t.JulianDate(EpochModifiedJulianDate, UnitCenturies)
}

// SecondsSinceJ1950 returns the seconds since 1950-01-01T00:00:00.
func (t Time) SecondsSinceJ1950() float64 {
	return t.JulianDate(EpochJ1950, UnitSeconds)
}

// DaysSinceJ1950 returns the days since 1950-01-01T00:00:00.
func (t Time) DaysSinceJ1950() float64 {
	return t.JulianDate(EpochJ1950, UnitDays)
}

// CenturiesSinceJ1950 returns the Julian centuries since 1950-01-01T00:00:00.
func (t Time) CenturiesSinceJ1950() float64 {
	return t.JulianDate(EpochJ1950, UnitCenturies)
}

// SecondsSinceJ2000 returns the seconds since 2000-01-01T12:00:00.
func (t Time) SecondsSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitSeconds)
}

// DaysSinceJ2000 returns the days since 2000-01-01T12:00:00.
func (t Time) DaysSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitDays)
}

// CenturiesSinceJ2000 returns the Julian centuries since 2000-01-01T12:00:00.
func (t Time) CenturiesSinceJ2000() float64 {
	return t.JulianDate(EpochJ2000, UnitCenturies)
}

// IsClose reports whether two instants are equal within a relative tolerance
// of 1e-9 and an absolute tolerance of 1e-14 on their decimal seconds.
func (t Time) IsClose(other Time) bool {
	a := t.ToDelta().ToDecimalSeconds()
	b := other.ToDelta().ToDecimalSeconds()
	return math.Abs(a-b) <= 1e-14+1e-9*math.Abs(b)
}

func (t Time) String() string {
	return t.text(3)
}

// Format implements fmt.Formatter so that a precision such as "%.15v" selects
// the number of subsecond digits. The default is three.
func (t Time) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = 3
	}
	fmt.Fprint(f, t.text(prec))
}

func (t Time) text(prec int) string {
	return fmt.Sprintf("%sT%s %s", t.Date(), t.TimeOfDay().text(prec), t.scale.Abbreviation())
}
