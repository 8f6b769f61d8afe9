package astrotime

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUTCUndefined is returned for instants before 1960-01-01, when UTC did
// not exist.
var ErrUTCUndefined = errors.New("UTC is not defined for dates before 1960-01-01")

// NonLeapSecondDateError is returned when a timestamp carries second 60 on a
// date without a leap second.
type NonLeapSecondDateError struct {
	Date Date
}

func (e *NonLeapSecondDateError) Error() string {
	return fmt.Sprintf("no leap second on %s", e.Date)
}

// UTC is a civil timestamp in Coordinated Universal Time. Unlike Time it is
// not an instant in a continuous scale: during a leap second the second field
// reads 60, and the scale is undefined before 1960. Convert to TAI for
// arithmetic.
type UTC struct {
	date Date
	time TimeOfDay
}

// NewUTC validates a date and time of day against the built-in leap second
// provider.
func NewUTC(date Date, time TimeOfDay) (UTC, error) {
	return NewUTCWithProvider(date, time, BuiltinLeapSeconds{})
}

// NewUTCWithProvider validates a date and time of day, consulting the
// provider to check that second 60 only appears on leap second dates.
func NewUTCWithProvider(date Date, time TimeOfDay, provider LeapSecondsProvider) (UTC, error) {
	if date.Year() < 1960 {
		return UTC{}, ErrUTCUndefined
	}
	if time.Second() == 60 && !provider.IsLeapSecondDate(date) {
		return UTC{}, &NonLeapSecondDateError{Date: date}
	}
	return UTC{date: date, time: time}, nil
}

// CivilUTC returns the UTC timestamp for a Gregorian calendar date and a
// civil time of day.
func CivilUTC(year, month, day, hour, minute int, seconds float64) (UTC, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return UTC{}, err
	}
	time, err := TimeOfDayFromHMS(hour, minute, seconds)
	if err != nil {
		return UTC{}, err
	}
	return NewUTC(date, time)
}

// ParseUTC reads an ISO 8601 timestamp such as "2016-12-31T23:59:60.500",
// optionally suffixed with "Z" or " UTC".
func ParseUTC(iso string) (UTC, error) {
	return ParseUTCWithProvider(iso, BuiltinLeapSeconds{})
}

// ParseUTCWithProvider reads an ISO 8601 timestamp, validating leap seconds
// against the given provider.
func ParseUTCWithProvider(iso string, provider LeapSecondsProvider) (UTC, error) {
	dateStr, rest, found := strings.Cut(iso, "T")
	if !found {
		return UTC{}, &InvalidISOStringError{Input: iso}
	}
	timeStr := rest
	abbreviation := ""
	if fields := strings.Fields(rest); len(fields) == 2 {
		timeStr, abbreviation = fields[0], fields[1]
	}
	if abbreviation != "" && abbreviation != "UTC" {
		return UTC{}, &InvalidISOStringError{Input: iso}
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return UTC{}, err
	}
	time, err := ParseTimeOfDay(timeStr)
	if err != nil {
		return UTC{}, err
	}
	return NewUTCWithProvider(date, time, provider)
}

// UTCFromDelta expands seconds since J2000 into a calendar timestamp. The
// caller is responsible for leap second placement.
func UTCFromDelta(delta TimeDelta) UTC {
	return UTC{
		date: DateFromSecondsSinceJ2000(delta.Seconds),
		time: timeOfDayFromSecondsSinceJ2000(delta.Seconds).WithSubsecond(delta.Subsecond),
	}
}

// ToDelta counts seconds since J2000 as if UTC were continuous. A leap
// second maps to second-of-day 86400, so the count stays monotonic across
// the insertion.
func (u UTC) ToDelta() TimeDelta {
	return TimeDelta{
		Seconds:   u.date.secondsSinceJ2000() + u.time.SecondOfDay(),
		Subsecond: u.time.Subsecond(),
	}
}

// ToTAI converts to the TAI scale using the built-in leap second provider.
func (u UTC) ToTAI() (Time, error) {
	return u.ToTAIWithProvider(BuiltinLeapSeconds{})
}

// ToTAIWithProvider converts to the TAI scale using the given provider.
func (u UTC) ToTAIWithProvider(provider LeapSecondsProvider) (Time, error) {
	delta, ok := provider.DeltaUTCTAI(u)
	if !ok {
		return Time{}, ErrUTCUndefined
	}
	return TimeFromDelta(TAI, u.ToDelta().Sub(delta)), nil
}

// ToUTC converts the instant to UTC using the built-in leap second provider.
func (t Time) ToUTC() (UTC, error) {
	return t.ToUTCWithProvider(BuiltinLeapSeconds{})
}

// ToUTCWithProvider converts the instant to UTC using the given provider.
// UT1 instants must be converted to a continuous scale first.
func (t Time) ToUTCWithProvider(provider LeapSecondsProvider) (UTC, error) {
	tai, err := t.ToScale(TAI)
	if err != nil {
		return UTC{}, err
	}
	delta, ok := provider.DeltaTAIUTC(tai)
	if !ok {
		return UTC{}, ErrUTCUndefined
	}
	utc := UTCFromDelta(tai.ToDelta().Sub(delta))
	if provider.IsLeapSecond(tai) {
		utc.time.second = 60
	}
	return utc, nil
}

// Date returns the calendar date.
func (u UTC) Date() Date {
	return u.date
}

// TimeOfDay returns the time of day.
func (u UTC) TimeOfDay() TimeOfDay {
	return u.time
}

// Year returns the calendar year.
func (u UTC) Year() int {
	return u.date.Year()
}

// Month returns the calendar month.
func (u UTC) Month() int {
	return u.date.Month()
}

// Day returns the day of the month.
func (u UTC) Day() int {
	return u.date.Day()
}

// Hour returns the hour of the day.
func (u UTC) Hour() int {
	return u.time.Hour()
}

// Minute returns the minute of the hour.
func (u UTC) Minute() int {
	return u.time.Minute()
}

// Second returns the second of the minute, which is 60 during a leap second.
func (u UTC) Second() int {
	return u.time.Second()
}

// Subsecond returns the fraction of the current second.
func (u UTC) Subsecond() Subsecond {
	return u.time.Subsecond()
}

// DecimalSeconds returns the second of the minute including its fraction.
func (u UTC) DecimalSeconds() float64 {
	return float64(u.time.Subsecond()) + float64(u.time.Second())
}

// Millisecond returns the millisecond component of the subsecond.
func (u UTC) Millisecond() int {
	return u.time.Subsecond().Millisecond()
}

// Microsecond returns the microsecond component of the subsecond.
func (u UTC) Microsecond() int {
	return u.time.Subsecond().Microsecond()
}

// Nanosecond returns the nanosecond component of the subsecond.
func (u UTC) Nanosecond() int {
	return u.time.Subsecond().Nanosecond()
}

// Picosecond returns the picosecond component of the subsecond.
func (u UTC) Picosecond() int {
	return u.time.Subsecond().Picosecond()
}

// Femtosecond returns the femtosecond component of the subsecond.
func (u UTC) Femtosecond() int {
	return u.time.Subsecond().Femtosecond()
}

func (u UTC) String() string {
	return u.text(3)
}

// Format implements fmt.Formatter so that a precision like %.6v widens the
// subsecond field.
func (u UTC) Format(state fmt.State, verb rune) {
	prec, ok := state.Precision()
	if !ok {
		prec = 3
	}
	fmt.Fprint(state, u.text(prec))
}

func (u UTC) text(prec int) string {
	return fmt.Sprintf("%sT%s UTC", u.date, u.time.text(prec))
}
