package astrotime

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDayError is returned when time components are out of range.
type TimeOfDayError struct {
	Component string
	Bound     string
	Value     float64
}

func (e *TimeOfDayError) Error() string {
	return fmt.Sprintf("%s must be in the range %s but was %v", e.Component, e.Bound, e.Value)
}

func invalidHour(hour int) error {
	return &TimeOfDayError{Component: "hour", Bound: "[0..24)", Value: float64(hour)}
}

func invalidMinute(minute int) error {
	return &TimeOfDayError{Component: "minute", Bound: "[0..60)", Value: float64(minute)}
}

func invalidSecond(second int) error {
	return &TimeOfDayError{Component: "second", Bound: "[0..61)", Value: float64(second)}
}

// ErrInvalidLeapSecond is returned when second 60 appears anywhere but the
// end of the day.
var ErrInvalidLeapSecond = errors.New("leap seconds are only valid at the end of the day")

var timeISORegexp = regexp.MustCompile(`(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?P<subsecond>\.\d+)?`)

// TimeOfDay is a civil time of day with femtosecond resolution. Second 60 is
// admitted to represent a leap second.
type TimeOfDay struct {
	hour      int
	minute    int
	second    int
	subsecond Subsecond
}

// NewTimeOfDay constructs a TimeOfDay from integral components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, invalidHour(hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, invalidMinute(minute)
	}
	if second < 0 || second > 60 {
		return TimeOfDay{}, invalidSecond(second)
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// TimeOfDayFromHMS constructs a TimeOfDay from an hour, minute, and
// floating-point seconds.
func TimeOfDayFromHMS(hour, minute int, seconds float64) (TimeOfDay, error) {
	if !(seconds >= 0.0 && seconds < 86401.0) {
		return TimeOfDay{}, &TimeOfDayError{Component: "seconds", Bound: "[0.0..86401.0)", Value: seconds}
	}
	second := int(math.Trunc(seconds))
	fraction := seconds - math.Trunc(seconds)
	time, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return TimeOfDay{}, err
	}
	return time.WithSubsecond(Subsecond(fraction)), nil
}

// TimeOfDayFromSecondOfDay constructs a TimeOfDay from the given second of a
// day. Second 86400 denotes the leap second 23:59:60.
func TimeOfDayFromSecondOfDay(secondOfDay int64) (TimeOfDay, error) {
	if secondOfDay < 0 || secondOfDay > 86400 {
		return TimeOfDay{}, &TimeOfDayError{Component: "second", Bound: "[0..86401)", Value: float64(secondOfDay)}
	}
	if secondOfDay == SecondsPerDay {
		return NewTimeOfDay(23, 59, 60)
	}
	return NewTimeOfDay(int(secondOfDay/3600), int((secondOfDay%3600)/60), int(secondOfDay%60))
}

// timeOfDayFromSecondsSinceJ2000 maps a signed number of seconds relative to
// J2000 onto a time of day. It is not leap-second aware.
func timeOfDayFromSecondsSinceJ2000(seconds int64) TimeOfDay {
	secondOfDay := (seconds + SecondsPerHalfDay) % SecondsPerDay
	if secondOfDay < 0 {
		secondOfDay += SecondsPerDay
	}
	time, err := TimeOfDayFromSecondOfDay(secondOfDay)
	if err != nil {
		panic(fmt.Sprintf("second of day should be in range: %v", err))
	}
	return time
}

// ParseTimeOfDay constructs a TimeOfDay from an ISO 8601 string.
func ParseTimeOfDay(iso string) (TimeOfDay, error) {
	caps := timeISORegexp.FindStringSubmatch(iso)
	if caps == nil {
		return TimeOfDay{}, &InvalidISOStringError{Input: iso}
	}
	hour, err := strconv.Atoi(caps[1])
	if err != nil {
		return TimeOfDay{}, &InvalidISOStringError{Input: iso}
	}
	minute, err := strconv.Atoi(caps[2])
	if err != nil {
		return TimeOfDay{}, &InvalidISOStringError{Input: iso}
	}
	second, err := strconv.Atoi(caps[3])
	if err != nil {
		return TimeOfDay{}, &InvalidISOStringError{Input: iso}
	}
	time, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return TimeOfDay{}, err
	}
	if caps[4] != "" {
		fraction, err := strconv.ParseFloat(caps[4], 64)
		if err != nil {
			return TimeOfDay{}, &InvalidISOStringError{Input: iso}
		}
		time = time.WithSubsecond(Subsecond(fraction))
	}
	return time, nil
}

// WithSubsecond returns a copy of the time of day with the given subsecond.
func (t TimeOfDay) WithSubsecond(subsecond Subsecond) TimeOfDay {
	t.subsecond = subsecond
	return t
}

// Hour returns the hour in the range [0, 24).
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute in the range [0, 60).
func (t TimeOfDay) Minute() int {
	return t.minute
}

// Second returns the second in the range [0, 61).
func (t TimeOfDay) Second() int {
	return t.second
}

// Subsecond returns the fractional second.
func (t TimeOfDay) Subsecond() Subsecond {
	return t.subsecond
}

// SecondOfDay returns the number of integral seconds since the start of the
// day.
func (t TimeOfDay) SecondOfDay() int64 {
	return int64(t.hour)*SecondsPerHour + int64(t.minute)*SecondsPerMinute + int64(t.second)
}

func (t TimeOfDay) String() string {
	return t.text(3)
}

// Format implements fmt.Formatter so that a precision such as "%.15v" selects
// the number of subsecond digits. The default is three.
func (t TimeOfDay) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = 3
	}
	fmt.Fprint(f, t.text(prec))
}

func (t TimeOfDay) text(prec int) string {
	frac := strings.TrimLeft(strconv.FormatFloat(float64(t.subsecond), 'f', prec, 64), "0")
	return fmt.Sprintf("%02d:%02d:%02d%s", t.hour, t.minute, t.second, frac)
}
