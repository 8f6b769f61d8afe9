package astrotime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Calendar distinguishes the Gregorian calendar from the Julian calendar in
// force before the reform of 1582, and its proleptic extension before year 1.
type Calendar int

const (
	ProlepticJulian Calendar = iota
	Julian
	Gregorian
)

// J2000 day numbers of the last day governed by each pre-Gregorian calendar.
const (
	lastProlepticJulianDayJ2000 = -730122
	lastJulianDayJ2000          = -152384
)

// InvalidDateError is returned when calendar components do not form a valid
// date.
type InvalidDateError struct {
	Year, Month, Day int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date `%d-%d-%d`", e.Year, e.Month, e.Day)
}

// InvalidISOStringError is returned when a string cannot be parsed as an ISO
// 8601 date, time, or timestamp.
type InvalidISOStringError struct {
	Input string
}

func (e *InvalidISOStringError) Error() string {
	return fmt.Sprintf("invalid ISO string `%s`", e.Input)
}

// ErrNonLeapYear is returned when day 366 is requested in a 365-day year.
var ErrNonLeapYear = errors.New("day of year cannot be 366 for a non-leap year")

var dateISORegexp = regexp.MustCompile(`(?P<year>-?\d{4,})-(?P<month>\d{2})-(?P<day>\d{2})`)

// Date is a calendar date with no associated time scale.
type Date struct {
	calendar Calendar
	year     int
	month    int
	day      int
}

// NewDate constructs a Date from a year, month, and day. The calendar is
// inferred from the input fields.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	cal := calendarForYMD(year, month, day)
	check := DateFromDaysSinceJ2000(j2000DayNumber(cal, year, month, day))
	if check.year != year || check.month != month || check.day != day {
		return Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return Date{calendar: cal, year: year, month: month, day: day}, nil
}

// ParseDate constructs a Date from an ISO 8601 string.
func ParseDate(iso string) (Date, error) {
	caps := dateISORegexp.FindStringSubmatch(iso)
	if caps == nil {
		return Date{}, &InvalidISOStringError{Input: iso}
	}
	year, err := strconv.Atoi(caps[1])
	if err != nil {
		return Date{}, &InvalidISOStringError{Input: iso}
	}
	month, err := strconv.Atoi(caps[2])
	if err != nil {
		return Date{}, &InvalidISOStringError{Input: iso}
	}
	day, err := strconv.Atoi(caps[3])
	if err != nil {
		return Date{}, &InvalidISOStringError{Input: iso}
	}
	return NewDate(year, month, day)
}

// DateFromDaysSinceJ2000 constructs a Date from a signed number of days
// relative to 2000-01-01. The calendar is inferred.
func DateFromDaysSinceJ2000(days int) Date {
	cal := Gregorian
	if days < lastJulianDayJ2000 {
		if days > lastProlepticJulianDayJ2000 {
			cal = Julian
		} else {
			cal = ProlepticJulian
		}
	}
	year := findYear(cal, days)
	leap := isLeapYear(cal, year)
	dayOfYear := days - lastDayOfYearJ2000(cal, year-1)
	month := findMonth(dayOfYear, leap)
	day, err := findDay(dayOfYear, month, leap)
	if err != nil {
		panic(fmt.Sprintf("%d is not a valid day of the year: %v", dayOfYear, err))
	}
	return Date{calendar: cal, year: year, month: month, day: day}
}

// DateFromSecondsSinceJ2000 constructs a Date from a signed number of seconds
// relative to J2000, which falls at noon.
func DateFromSecondsSinceJ2000(seconds int64) Date {
	seconds += SecondsPerHalfDay
	time := seconds % SecondsPerDay
	if time < 0 {
		time += SecondsPerDay
	}
	return DateFromDaysSinceJ2000(int((seconds - time) / SecondsPerDay))
}

// DateFromDayOfYear constructs a Date from a year and a day number within
// that year. The calendar is inferred.
func DateFromDayOfYear(year, dayOfYear int) (Date, error) {
	cal := calendarForYMD(year, 1, 1)
	leap := isLeapYear(cal, year)
	month := findMonth(dayOfYear, leap)
	day, err := findDay(dayOfYear, month, leap)
	if err != nil {
		return Date{}, err
	}
	return Date{calendar: cal, year: year, month: month, day: day}, nil
}

// Calendar returns the calendar the date belongs to.
func (d Date) Calendar() Calendar {
	return d.calendar
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.year
}

// Month returns the calendar month in the range [1, 12].
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// DayOfYear returns the one-based day number within the year.
func (d Date) DayOfYear() int {
	return findDayInYear(d.month, d.day, isLeapYear(d.calendar, d.year))
}

// J2000DayNumber returns the day number of the date relative to 2000-01-01.
func (d Date) J2000DayNumber() int {
	return j2000DayNumber(d.calendar, d.year, d.month, d.day)
}

// secondsSinceJ2000 returns the number of whole seconds between J2000 and
// midnight at the start of the date.
func (d Date) secondsSinceJ2000() int64 {
	return int64(d.J2000DayNumber())*SecondsPerDay - SecondsPerHalfDay
}

// JulianDate projects midnight at the start of the date onto the given epoch
// in the given unit.
func (d Date) JulianDate(epoch Epoch, unit Unit) float64 {
	seconds := d.secondsSinceJ2000()
	switch epoch {
	case EpochJulianDate:
		seconds += SecondsBetweenJDAndJ2000
	case EpochModifiedJulianDate:
		seconds += SecondsBetweenMJDAndJ2000
	case EpochJ1950:
		seconds += SecondsBetweenJ1950AndJ2000
	}
	switch unit {
	case UnitSeconds:
		return float64(seconds)
	case UnitDays:
		return float64(seconds) / SecondsPerDay
	default:
		return float64(seconds) / SecondsPerJulianCentury
	}
}

// SecondsSinceJulianEpoch returns the seconds since -4712-01-01T12:00:00.
func (d Date) SecondsSinceJulianEpoch() float64 {
	return d.JulianDate(EpochJulianDate, UnitSeconds)
}

// DaysSinceJulianEpoch returns the days since -4712-01-01T12:00:00.
func (d Date) DaysSinceJulianEpoch() float64 {
	return d.JulianDate(EpochJulianDate, UnitDays)
}

// CenturiesSinceJulianEpoch returns the Julian centuries since
// -4712-01-01T12:00:00.
func (d Date) CenturiesSinceJulianEpoch() float64 {
	return d.JulianDate(EpochJulianDate, UnitCenturies)
}

// SecondsSinceModifiedJulianEpoch returns the seconds since
// 1858-11-17T00:00:00.
func (d Date) SecondsSinceModifiedJulianEpoch() float64 {
	return d.JulianDate(EpochModifiedJulianDate, UnitSeconds)
}

// DaysSinceModifiedJulianEpoch returns the days since 1858-11-17T00:00:00.
func (d Date) DaysSinceModifiedJulianEpoch() float64 {
	return d.JulianDate(EpochModifiedJulianDate, UnitDays)
}

// CenturiesSinceModifiedJulianEpoch returns the Julian centuries since
// 1858-11-17T00:00:00.
func (d Date) CenturiesSinceModifiedJulianEpoch() float64 {
	return d.JulianDate(EpochModifiedJulianDate, UnitCenturies)
}

// SecondsSinceJ1950 returns the seconds since 1950-01-01T00:00:00.
func (d Date) SecondsSinceJ1950() float64 {
	return d.JulianDate(EpochJ1950, UnitSeconds)
}

// DaysSinceJ1950 returns the days since 1950-01-01T00:00:00.
func (d Date) DaysSinceJ1950() float64 {
	return d.JulianDate(EpochJ1950, UnitDays)
}

// CenturiesSinceJ1950 returns the Julian centuries since 1950-01-01T00:00:00.
func (d Date) CenturiesSinceJ1950() float64 {
	return d.JulianDate(EpochJ1950, UnitCenturies)
}

// SecondsSinceJ2000 returns the seconds since 2000-01-01T12:00:00.
func (d Date) SecondsSinceJ2000() float64 {
	return d.JulianDate(EpochJ2000, UnitSeconds)
}

// DaysSinceJ2000 returns the days since 2000-01-01T12:00:00.
func (d Date) DaysSinceJ2000() float64 {
	return d.JulianDate(EpochJ2000, UnitDays)
}

// CenturiesSinceJ2000 returns the Julian centuries since 2000-01-01T12:00:00.
func (d Date) CenturiesSinceJ2000() float64 {
	return d.JulianDate(EpochJ2000, UnitCenturies)
}

func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.year, d.month, d.day)
}

func findYear(cal Calendar, j2000Day int) int {
	switch cal {
	case ProlepticJulian:
		return -((-4*j2000Day - 2920488) / 1461)
	case Julian:
		return -((-4*j2000Day - 2921948) / 1461)
	default:
		year := (400*j2000Day + 292194288) / 146097
		if j2000Day <= lastDayOfYearJ2000(Gregorian, year-1) {
			return year - 1
		}
		return year
	}
}

func lastDayOfYearJ2000(cal Calendar, year int) int {
	switch cal {
	case ProlepticJulian:
		return 365*year + (year+1)/4 - 730123
	case Julian:
		return 365*year + year/4 - 730122
	default:
		return 365*year + year/4 - year/100 + year/400 - 730120
	}
}

func isLeapYear(cal Calendar, year int) bool {
	if cal == Gregorian {
		return year%4 == 0 && (year%400 == 0 || year%100 != 0)
	}
	return year%4 == 0
}

var previousMonthEndDayLeap = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

var previousMonthEndDay = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func findMonth(dayInYear int, leap bool) int {
	offset := 323
	if leap {
		offset = 313
	}
	if dayInYear < 32 {
		return 1
	}
	return (10*dayInYear + offset) / 306
}

func findDay(dayInYear, month int, leap bool) (int, error) {
	if !leap && dayInYear > 365 {
		return 0, ErrNonLeapYear
	}
	if leap {
		return dayInYear - previousMonthEndDayLeap[month-1], nil
	}
	return dayInYear - previousMonthEndDay[month-1], nil
}

func findDayInYear(month, day int, leap bool) int {
	if leap {
		return day + previousMonthEndDayLeap[month-1]
	}
	return day + previousMonthEndDay[month-1]
}

func calendarForYMD(year, month, day int) Calendar {
	if year < 1583 {
		if year < 1 {
			return ProlepticJulian
		}
		if year < 1582 || month < 10 || (month < 11 && day < 5) {
			return Julian
		}
	}
	return Gregorian
}

func j2000DayNumber(cal Calendar, year, month, day int) int {
	return lastDayOfYearJ2000(cal, year-1) + findDayInYear(month, day, isLeapYear(cal, year))
}
