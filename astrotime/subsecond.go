package astrotime

import (
	"fmt"
	"math"
	"strconv"
)

// InvalidSubsecondError is returned when a fraction outside [0.0, 1.0) is
// passed to NewSubsecond.
type InvalidSubsecondError struct {
	Fraction float64
}

func (e *InvalidSubsecondError) Error() string {
	return fmt.Sprintf("subsecond must be in the range [0.0, 1.0), but was `%v`", e.Fraction)
}

// Subsecond is a fraction of a second in the range [0.0, 1.0) with
// femtosecond resolution.
type Subsecond float64

// NewSubsecond validates that fraction lies in [0.0, 1.0).
func NewSubsecond(fraction float64) (Subsecond, error) {
	if !(fraction >= 0.0 && fraction < 1.0) {
		return 0, &InvalidSubsecondError{Fraction: fraction}
	}
	return Subsecond(fraction), nil
}

// Equal reports whether two subseconds differ by less than one femtosecond.
func (s Subsecond) Equal(other Subsecond) bool {
	return s == other || math.Abs(float64(s)-float64(other)) < 1e-15
}

// Millisecond returns the number of milliseconds in the subsecond.
func (s Subsecond) Millisecond() int {
	return int(float64(s) * 1e3)
}

// Microsecond returns the number of microseconds since the last millisecond.
func (s Subsecond) Microsecond() int {
	return int(int64(float64(s)*1e6) % 1000)
}

// Nanosecond returns the number of nanoseconds since the last microsecond.
func (s Subsecond) Nanosecond() int {
	return int(int64(float64(s)*1e9) % 1000)
}

// Picosecond returns the number of picoseconds since the last nanosecond.
func (s Subsecond) Picosecond() int {
	return int(int64(float64(s)*1e12) % 1000)
}

// Femtosecond returns the number of femtoseconds since the last picosecond.
func (s Subsecond) Femtosecond() int {
	return int(int64(float64(s)*1e15) % 1000)
}

func (s Subsecond) String() string {
	return strconv.FormatFloat(float64(s), 'f', 3, 64)
}
