package astrotime

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/litescript/ls-astro/spice"
)

// LeapSecondsProvider answers leap-second queries for the UTC bridge.
// Implementations must be safe for concurrent use.
type LeapSecondsProvider interface {
	// DeltaTAIUTC returns TAI minus UTC at a TAI instant. The second return
	// value is false if the instant predates the provider's data.
	DeltaTAIUTC(tai Time) (TimeDelta, bool)

	// DeltaUTCTAI returns UTC minus TAI at a UTC instant. The second return
	// value is false if the instant predates the provider's data.
	DeltaUTCTAI(utc UTC) (TimeDelta, bool)

	// IsLeapSecondDate reports whether a leap second is inserted at the end
	// of the given date.
	IsLeapSecondDate(date Date) bool

	// IsLeapSecond reports whether the TAI instant falls within a leap
	// second.
	IsLeapSecond(tai Time) bool
}

// Leap second epochs in seconds relative to J2000 UTC.
var leapSecondEpochsUTC = [28]int64{
	-883656000, -867931200, -852033600, -820497600, -788961600, -757425600,
	-725803200, -694267200, -662731200, -631195200, -583934400, -552398400,
	-520862400, -457704000, -378734400, -315576000, -284040000, -236779200,
	-205243200, -173707200, -126273600, -79012800, -31579200, 189345600,
	284040000, 394372800, 488980800, 536500800,
}

// Leap second epochs in seconds relative to J2000 TAI.
var leapSecondEpochsTAI = [28]int64{
	-883655991, -867931190, -852033589, -820497588, -788961587, -757425586,
	-725803185, -694267184, -662731183, -631195182, -583934381, -552398380,
	-520862379, -457703978, -378734377, -315575976, -284039975, -236779174,
	-205243173, -173707172, -126273571, -79012770, -31579169, 189345632,
	284040033, 394372834, 488980835, 536500836,
}

// The cumulative number of leap seconds at each epoch.
var leapSecondCounts = [28]int64{
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23,
	24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37,
}

// lookupLeapSeconds returns the cumulative leap second count at the last
// epoch at or before seconds.
func lookupLeapSeconds(epochs, counts []int64, seconds int64) (int64, bool) {
	if len(epochs) == 0 || seconds < epochs[0] {
		return 0, false
	}
	idx, found := slices.BinarySearch(epochs, seconds)
	if !found {
		idx--
	}
	return counts[idx], true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// BuiltinLeapSeconds provides the compiled-in leap second table from
// 1972-01-01 onwards and the linear drift model in force between 1960 and
// 1972.
type BuiltinLeapSeconds struct{}

// DeltaTAIUTC returns TAI minus UTC at a TAI instant.
func (BuiltinLeapSeconds) DeltaTAIUTC(tai Time) (TimeDelta, bool) {
	if tai.Seconds() < leapSecondEpochsTAI[0] {
		return deltaTAIUTCBefore1972(tai)
	}
	ls, ok := lookupLeapSeconds(leapSecondEpochsTAI[:], leapSecondCounts[:], tai.Seconds())
	if !ok {
		return TimeDelta{}, false
	}
	return DeltaFromSeconds(ls), true
}

// DeltaUTCTAI returns UTC minus TAI at a UTC instant.
func (BuiltinLeapSeconds) DeltaUTCTAI(utc UTC) (TimeDelta, bool) {
	seconds := utc.ToDelta().Seconds
	if seconds < leapSecondEpochsUTC[0] {
		return deltaUTCTAIBefore1972(utc)
	}
	ls, ok := lookupLeapSeconds(leapSecondEpochsUTC[:], leapSecondCounts[:], seconds)
	if !ok {
		return TimeDelta{}, false
	}
	if utc.Second() == 60 {
		ls--
	}
	return DeltaFromSeconds(-ls), true
}

// IsLeapSecondDate reports whether a leap second is inserted at the end of
// the given date.
func (BuiltinLeapSeconds) IsLeapSecondDate(date Date) bool {
	day := int64(date.J2000DayNumber())
	for _, epoch := range leapSecondEpochsUTC {
		if floorDiv(epoch, SecondsPerDay) == day {
			return true
		}
	}
	return false
}

// IsLeapSecond reports whether the TAI instant falls within a leap second.
func (BuiltinLeapSeconds) IsLeapSecond(tai Time) bool {
	_, found := slices.BinarySearch(leapSecondEpochsTAI[:], tai.Seconds())
	return found
}

// Linear drift model for the rubber-second era between 1960-01-01 and
// 1972-01-01, during which ten leap seconds were distributed gradually.
// Data sourced from ftp://maia.usno.navy.mil/ser7/tai-utc.dat.
var (
	preLeapSecondEpochs = [14]int64{
		36934, 37300, 37512, 37665, 38334, 38395, 38486, 38639, 38761, 38820,
		38942, 39004, 39126, 39887,
	}
	preLeapSecondOffsets = [14]float64{
		1.417818, 1.422818, 1.372818, 1.845858, 1.945858, 3.240130, 3.340130,
		3.440130, 3.540130, 3.640130, 3.740130, 3.840130, 4.313170, 4.213170,
	}
	preDriftEpochs = [14]int64{
		37300, 37300, 37300, 37665, 37665, 38761, 38761, 38761, 38761, 38761,
		38761, 38761, 39126, 39126,
	}
	preDriftRates = [14]float64{
		0.0012960, 0.0012960, 0.0012960, 0.0011232, 0.0011232, 0.0012960,
		0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960, 0.0012960,
		0.0025920, 0.0025920,
	}
)

func preLeapSecondPosition(mjd float64) (int, bool) {
	threshold := int64(math.Floor(mjd))
	for i := len(preLeapSecondEpochs) - 1; i >= 0; i-- {
		if preLeapSecondEpochs[i] <= threshold {
			return i, true
		}
	}
	return 0, false
}

// deltaUTCTAIBefore1972 returns UTC minus TAI under the drift model, or false
// for dates before 1960-01-01.
func deltaUTCTAIBefore1972(utc UTC) (TimeDelta, bool) {
	mjd := utc.ToDelta().JulianDate(EpochModifiedJulianDate, UnitDays)
	position, ok := preLeapSecondPosition(mjd)
	if !ok {
		return TimeDelta{}, false
	}
	raw := preLeapSecondOffsets[position] +
		(mjd-float64(preDriftEpochs[position]))*preDriftRates[position]
	return deltaFromDecimalSeconds(raw).Neg(), true
}

// deltaTAIUTCBefore1972 returns TAI minus UTC under the drift model, or false
// for instants before 1960-01-01. The drift rates are defined against UTC and
// must be rescaled to apply to a TAI argument.
func deltaTAIUTCBefore1972(tai Time) (TimeDelta, bool) {
	mjd := tai.JulianDate(EpochModifiedJulianDate, UnitDays)
	position, ok := preLeapSecondPosition(mjd)
	if !ok {
		return TimeDelta{}, false
	}
	rateUTC := preDriftRates[position] / SecondsPerDay
	rateTAI := rateUTC / (1 + rateUTC) * SecondsPerDay
	offset := preLeapSecondOffsets[position]
	dt := mjd - float64(preDriftEpochs[position]) - offset/SecondsPerDay
	return deltaFromDecimalSeconds(offset + dt*rateTAI), true
}

// ErrNoLeapSeconds is returned when a kernel does not carry leap second data.
var ErrNoLeapSeconds = errors.New("no leap seconds found in kernel under key `DELTET/DELTA_AT`")

var kernelMonths = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// LeapSecondsKernel is a LeapSecondsProvider backed by a SPICE leap-second
// kernel (LSK). Unlike BuiltinLeapSeconds it carries no drift model, so
// queries before the kernel's first entry report no data.
type LeapSecondsKernel struct {
	epochsUTC []int64
	epochsTAI []int64
	counts    []int64
}

// ParseLeapSecondsKernel reads an LSK from its text representation.
func ParseLeapSecondsKernel(text string) (*LeapSecondsKernel, error) {
	kernel, err := spice.Parse(text)
	if err != nil {
		return nil, err
	}
	return newLeapSecondsKernel(kernel)
}

// LoadLeapSecondsKernel reads an LSK from a file.
func LoadLeapSecondsKernel(path string) (*LeapSecondsKernel, error) {
	kernel, err := spice.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return newLeapSecondsKernel(kernel)
}

func newLeapSecondsKernel(kernel *spice.Kernel) (*LeapSecondsKernel, error) {
	data, ok := kernel.Timestamps("DELTET/DELTA_AT")
	if !ok || len(data) < 2 {
		return nil, ErrNoLeapSeconds
	}
	lsk := &LeapSecondsKernel{}
	for i := 0; i+1 < len(data); i += 2 {
		count, err := strconv.ParseInt(data[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing leap second count `%s`: %w", data[i], err)
		}
		date, err := parseKernelDate(data[i+1])
		if err != nil {
			return nil, err
		}
		epoch := date.secondsSinceJ2000()
		lsk.epochsUTC = append(lsk.epochsUTC, epoch)
		lsk.epochsTAI = append(lsk.epochsTAI, epoch+count-1)
		lsk.counts = append(lsk.counts, count)
	}
	return lsk, nil
}

// parseKernelDate reads dates of the form "1972-JAN-1".
func parseKernelDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("malformed leap second date `%s`", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("malformed leap second date `%s`", s)
	}
	month, ok := kernelMonths[strings.ToUpper(parts[1])]
	if !ok {
		return Date{}, fmt.Errorf("unknown month in leap second date `%s`", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("malformed leap second date `%s`", s)
	}
	return NewDate(year, month, day)
}

// DeltaTAIUTC returns TAI minus UTC at a TAI instant.
func (k *LeapSecondsKernel) DeltaTAIUTC(tai Time) (TimeDelta, bool) {
	ls, ok := lookupLeapSeconds(k.epochsTAI, k.counts, tai.Seconds())
	if !ok {
		return TimeDelta{}, false
	}
	return DeltaFromSeconds(ls), true
}

// DeltaUTCTAI returns UTC minus TAI at a UTC instant.
func (k *LeapSecondsKernel) DeltaUTCTAI(utc UTC) (TimeDelta, bool) {
	ls, ok := lookupLeapSeconds(k.epochsUTC, k.counts, utc.ToDelta().Seconds)
	if !ok {
		return TimeDelta{}, false
	}
	if utc.Second() == 60 {
		ls--
	}
	return DeltaFromSeconds(-ls), true
}

// IsLeapSecondDate reports whether a leap second is inserted at the end of
// the given date.
func (k *LeapSecondsKernel) IsLeapSecondDate(date Date) bool {
	day := int64(date.J2000DayNumber())
	for _, epoch := range k.epochsUTC {
		if floorDiv(epoch, SecondsPerDay) == day {
			return true
		}
	}
	return false
}

// IsLeapSecond reports whether the TAI instant falls within a leap second.
func (k *LeapSecondsKernel) IsLeapSecond(tai Time) bool {
	_, found := slices.BinarySearch(k.epochsTAI, tai.Seconds())
	return found
}
