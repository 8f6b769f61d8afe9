package astrotime

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// maxSubsecond is the largest fraction below one that survives a round trip
// through float64.
const maxSubsecond = Subsecond(0.999999999999999)

func TestTimeHour(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int64
		subsecond Subsecond
		want      int
	}{
		{name: "J2000 is noon", seconds: 0, want: 12},
		{name: "just before one o'clock", seconds: 3599, subsecond: maxSubsecond, want: 12},
		{name: "one o'clock", seconds: 3600, want: 13},
		{name: "midnight after J2000", seconds: 43200, want: 0},
		{name: "midnight before J2000", seconds: -43200, want: 0},
		{name: "25 hours after J2000", seconds: 90000, want: 13},
		{name: "just before noon", seconds: -1, subsecond: maxSubsecond, want: 11},
		{name: "eleven o'clock", seconds: -3600, want: 11},
		{name: "just before eleven", seconds: -3601, subsecond: maxSubsecond, want: 10},
		{name: "noon a day earlier", seconds: -86400, want: 12},
		{name: "25 hours before J2000", seconds: -90000, want: 11},
		{name: "noon two days earlier", seconds: -172800, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			time := NewTime(TAI, tt.seconds, tt.subsecond)
			if got := time.Hour(); got != tt.want {
				t.Errorf("Hour() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeMinute(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int64
		subsecond Subsecond
		want      int
	}{
		{name: "on the hour", seconds: 0, want: 0},
		{name: "one minute past", seconds: 60, want: 1},
		{name: "just before the hour", seconds: 3599, subsecond: maxSubsecond, want: 59},
		{name: "next hour", seconds: 3600, want: 0},
		{name: "one minute before noon", seconds: -60, want: 59},
		{name: "just before noon", seconds: -1, subsecond: maxSubsecond, want: 59},
		{name: "ninety seconds past", seconds: 90, want: 1},
		{name: "midnight", seconds: -43200, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			time := NewTime(TAI, tt.seconds, tt.subsecond)
			if got := time.Minute(); got != tt.want {
				t.Errorf("Minute() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeSecond(t *testing.T) {
	tests := []struct {
		name      string
		seconds   int64
		subsecond Subsecond
		want      int
	}{
		{name: "on the minute", seconds: 0, want: 0},
		{name: "one second past", seconds: 1, want: 1},
		{name: "last second of the minute", seconds: 59, want: 59},
		{name: "next minute", seconds: 60, want: 0},
		{name: "just before noon", seconds: -1, subsecond: maxSubsecond, want: 59},
		{name: "one second into next minute", seconds: 61, want: 1},
		{name: "a day less one second", seconds: 86399, want: 59},
		{name: "midnight", seconds: -43200, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			time := NewTime(TAI, tt.seconds, tt.subsecond)
			if got := time.Second(); got != tt.want {
				t.Errorf("Second() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeDate(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{name: "J2000", seconds: 0, want: "2000-01-01"},
		{name: "one day later", seconds: 86400, want: "2000-01-02"},
		{name: "one leap year later", seconds: 366 * 86400, want: "2001-01-01"},
		{name: "two years later", seconds: 731 * 86400, want: "2002-01-01"},
		{name: "one day earlier", seconds: -86400, want: "1999-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			time := NewTime(TT, tt.seconds, 0)
			if got := time.Date().String(); got != tt.want {
				t.Errorf("Date() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCivilTime(t *testing.T) {
	time, err := CivilTime(TAI, 2000, 1, 1, 0, 0, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if time.Seconds() != -43200 || time.Subsecond() != 0 {
		t.Errorf("CivilTime(2000-01-01T00:00:00) = %v", time)
	}

	noon, err := CivilTime(TT, 2000, 1, 1, 12, 0, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if noon.Seconds() != 0 || noon.Scale() != TT {
		t.Errorf("CivilTime(2000-01-01T12:00:00) = %v", noon)
	}

	if _, err := CivilTime(TAI, 2016, 12, 31, 23, 59, 60.0); !errors.Is(err, ErrLeapSecondOutsideUTC) {
		t.Errorf("CivilTime with second 60 error = %v, want ErrLeapSecondOutsideUTC", err)
	}
}

func TestTimeAddDelta(t *testing.T) {
	tests := []struct {
		name  string
		time  Time
		delta TimeDelta
		want  Time
	}{
		{
			name:  "no carry",
			time:  NewTime(TAI, 1, 0.3),
			delta: TimeDelta{Seconds: 1, Subsecond: 0.6},
			want:  NewTime(TAI, 2, 0.9),
		},
		{
			name:  "carry",
			time:  NewTime(TAI, 1, 0.3),
			delta: TimeDelta{Seconds: 1, Subsecond: 0.9},
			want:  NewTime(TAI, 3, 0.2),
		},
		{
			name:  "negative delta",
			time:  NewTime(TAI, 1, 0.6),
			delta: TimeDelta{Seconds: -2, Subsecond: 0.7},
			want:  NewTime(TAI, 0, 0.3),
		},
		{
			name:  "negative delta with borrow",
			time:  NewTime(TAI, 1, 0.6),
			delta: TimeDelta{Seconds: -2, Subsecond: 0.3},
			want:  NewTime(TAI, -1, 0.9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.time.Add(tt.delta)
			if got.Seconds() != tt.want.Seconds() || !got.Subsecond().Equal(tt.want.Subsecond()) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.time, tt.delta, got, tt.want)
			}
		})
	}
}

func TestTimeSubTime(t *testing.T) {
	tests := []struct {
		name string
		lhs  Time
		rhs  Time
		want TimeDelta
	}{
		{
			name: "no borrow",
			lhs:  NewTime(TAI, 1, 0.9),
			rhs:  NewTime(TAI, 1, 0.3),
			want: TimeDelta{Seconds: 0, Subsecond: 0.6},
		},
		{
			name: "borrow",
			lhs:  NewTime(TAI, 1, 0.3),
			rhs:  NewTime(TAI, 1, 0.4),
			want: TimeDelta{Seconds: -1, Subsecond: 0.9},
		},
		{
			name: "across J2000",
			lhs:  NewTime(TAI, 1, 0.6),
			rhs:  NewTime(TAI, -1, 0.7),
			want: TimeDelta{Seconds: 1, Subsecond: 0.9},
		},
		{
			name: "negative result",
			lhs:  NewTime(TAI, -2, 0.4),
			rhs:  NewTime(TAI, 1, 0.1),
			want: TimeDelta{Seconds: -3, Subsecond: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lhs.Sub(tt.rhs)
			if got.Seconds != tt.want.Seconds || !got.Subsecond.Equal(tt.want.Subsecond) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.lhs, tt.rhs, got, tt.want)
			}
			back := tt.rhs.Add(got)
			if back.Seconds() != tt.lhs.Seconds() || !back.Subsecond().Equal(tt.lhs.Subsecond()) {
				t.Errorf("adding the difference back gives %v, want %v", back, tt.lhs)
			}
		})
	}
}

func TestTimeFromEpoch(t *testing.T) {
	tests := []struct {
		name  string
		time  Time
		want  int64
		scale TimeScale
	}{
		{name: "Julian date epoch", time: JD0(TAI), want: -211813488000, scale: TAI},
		{name: "modified Julian date epoch", time: MJD0(TT), want: -4453444800, scale: TT},
		{name: "J1950", time: J1950(TDB), want: -1577880000, scale: TDB},
		{name: "J2000", time: J2000(TCB), want: 0, scale: TCB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.time.Seconds() != tt.want || tt.time.Subsecond() != 0 {
				t.Errorf("got %v, want %d s", tt.time, tt.want)
			}
			if tt.time.Scale() != tt.scale {
				t.Errorf("Scale() = %v, want %v", tt.time.Scale(), tt.scale)
			}
		})
	}
}

func TestTimeFromJulianDate(t *testing.T) {
	tests := []struct {
		name          string
		jd            float64
		epoch         Epoch
		wantSeconds   int64
		wantSubsecond Subsecond
	}{
		{name: "J2000", jd: 0, epoch: EpochJ2000, wantSeconds: 0},
		{name: "half a day", jd: 0.5, epoch: EpochJ2000, wantSeconds: 43200},
		{name: "Julian date of J2000", jd: 2451545.0, epoch: EpochJulianDate, wantSeconds: 0},
		{
			name:          "subsecond resolution",
			jd:            0.3 / 86400,
			epoch:         EpochJ2000,
			wantSeconds:   0,
			wantSubsecond: 0.3,
		},
		{name: "negative fraction", jd: -0.5, epoch: EpochJ2000, wantSeconds: -43200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeFromJulianDate(TAI, tt.jd, tt.epoch)
			if err != nil {
				t.Fatal(err)
			}
			if got.Seconds() != tt.wantSeconds || !got.Subsecond().Equal(tt.wantSubsecond) {
				t.Errorf("TimeFromJulianDate(%v) = %v, want %d s + %v",
					tt.jd, got, tt.wantSeconds, tt.wantSubsecond)
			}
		})
	}
}

func TestTimeFromJulianDateOutOfRange(t *testing.T) {
	for _, jd := range []float64{math.NaN(), 1e15, -1e15} {
		_, err := TimeFromJulianDate(TAI, jd, EpochJ2000)
		var rangeErr *JulianDateOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("TimeFromJulianDate(%v) error = %v, want JulianDateOutOfRangeError", jd, err)
		}
	}
}

func TestTimeFromTwoPartJulianDate(t *testing.T) {
	tests := []struct {
		name        string
		jd1, jd2    float64
		wantSeconds int64
	}{
		{name: "J2000 split at MJD", jd1: 2400000.5, jd2: 51544.5, wantSeconds: 0},
		{name: "date and fraction", jd1: 2451545.0, jd2: 0.5, wantSeconds: 43200},
		{name: "fractions in both parts", jd1: 2451545.25, jd2: 0.25, wantSeconds: 43200},
		{name: "swapped magnitudes", jd1: 0.5, jd2: 2451545.0, wantSeconds: 43200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeFromTwoPartJulianDate(TAI, tt.jd1, tt.jd2)
			if err != nil {
				t.Fatal(err)
			}
			if got.Seconds() != tt.wantSeconds || !got.Subsecond().Equal(0) {
				t.Errorf("TimeFromTwoPartJulianDate(%v, %v) = %v, want %d s",
					tt.jd1, tt.jd2, got, tt.wantSeconds)
			}
		})
	}
}

func TestTwoPartJulianDate(t *testing.T) {
	time, err := CivilTime(TAI, 2100, 1, 2, 0, 0, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	jd1, jd2 := time.TwoPartJulianDate()
	if jd1 != 2488070.0 || jd2 != 0.5 {
		t.Errorf("TwoPartJulianDate() = (%v, %v), want (2488070.0, 0.5)", jd1, jd2)
	}
}

func TestTimeJulianDateProjections(t *testing.T) {
	tests := []struct {
		name     string
		time     Time
		got      func(Time) float64
		expected float64
		tol      float64
	}{
		{
			name:     "days since J2000",
			time:     NewTime(TAI, 129600, 0.5),
			got:      Time.DaysSinceJ2000,
			expected: 1.5000057870370371,
		},
		{
			name:     "centuries since J2000",
			time:     NewTime(TAI, 4733640000, 0.5),
			got:      Time.CenturiesSinceJ2000,
			expected: 1.5000000001584404,
			tol:      1e-12,
		},
		{
			name:     "Julian date at J2000",
			time:     NewTime(TT, 0, 0),
			got:      func(t Time) float64 { return t.JulianDate(EpochJulianDate, UnitDays) },
			expected: 2451545.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(tt.time); math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTimeJulianCentury(t *testing.T) {
	time, err := CivilTime(TAI, 2100, 1, 1, 12, 0, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := time.SecondsSinceJ2000(); got != 3155760000 {
		t.Errorf("SecondsSinceJ2000() = %v, want 3155760000", got)
	}
	if got := time.DaysSinceJ2000(); got != 36525 {
		t.Errorf("DaysSinceJ2000() = %v, want 36525", got)
	}
	if got := time.CenturiesSinceJ2000(); got != 1 {
		t.Errorf("CenturiesSinceJ2000() = %v, want 1", got)
	}
}

func TestParseTimePerScale(t *testing.T) {
	for _, scale := range TimeScales() {
		iso := "2000-01-01T12:00:00.123 " + scale.Abbreviation()
		time, err := ParseTime(scale, iso)
		if err != nil {
			t.Fatalf("ParseTime(%v, %q) error = %v", scale, iso, err)
		}
		if time.Scale() != scale || time.Seconds() != 0 || !time.Subsecond().Equal(0.123) {
			t.Errorf("ParseTime(%v, %q) = %v", scale, iso, time)
		}
	}
}

func TestParseTimeErrors(t *testing.T) {
	tests := []struct {
		name      string
		scale     TimeScale
		iso       string
		wantInput string
	}{
		{name: "missing separator", scale: TAI, iso: "2000-01-01", wantInput: "2000-01-01"},
		{
			name:      "scale mismatch",
			scale:     TAI,
			iso:       "2000-01-01T12:00:00 TT",
			wantInput: "2000-01-01T12:00:00 TT",
		},
		{
			name:      "malformed date",
			scale:     TAI,
			iso:       "2000-01-0aT12:00:00",
			wantInput: "2000-01-0a",
		},
		{
			name:      "malformed time",
			scale:     TAI,
			iso:       "2000-01-01Tnoon",
			wantInput: "noon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTime(tt.scale, tt.iso)
			var isoErr *InvalidISOStringError
			if !errors.As(err, &isoErr) {
				t.Fatalf("ParseTime(%q) error = %v, want InvalidISOStringError", tt.iso, err)
			}
			if isoErr.Input != tt.wantInput {
				t.Errorf("Input = %q, want %q", isoErr.Input, tt.wantInput)
			}
		})
	}
}

func TestTimeDisplay(t *testing.T) {
	time := NewTime(TAI, 0, 0)
	if got := time.String(); got != "2000-01-01T12:00:00.000 TAI" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprintf("%.15v", time); got != "2000-01-01T12:00:00.000000000000000 TAI" {
		t.Errorf("%%.15v = %q", got)
	}
}

func TestTimeWithScale(t *testing.T) {
	time := NewTime(TAI, 1234, 0.5)
	tt := time.WithScale(TT)
	if tt.Scale() != TT || tt.Seconds() != 1234 || tt.Subsecond() != 0.5 {
		t.Errorf("WithScale(TT) = %v", tt)
	}
	shifted := time.WithScaleAndDelta(TDB, TimeDelta{Seconds: 10})
	if shifted.Scale() != TDB || shifted.Seconds() != 1244 {
		t.Errorf("WithScaleAndDelta(TDB, 10 s) = %v", shifted)
	}
}

func TestTimeIsClose(t *testing.T) {
	time := NewTime(TAI, 1000, 0.5)
	if !time.IsClose(NewTime(TAI, 1000, 0.5)) {
		t.Error("IsClose rejects an identical time")
	}
	if time.IsClose(NewTime(TAI, 1001, 0.5)) {
		t.Error("IsClose accepts a time a full second away")
	}
}

func TestTimeSubsecondComponents(t *testing.T) {
	time := NewTime(TAI, 0, 0.123456789012345)
	if time.Millisecond() != 123 || time.Microsecond() != 456 || time.Nanosecond() != 789 ||
		time.Picosecond() != 12 || time.Femtosecond() != 345 {
		t.Errorf("subsecond components of %v = %d %d %d %d %d", time,
			time.Millisecond(), time.Microsecond(), time.Nanosecond(),
			time.Picosecond(), time.Femtosecond())
	}
	if got := time.DecimalSeconds(); math.Abs(got-0.123456789012345) > 1e-15 {
		t.Errorf("DecimalSeconds() = %v", got)
	}
}
