package astrotime

import (
	"errors"
	"math"
	"testing"
)

func TestDeltaFromDecimalSeconds(t *testing.T) {
	tests := []struct {
		name          string
		value         float64
		wantSeconds   int64
		wantSubsecond Subsecond
	}{
		{name: "zero", value: 0.0, wantSeconds: 0, wantSubsecond: 0},
		{name: "negative zero", value: math.Copysign(0, -1), wantSeconds: 0, wantSubsecond: 0},
		{name: "fraction", value: 0.3, wantSeconds: 0, wantSubsecond: 0.3},
		{name: "negative fraction", value: -0.3, wantSeconds: -1, wantSubsecond: 0.7},
		{name: "mixed", value: 1.5, wantSeconds: 1, wantSubsecond: 0.5},
		{name: "negative mixed", value: -1.5, wantSeconds: -2, wantSubsecond: 0.5},
		{name: "whole day", value: 86400.5, wantSeconds: 86400, wantSubsecond: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeltaFromDecimalSeconds(tt.value)
			if err != nil {
				t.Fatalf("DeltaFromDecimalSeconds(%v) error = %v", tt.value, err)
			}
			if got.Seconds != tt.wantSeconds || !got.Subsecond.Equal(tt.wantSubsecond) {
				t.Errorf("DeltaFromDecimalSeconds(%v) = %v, want {%d %v}",
					tt.value, got, tt.wantSeconds, tt.wantSubsecond)
			}
		})
	}
}

func TestDeltaFromDecimalSecondsErrors(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		wantDetail string
	}{
		{name: "NaN", value: math.NaN(), wantDetail: "NaN is unrepresentable"},
		{
			name:       "too large",
			value:      1e19,
			wantDetail: "input seconds cannot exceed the maximum value of an int64",
		},
		{
			name:       "too small",
			value:      -1e19,
			wantDetail: "input seconds cannot be less than the minimum value of an int64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeltaFromDecimalSeconds(tt.value)
			var deltaErr *TimeDeltaError
			if !errors.As(err, &deltaErr) {
				t.Fatalf("DeltaFromDecimalSeconds(%v) error = %v, want TimeDeltaError", tt.value, err)
			}
			if deltaErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", deltaErr.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDeltaFromUnits(t *testing.T) {
	tests := []struct {
		name string
		got  func() (TimeDelta, error)
		want int64
	}{
		{name: "one minute", got: func() (TimeDelta, error) { return DeltaFromMinutes(1) }, want: 60},
		{name: "one hour", got: func() (TimeDelta, error) { return DeltaFromHours(1) }, want: 3600},
		{name: "one day", got: func() (TimeDelta, error) { return DeltaFromDays(1) }, want: 86400},
		{name: "one Julian year", got: func() (TimeDelta, error) { return DeltaFromJulianYears(1) }, want: 31557600},
		{name: "one Julian century", got: func() (TimeDelta, error) { return DeltaFromJulianCenturies(1) }, want: 3155760000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatal(err)
			}
			if got.Seconds != tt.want || got.Subsecond != 0 {
				t.Errorf("got %v, want {%d 0}", got, tt.want)
			}
		})
	}
}

func TestDeltaAdd(t *testing.T) {
	tests := []struct {
		name string
		lhs  TimeDelta
		rhs  TimeDelta
		want TimeDelta
	}{
		{
			name: "no carry",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.3},
			rhs:  TimeDelta{Seconds: 1, Subsecond: 0.6},
			want: TimeDelta{Seconds: 2, Subsecond: 0.9},
		},
		{
			name: "carry",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.3},
			rhs:  TimeDelta{Seconds: 1, Subsecond: 0.9},
			want: TimeDelta{Seconds: 3, Subsecond: 0.2},
		},
		{
			name: "negative rhs",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.6},
			rhs:  TimeDelta{Seconds: -2, Subsecond: 0.7},
			want: TimeDelta{Seconds: 0, Subsecond: 0.3},
		},
		{
			name: "negative rhs with borrow",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.6},
			rhs:  TimeDelta{Seconds: -2, Subsecond: 0.3},
			want: TimeDelta{Seconds: -1, Subsecond: 0.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lhs.Add(tt.rhs)
			if got.Seconds != tt.want.Seconds || !got.Subsecond.Equal(tt.want.Subsecond) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

func TestDeltaSub(t *testing.T) {
	tests := []struct {
		name string
		lhs  TimeDelta
		rhs  TimeDelta
		want TimeDelta
	}{
		{
			name: "no borrow",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.9},
			rhs:  TimeDelta{Seconds: 1, Subsecond: 0.3},
			want: TimeDelta{Seconds: 0, Subsecond: 0.6},
		},
		{
			name: "borrow",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.3},
			rhs:  TimeDelta{Seconds: 1, Subsecond: 0.4},
			want: TimeDelta{Seconds: -1, Subsecond: 0.9},
		},
		{
			name: "negative rhs",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.6},
			rhs:  TimeDelta{Seconds: -1, Subsecond: 0.7},
			want: TimeDelta{Seconds: 1, Subsecond: 0.9},
		},
		{
			name: "negative rhs with carry",
			lhs:  TimeDelta{Seconds: 1, Subsecond: 0.9},
			rhs:  TimeDelta{Seconds: -1, Subsecond: 0.3},
			want: TimeDelta{Seconds: 2, Subsecond: 0.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.lhs.Sub(tt.rhs)
			if got.Seconds != tt.want.Seconds || !got.Subsecond.Equal(tt.want.Subsecond) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

func TestDeltaNeg(t *testing.T) {
	tests := []struct {
		name  string
		delta TimeDelta
		want  TimeDelta
	}{
		{name: "zero", delta: TimeDelta{}, want: TimeDelta{}},
		{name: "whole seconds", delta: TimeDelta{Seconds: 5}, want: TimeDelta{Seconds: -5}},
		{
			name:  "positive with fraction",
			delta: TimeDelta{Seconds: 1, Subsecond: 0.5},
			want:  TimeDelta{Seconds: -2, Subsecond: 0.5},
		},
		{
			name:  "negative with fraction",
			delta: TimeDelta{Seconds: -2, Subsecond: 0.5},
			want:  TimeDelta{Seconds: 1, Subsecond: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.delta.Neg()
			if got != tt.want {
				t.Errorf("%v.Neg() = %v, want %v", tt.delta, got, tt.want)
			}
			if back := got.Neg(); back != tt.delta {
				t.Errorf("double negation of %v = %v", tt.delta, back)
			}
		})
	}
}

func TestDeltaScale(t *testing.T) {
	tests := []struct {
		name   string
		delta  TimeDelta
		factor float64
		want   TimeDelta
	}{
		{
			name:   "doubling with carry",
			delta:  TimeDelta{Seconds: 10, Subsecond: 0.5},
			factor: 2,
			want:   TimeDelta{Seconds: 21, Subsecond: 0},
		},
		{
			name:   "negative factor",
			delta:  TimeDelta{Seconds: 10, Subsecond: 0.5},
			factor: -2,
			want:   TimeDelta{Seconds: -21, Subsecond: 0},
		},
		{
			name:   "halving",
			delta:  TimeDelta{Seconds: 1, Subsecond: 0.25},
			factor: 0.5,
			want:   TimeDelta{Seconds: 0, Subsecond: 0.625},
		},
		{
			name:   "negative delta",
			delta:  TimeDelta{Seconds: -2, Subsecond: 0.5},
			factor: 2,
			want:   TimeDelta{Seconds: -3, Subsecond: 0},
		},
		{
			name:   "negative delta and factor",
			delta:  TimeDelta{Seconds: -2, Subsecond: 0.5},
			factor: -2,
			want:   TimeDelta{Seconds: 3, Subsecond: 0},
		},
		{
			name:   "zero factor",
			delta:  TimeDelta{Seconds: 10, Subsecond: 0.5},
			factor: 0,
			want:   TimeDelta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.delta.Scale(tt.factor)
			if got.Seconds != tt.want.Seconds || !got.Subsecond.Equal(tt.want.Subsecond) {
				t.Errorf("%v.Scale(%v) = %v, want %v", tt.delta, tt.factor, got, tt.want)
			}
		})
	}
}

func TestDeltaSigns(t *testing.T) {
	neg := TimeDelta{Seconds: -1, Subsecond: 0.7}
	pos := TimeDelta{Seconds: 0, Subsecond: 0.3}
	zero := TimeDelta{}

	if !neg.IsNegative() || neg.IsPositive() || neg.IsZero() {
		t.Errorf("sign predicates wrong for %v", neg)
	}
	if pos.IsNegative() || !pos.IsPositive() || pos.IsZero() {
		t.Errorf("sign predicates wrong for %v", pos)
	}
	if zero.IsNegative() || zero.IsPositive() || !zero.IsZero() {
		t.Errorf("sign predicates wrong for %v", zero)
	}
}

func TestDeltaCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeDelta
		want int
	}{
		{name: "equal", a: TimeDelta{Seconds: 1, Subsecond: 0.5}, b: TimeDelta{Seconds: 1, Subsecond: 0.5}, want: 0},
		{name: "seconds differ", a: TimeDelta{Seconds: 1}, b: TimeDelta{Seconds: 2}, want: -1},
		{name: "subseconds differ", a: TimeDelta{Seconds: 1, Subsecond: 0.6}, b: TimeDelta{Seconds: 1, Subsecond: 0.5}, want: 1},
		{name: "negative less than positive", a: TimeDelta{Seconds: -1, Subsecond: 0.9}, b: TimeDelta{}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("%v.Cmp(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDeltaJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		delta    TimeDelta
		epoch    Epoch
		unit     Unit
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 as Julian date",
			delta:    TimeDelta{},
			epoch:    EpochJulianDate,
			unit:     UnitDays,
			expected: 2451545.0,
		},
		{
			name:     "J2000 midnight as modified Julian date",
			delta:    TimeDelta{Seconds: -43200},
			epoch:    EpochModifiedJulianDate,
			unit:     UnitDays,
			expected: 51544.5,
		},
		{
			name:     "half a century",
			delta:    TimeDelta{Seconds: SecondsPerJulianCentury / 2},
			epoch:    EpochJ2000,
			unit:     UnitCenturies,
			expected: 0.5,
		},
		{
			name:     "seconds are the identity",
			delta:    TimeDelta{Seconds: 123, Subsecond: 0.25},
			epoch:    EpochJ2000,
			unit:     UnitSeconds,
			expected: 123.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.delta.JulianDate(tt.epoch, tt.unit)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDeltaRange(t *testing.T) {
	collect := func(start, end, step TimeDelta) []int64 {
		var out []int64
		for d := range DeltaRange(start, end, step) {
			out = append(out, d.Seconds)
		}
		return out
	}

	tests := []struct {
		name             string
		start, end, step int64
		want             []int64
	}{
		{name: "unit step", start: 0, end: 3, step: 1, want: []int64{0, 1, 2, 3}},
		{name: "uneven step", start: 0, end: 5, step: 2, want: []int64{0, 2, 4}},
		{name: "descending", start: 5, end: 0, step: -2, want: []int64{5, 3, 1}},
		{name: "zero step", start: 7, end: 100, step: 0, want: []int64{7}},
		{name: "empty ascent", start: 5, end: 0, step: 1, want: []int64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(DeltaFromSeconds(tt.start), DeltaFromSeconds(tt.end), DeltaFromSeconds(tt.step))
			if len(got) != len(tt.want) {
				t.Fatalf("DeltaRange yielded %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("DeltaRange yielded %v, want %v", got, tt.want)
				}
			}
		})
	}

	count := 0
	for range Range(0, 10) {
		count++
	}
	if count != 11 {
		t.Errorf("Range(0, 10) yielded %d deltas, want 11", count)
	}
}

func TestDeltaString(t *testing.T) {
	if got := DeltaFromSeconds(1).String(); got != "1 s" {
		t.Errorf("String() = %q, want %q", got, "1 s")
	}
	if got := (TimeDelta{Seconds: 1, Subsecond: 0.5}).String(); got != "1.5 s" {
		t.Errorf("String() = %q, want %q", got, "1.5 s")
	}
}
