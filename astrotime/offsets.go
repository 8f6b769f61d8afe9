package astrotime

import (
	"errors"
	"fmt"
	"math"
)

// ErrMissingEOPProvider is returned when a conversion touches UT1 but no
// Earth orientation provider was supplied.
var ErrMissingEOPProvider = errors.New("conversions involving UT1 require an EOP provider")

// UT1Provider supplies the measured offset between UT1 and TAI.
// Implementations must be safe for concurrent use.
type UT1Provider interface {
	// DeltaUT1TAI returns UT1 minus TAI at a TAI instant given as seconds
	// since J2000.
	DeltaUT1TAI(tai TimeDelta) (TimeDelta, error)

	// DeltaTAIUT1 returns TAI minus UT1 at a UT1 instant given as seconds
	// since J2000.
	DeltaTAIUT1(ut1 TimeDelta) (TimeDelta, error)
}

// Defining constants of the relativistic scales, IERS Conventions 2010,
// chapter 10.
const (
	lgRate = 6.969290134e-10
	lbRate = 1.550519768e-8

	invLG = lgRate / (1.0 - lgRate)
	invLB = lbRate / (1.0 - lbRate)

	// 1977-01-01T00:00:00.000 TAI expressed in TT seconds since J2000.
	j77TT = -7.25803167816e8

	tdb0  = -6.55e-5
	tt0   = -SecondsBetweenJ1977AndJ2000 + 32.184
	tcb77 = tdb0 + lbRate*tt0

	// Coefficients of the Fairhead-Bretagnon approximation of TDB-TT.
	tdbK  = 1.657e-3
	tdbEB = 1.671e-2
	tdbM0 = 6.239996
	tdbM1 = 1.99096871e-7
)

// TT leads TAI by a constant 32.184 s.
var deltaTAITT = TimeDelta{Seconds: 32, Subsecond: Subsecond(0.184)}

// Offset returns target minus origin at the instant given as seconds since
// J2000 in the origin scale. Conversions involving UT1 fail with
// ErrMissingEOPProvider; use TryOffset for those.
func Offset(origin, target TimeScale, delta TimeDelta) (TimeDelta, error) {
	return TryOffset(origin, target, delta, nil)
}

// TryOffset returns target minus origin at the instant given as seconds
// since J2000 in the origin scale, consulting the provider for UT1 offsets.
func TryOffset(origin, target TimeScale, delta TimeDelta, provider UT1Provider) (TimeDelta, error) {
	if origin == target {
		return TimeDelta{}, nil
	}
	if origin == UT1 || target == UT1 {
		return ut1Offset(origin, target, delta, provider)
	}
	return offset(origin, target, delta), nil
}

// offset dispatches between the continuous scales. Pairs without a defining
// relation are chained through TT or TDB.
func offset(origin, target TimeScale, delta TimeDelta) TimeDelta {
	if origin == target {
		return TimeDelta{}
	}
	switch origin {
	case TAI:
		switch target {
		case TT:
			return deltaTAITT
		case TCB:
			return offsetMulti(origin, TDB, target, delta)
		case TCG, TDB:
			return offsetMulti(origin, TT, target, delta)
		}
	case TCB:
		switch target {
		case TDB:
			return tcbToTDB(delta)
		case TAI, TCG, TT:
			return offsetMulti(origin, TDB, target, delta)
		}
	case TCG:
		switch target {
		case TT:
			return tcgToTT(delta)
		case TCB:
			return offsetMulti(origin, TDB, target, delta)
		case TAI, TDB:
			return offsetMulti(origin, TT, target, delta)
		}
	case TDB:
		switch target {
		case TCB:
			return tdbToTCB(delta)
		case TT:
			return tdbToTT(delta)
		case TAI, TCG:
			return offsetMulti(origin, TT, target, delta)
		}
	case TT:
		switch target {
		case TAI:
			return deltaTAITT.Neg()
		case TCG:
			return ttToTCG(delta)
		case TDB:
			return ttToTDB(delta)
		case TCB:
			return offsetMulti(origin, TDB, target, delta)
		}
	}
	panic(fmt.Sprintf("no offset path from %s to %s", origin, target))
}

// offsetMulti chains two legs, evaluating the second at the instant shifted
// by the first.
func offsetMulti(origin, via, target TimeScale, delta TimeDelta) TimeDelta {
	off1 := offset(origin, via, delta)
	off2 := offset(via, target, delta.Add(off1))
	return off1.Add(off2)
}

func ut1Offset(origin, target TimeScale, delta TimeDelta, provider UT1Provider) (TimeDelta, error) {
	if provider == nil {
		return TimeDelta{}, ErrMissingEOPProvider
	}
	switch {
	case origin == TAI && target == UT1:
		return provider.DeltaUT1TAI(delta)
	case origin == UT1 && target == TAI:
		return provider.DeltaTAIUT1(delta)
	case origin == UT1:
		off1, err := provider.DeltaTAIUT1(delta)
		if err != nil {
			return TimeDelta{}, err
		}
		off2 := offset(TAI, target, delta.Add(off1))
		return off1.Add(off2), nil
	default:
		off1 := offset(origin, TAI, delta)
		off2, err := provider.DeltaUT1TAI(delta.Add(off1))
		if err != nil {
			return TimeDelta{}, err
		}
		return off1.Add(off2), nil
	}
}

func ttToTCG(delta TimeDelta) TimeDelta {
	return deltaFromDecimalSeconds(invLG * (delta.ToDecimalSeconds() - j77TT))
}

func tcgToTT(delta TimeDelta) TimeDelta {
	return deltaFromDecimalSeconds(-lgRate * (delta.ToDecimalSeconds() - j77TT))
}

func tdbToTCB(delta TimeDelta) TimeDelta {
	return deltaFromDecimalSeconds(-tcb77/(1.0-lbRate) + invLB*delta.ToDecimalSeconds())
}

func tcbToTDB(delta TimeDelta) TimeDelta {
	return deltaFromDecimalSeconds(tcb77 - lbRate*delta.ToDecimalSeconds())
}

func ttToTDB(delta TimeDelta) TimeDelta {
	tt := delta.ToDecimalSeconds()
	g := tdbM0 + tdbM1*tt
	return deltaFromDecimalSeconds(tdbK * math.Sin(g+tdbEB*math.Sin(g)))
}

// tdbToTT inverts the TT to TDB relation with two fixed-point iterations,
// which is accurate to well below a femtosecond.
func tdbToTT(delta TimeDelta) TimeDelta {
	tdb := delta.ToDecimalSeconds()
	tt := tdb
	var raw float64
	for range 2 {
		g := tdbM0 + tdbM1*tt
		raw = -tdbK * math.Sin(g+tdbEB*math.Sin(g))
		tt = tdb + raw
	}
	return deltaFromDecimalSeconds(raw)
}

// ToScale converts the instant to another continuous scale. Conversions
// involving UT1 fail with ErrMissingEOPProvider; use TryToScale for those.
func (t Time) ToScale(target TimeScale) (Time, error) {
	return t.TryToScale(target, nil)
}

// TryToScale converts the instant to another scale, consulting the provider
// for UT1 offsets.
func (t Time) TryToScale(target TimeScale, provider UT1Provider) (Time, error) {
	off, err := TryOffset(t.scale, target, t.ToDelta(), provider)
	if err != nil {
		return Time{}, err
	}
	return TimeFromDelta(target, t.ToDelta().Add(off)), nil
}
