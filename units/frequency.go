package units

import "fmt"

// SpeedOfLight is the speed of light in vacuum in m/s.
const SpeedOfLight = 299792458.0

// FrequencyBand is an IEEE letter code for frequency bands commonly
// used for satellite communications.
type FrequencyBand int

const (
	// BandHF covers 3 to 30 MHz.
	BandHF FrequencyBand = iota
	// BandVHF covers 30 to 300 MHz.
	BandVHF
	// BandUHF covers 0.3 to 1 GHz.
	BandUHF
	// BandL covers 1 to 2 GHz.
	BandL
	// BandS covers 2 to 4 GHz.
	BandS
	// BandC covers 4 to 8 GHz.
	BandC
	// BandX covers 8 to 12 GHz.
	BandX
	// BandKu covers 12 to 18 GHz.
	BandKu
	// BandK covers 18 to 27 GHz.
	BandK
	// BandKa covers 27 to 40 GHz.
	BandKa
	// BandV covers 40 to 75 GHz.
	BandV
	// BandW covers 75 to 110 GHz.
	BandW
	// BandG covers 110 to 300 GHz.
	BandG
)

// String returns the letter code of the band.
func (b FrequencyBand) String() string {
	names := [...]string{"HF", "VHF", "UHF", "L", "S", "C", "X", "Ku", "K", "Ka", "V", "W", "G"}
	if b < 0 || int(b) >= len(names) {
		return "unknown"
	}
	return names[b]
}

// Frequency is a frequency in Hertz.
type Frequency float64

// Hertz creates a frequency from a value in Hz.
func Hertz(hz float64) Frequency {
	return Frequency(hz)
}

// Kilohertz creates a frequency from a value in kHz.
func Kilohertz(khz float64) Frequency {
	return Frequency(khz * 1e3)
}

// Megahertz creates a frequency from a value in MHz.
func Megahertz(mhz float64) Frequency {
	return Frequency(mhz * 1e6)
}

// Gigahertz creates a frequency from a value in GHz.
func Gigahertz(ghz float64) Frequency {
	return Frequency(ghz * 1e9)
}

// Terahertz creates a frequency from a value in THz.
func Terahertz(thz float64) Frequency {
	return Frequency(thz * 1e12)
}

// ToHertz returns the value of the frequency in Hz.
func (f Frequency) ToHertz() float64 {
	return float64(f)
}

// ToMegahertz returns the value of the frequency in MHz.
func (f Frequency) ToMegahertz() float64 {
	return float64(f) * 1e-6
}

// ToGigahertz returns the value of the frequency in GHz.
func (f Frequency) ToGigahertz() float64 {
	return float64(f) * 1e-9
}

// Wavelength returns the wavelength of the frequency.
func (f Frequency) Wavelength() Distance {
	return Distance(SpeedOfLight / float64(f))
}

// Band returns the IEEE letter code if the frequency falls within one
// of the bands.
func (f Frequency) Band() (FrequencyBand, bool) {
	switch hz := float64(f); {
	case hz < 3e6:
		return 0, false
	case hz < 30e6:
		return BandHF, true
	case hz < 300e6:
		return BandVHF, true
	case hz < 1e9:
		return BandUHF, true
	case hz < 2e9:
		return BandL, true
	case hz < 4e9:
		return BandS, true
	case hz < 8e9:
		return BandC, true
	case hz < 12e9:
		return BandX, true
	case hz < 18e9:
		return BandKu, true
	case hz < 27e9:
		return BandK, true
	case hz < 40e9:
		return BandKa, true
	case hz < 75e9:
		return BandV, true
	case hz < 110e9:
		return BandW, true
	case hz < 300e9:
		return BandG, true
	default:
		return 0, false
	}
}

// String formats the frequency in GHz.
func (f Frequency) String() string {
	return fmt.Sprintf("%v GHz", f.ToGigahertz())
}
