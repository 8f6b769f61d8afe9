package units

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestFrequencyConversions(t *testing.T) {
	if got, want := Gigahertz(2.4).ToHertz(), Megahertz(2400).ToHertz(); got != want {
		t.Errorf("2.4 GHz = %v Hz, 2400 MHz = %v Hz", got, want)
	}
	if got := Kilohertz(1).ToHertz(); got != 1000 {
		t.Errorf("Kilohertz(1) = %v Hz, want 1000", got)
	}
	if got := Terahertz(1).ToHertz(); got != 1e12 {
		t.Errorf("Terahertz(1) = %v Hz, want 1e12", got)
	}
}

func TestFrequencyWavelength(t *testing.T) {
	if got := Gigahertz(1).Wavelength().ToMeters(); !scalar.EqualWithinRel(got, 0.299792458, 1e-9) {
		t.Errorf("Wavelength(1 GHz) = %v m, want 0.299792458 m", got)
	}
	if got := Hertz(SpeedOfLight).Wavelength().ToMeters(); !scalar.EqualWithinRel(got, 1.0, 1e-10) {
		t.Errorf("Wavelength(c Hz) = %v m, want 1 m", got)
	}
}

func TestFrequencyBand(t *testing.T) {
	tests := []struct {
		name     string
		f        Frequency
		expected FrequencyBand
		ok       bool
	}{
		{"below HF", Hertz(0), 0, false},
		{"HF", Megahertz(3), BandHF, true},
		{"VHF", Megahertz(30), BandVHF, true},
		{"UHF", Megahertz(300), BandUHF, true},
		{"L", Gigahertz(1), BandL, true},
		{"S", Gigahertz(2), BandS, true},
		{"C", Gigahertz(4), BandC, true},
		{"X", Gigahertz(8), BandX, true},
		{"Ku", Gigahertz(12), BandKu, true},
		{"K", Gigahertz(18), BandK, true},
		{"Ka", Gigahertz(27), BandKa, true},
		{"V", Gigahertz(40), BandV, true},
		{"W", Gigahertz(75), BandW, true},
		{"G", Gigahertz(110), BandG, true},
		{"above G", Terahertz(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.f.Band()
			if ok != tt.ok {
				t.Fatalf("Band() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Band() = %v, want %v", got, tt.expected)
			}
		})
	}
}
