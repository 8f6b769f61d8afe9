package eop

import (
	"os"
	"path/filepath"
	"testing"
)

// Ten days of synthetic finals data spanning the 2016-12-31 leap second.
// Every column varies linearly so that interpolated values are exact;
// UT1-UTC jumps by one second across the leap so that UT1-TAI stays
// linear throughout.
const finalsHeader = "MJD;Year;Month;Day;Type;x_pole;sigma_x_pole;y_pole;sigma_y_pole;" +
	"UT1-UTC;sigma_UT1-UTC;dPsi;sigma_dPsi;dEpsilon;sigma_dEpsilon;dX;sigma_dX;dY;sigma_dY\n"

const finals1980CSV = finalsHeader +
	`57749;2016;12;27;final;0.100000;0.000009;0.300000;0.000009;-0.5900000;0.0000030;-0.100;0.009;-0.010;0.006;;;;
57750;2016;12;28;final;0.101000;0.000009;0.298000;0.000009;-0.5902000;0.0000030;-0.097;0.009;-0.011;0.006;;;;
57751;2016;12;29;final;0.102000;0.000009;0.296000;0.000009;-0.5904000;0.0000030;-0.094;0.009;-0.012;0.006;;;;
57752;2016;12;30;final;0.103000;0.000009;0.294000;0.000009;-0.5906000;0.0000030;-0.091;0.009;-0.013;0.006;;;;
57753;2016;12;31;final;0.104000;0.000009;0.292000;0.000009;-0.5908000;0.0000030;-0.088;0.009;-0.014;0.006;;;;
57754;2017;1;1;final;0.105000;0.000009;0.290000;0.000009;0.4090000;0.0000030;-0.085;0.009;-0.015;0.006;;;;
57755;2017;1;2;final;0.106000;0.000009;0.288000;0.000009;0.4088000;0.0000030;-0.082;0.009;-0.016;0.006;;;;
57756;2017;1;3;final;0.107000;0.000009;0.286000;0.000009;0.4086000;0.0000030;-0.079;0.009;-0.017;0.006;;;;
57757;2017;1;4;final;0.108000;0.000009;0.284000;0.000009;0.4084000;0.0000030;-0.076;0.009;-0.018;0.006;;;;
57758;2017;1;5;final;0.109000;0.000009;0.282000;0.000009;0.4082000;0.0000030;-0.073;0.009;-0.019;0.006;;;;
`

const finals2000ACSV = finalsHeader +
	`57749;2016;12;27;final;0.100000;0.000009;0.300000;0.000009;-0.5900000;0.0000030;;;;;0.150;0.009;-0.200;0.006
57750;2016;12;28;final;0.101000;0.000009;0.298000;0.000009;-0.5902000;0.0000030;;;;;0.149;0.009;-0.198;0.006
57751;2016;12;29;final;0.102000;0.000009;0.296000;0.000009;-0.5904000;0.0000030;;;;;0.148;0.009;-0.196;0.006
57752;2016;12;30;final;0.103000;0.000009;0.294000;0.000009;-0.5906000;0.0000030;;;;;0.147;0.009;-0.194;0.006
57753;2016;12;31;final;0.104000;0.000009;0.292000;0.000009;-0.5908000;0.0000030;;;;;0.146;0.009;-0.192;0.006
57754;2017;1;1;final;0.105000;0.000009;0.290000;0.000009;0.4090000;0.0000030;;;;;0.145;0.009;-0.190;0.006
57755;2017;1;2;final;0.106000;0.000009;0.288000;0.000009;0.4088000;0.0000030;;;;;0.144;0.009;-0.188;0.006
57756;2017;1;3;final;0.107000;0.000009;0.286000;0.000009;0.4086000;0.0000030;;;;;0.143;0.009;-0.186;0.006
57757;2017;1;4;final;0.108000;0.000009;0.284000;0.000009;0.4084000;0.0000030;;;;;0.142;0.009;-0.184;0.006
57758;2017;1;5;final;0.109000;0.000009;0.282000;0.000009;0.4082000;0.0000030;;;;;0.141;0.009;-0.182;0.006
`

// Prediction rows past the observation horizon leave the data columns
// empty.
const finalsPredictionRows = `57759;2017;1;6;prediction;;;;;;;;;;;;;;
57760;2017;1;7;prediction;;;;;;;;;;;;;;
`

// UTC pseudo-seconds since J2000 of MJD 57749.
const fixtureStartSeconds = 536068800

// fixtureDeltaUT1TAI is the synthetic UT1-TAI offset at seconds since
// J2000, linear across the whole fixture range.
func fixtureDeltaUT1TAI(seconds float64) float64 {
	return -36.59 - 0.0002*(seconds-fixtureStartSeconds)/86400
}

func writeFinals(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
