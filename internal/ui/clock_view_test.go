package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClockModelViewWaiting(t *testing.T) {
	m := NewClockModel()
	if !strings.Contains(m.View(), "Waiting for first readout") {
		t.Error("expected waiting placeholder without data")
	}
}

func TestClockModelRowCount(t *testing.T) {
	m := NewClockModel()
	if got := m.rowCount(); got != 0 {
		t.Errorf("rowCount without data = %d, want 0", got)
	}
	m = m.UpdateData(testSnapshot(t))
	// The UTC row plus TAI, TCB, TCG, TDB, TT, and UT1.
	if got := m.rowCount(); got != 7 {
		t.Errorf("rowCount = %d, want 7", got)
	}
}

func TestClockModelCursorNavigation(t *testing.T) {
	m := NewClockModel().UpdateData(testSnapshot(t))

	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != 3 {
		t.Errorf("cursor after 3 downs = %d, want 3", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 2 {
		t.Errorf("cursor after up = %d, want 2", m.cursor)
	}

	m, _ = m.Update(keyMsg('G'))
	if m.cursor != 6 {
		t.Errorf("cursor after end = %d, want 6", m.cursor)
	}

	m, _ = m.Update(keyMsg('j'))
	if m.cursor != 6 {
		t.Errorf("cursor must clamp at last row, got %d", m.cursor)
	}

	m, _ = m.Update(keyMsg('g'))
	if m.cursor != 0 {
		t.Errorf("cursor after home = %d, want 0", m.cursor)
	}

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Errorf("cursor must clamp at first row, got %d", m.cursor)
	}
}

func TestClockModelViewRendersScales(t *testing.T) {
	m := NewClockModel().UpdateData(testSnapshot(t))
	view := m.View()

	wants := []string{
		"Time Scales",
		"OFFSET TO TAI",
		"2024-07-05T09:09:18.173000000 UTC",
		"2024-07-05T09:09:55.173000000 TAI",
		"+32.184000000 s", // TT
		"unavailable",     // UT1 without an EOP provider
		"Earth Orientation",
		"ERA",
		"GMST",
		"GAST",
		"EqEq",
		"UT1 approximated by UTC",
	}
	for _, want := range wants {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestClockModelDetailLine(t *testing.T) {
	snap := testSnapshot(t)
	m := NewClockModel().UpdateData(snap)
	r := snap.Readout

	// UTC row: offset to TAI and day of year.
	if got := m.detailLine(r); !strings.Contains(got, "TAI-UTC +37.000") {
		t.Errorf("UTC detail = %q", got)
	}

	// TT row: Julian date breakdown.
	m.cursor = 5
	got := m.detailLine(r)
	if !strings.Contains(got, "JD 2460496.") || !strings.Contains(got, "MJD 60496.") {
		t.Errorf("TT detail = %q", got)
	}

	// UT1 row: the conversion error.
	m.cursor = 6
	if got := m.detailLine(r); !strings.Contains(got, "EOP provider") {
		t.Errorf("UT1 detail = %q", got)
	}
}

func TestClockModelErrorBanner(t *testing.T) {
	m := NewClockModel().SetError(errors.New("system clock: bad"))
	if !strings.Contains(m.View(), "system clock: bad") {
		t.Error("expected error banner")
	}

	// A successful update clears the banner.
	m = m.UpdateData(testSnapshot(t))
	if strings.Contains(m.View(), "system clock: bad") {
		t.Error("expected banner cleared after data update")
	}
}

func TestClockModelIgnoresNonKeyMsgs(t *testing.T) {
	m := NewClockModel().UpdateData(testSnapshot(t))
	before := m.cursor
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || m.cursor != before {
		t.Error("non-key message must not move the cursor")
	}
}
