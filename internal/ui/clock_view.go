package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/internal/orient"
	"github.com/litescript/ls-astro/internal/state"
	"github.com/litescript/ls-astro/units"
)

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("235")).Bold(true)
	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	accentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// ClockModel renders the time-scale clock and the Earth orientation
// readout. One row per scale; the cursor selects a row and expands it
// into Julian date detail.
type ClockModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
	lastErr  error
}

func NewClockModel() ClockModel {
	return ClockModel{}
}

func (m ClockModel) SetSize(width, height int) ClockModel {
	m.width = width
	m.height = height
	return m
}

func (m ClockModel) UpdateData(snapshot state.Snapshot) ClockModel {
	m.snapshot = snapshot
	m.lastErr = nil
	if n := m.rowCount(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	return m
}

func (m ClockModel) SetError(err error) ClockModel {
	m.lastErr = err
	return m
}

// rowCount is the UTC row plus one row per time scale.
func (m ClockModel) rowCount() int {
	if m.snapshot.Readout == nil {
		return 0
	}
	return 1 + len(m.snapshot.Readout.Scales)
}

func (m ClockModel) Update(msg tea.Msg) (ClockModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := m.rowCount()
	if n == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = n - 1
	}
	return m, nil
}

func (m ClockModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", m.lastErr)))
		b.WriteString("\n\n")
	}

	r := m.snapshot.Readout
	if r == nil {
		b.WriteString(dimStyle.Render("Waiting for first readout..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderScales(r))
	b.WriteString("\n")
	b.WriteString(m.renderEarth(r))
	b.WriteString(m.renderEvents())
	return b.String()
}

func (m ClockModel) renderScales(r *orient.Readout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Time Scales"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf(" %-5s %-36s %18s ", "SCALE", "INSTANT", "OFFSET TO TAI")))
	b.WriteString("\n")

	for i := 0; i < m.rowCount(); i++ {
		label, text, offset := m.rowColumns(r, i)
		line := fmt.Sprintf(" %-5s %-36s %18s ", label, text, offset)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("   " + m.detailLine(r)))
	b.WriteString("\n")
	return b.String()
}

// rowColumns returns the label, instant text, and offset column for row i.
// Row 0 is UTC; the remaining rows follow Readout.Scales.
func (m ClockModel) rowColumns(r *orient.Readout, i int) (string, string, string) {
	if i == 0 {
		return "UTC", fmt.Sprintf("%.9v", r.UTC), orient.FormatOffset(-r.TaiMinusUtc)
	}
	row := r.Scales[i-1]
	if row.Err != nil {
		return row.Scale.Abbreviation(), "unavailable", ""
	}
	return row.Scale.Abbreviation(), fmt.Sprintf("%.9v", row.Time), orient.FormatOffset(row.OffsetTAI)
}

// detailLine expands the selected row: epoch day counts for UTC, Julian
// dates for a time scale, or the conversion error for an unavailable one.
func (m ClockModel) detailLine(r *orient.Readout) string {
	if m.cursor == 0 {
		return fmt.Sprintf("TAI-UTC %+.3f s · day of year %03d", r.TaiMinusUtc, r.UTC.Date().DayOfYear())
	}
	row := r.Scales[m.cursor-1]
	if row.Err != nil {
		return row.Err.Error()
	}
	return fmt.Sprintf("JD %.6f · MJD %.6f · J2000 %+.3f s",
		row.Time.JulianDate(astrotime.EpochJulianDate, astrotime.UnitDays),
		row.Time.JulianDate(astrotime.EpochModifiedJulianDate, astrotime.UnitDays),
		row.Time.SecondsSinceJ2000())
}

func (m ClockModel) renderEarth(r *orient.Readout) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Earth Orientation"))
	b.WriteString("\n")

	era := fmt.Sprintf("  %-5s %-16s ", "ERA", orient.FormatDegrees(r.Earth.Era))
	b.WriteString(rowStyle.Render(era))
	b.WriteString(accentStyle.Render(sparkline(m.snapshot.EraHistory, 24)))
	b.WriteString("\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("  %-5s %s", "GMST", orient.FormatHMS(r.Earth.Gmst))))
	b.WriteString("\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("  %-5s %s", "GAST", orient.FormatHMS(r.Earth.Gast))))
	b.WriteString("\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("  %-5s %s", "EqEq", orient.FormatArcseconds(r.Earth.EqEquinoxes))))
	b.WriteString("\n")

	if r.Earth.Approximate {
		b.WriteString(warnStyle.Render("  UT1 approximated by UTC; angles good to the current UT1-UTC offset"))
		b.WriteString("\n")
	}
	if r.EOP != nil {
		if r.EOP.Err != nil {
			b.WriteString(warnStyle.Render(fmt.Sprintf("  EOP unavailable: %v", r.EOP.Err)))
		} else {
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-5s x %s  y %s   ΔUT1 %+.7f s",
				"Pole",
				orient.FormatArcseconds(units.Arcseconds(r.EOP.XPole)),
				orient.FormatArcseconds(units.Arcseconds(r.EOP.YPole)),
				r.EOP.DeltaUT1UTC)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m ClockModel) renderEvents() string {
	events := m.snapshot.Events
	if len(events) == 0 {
		return ""
	}
	if len(events) > 3 {
		events = events[len(events)-3:]
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")
	for _, ev := range events {
		line := fmt.Sprintf("  %s  %-12s", ev.Timestamp.Format("15:04:05"), ev.Type)
		if ev.Type == state.EventLeapSecond {
			line += fmt.Sprintf("  TAI-UTC %.0f -> %.0f s", ev.OldOffset, ev.NewOffset)
		}
		b.WriteString(warnStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the newest samples normalized over the visible window.
func sparkline(samples []state.Sample, width int) string {
	if len(samples) == 0 || width <= 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	lo, hi := samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		if s.Value < lo {
			lo = s.Value
		}
		if s.Value > hi {
			hi = s.Value
		}
	}
	span := hi - lo

	var b strings.Builder
	for _, s := range samples {
		idx := 0
		if span > 0 {
			idx = int((s.Value - lo) / span * float64(len(sparkRunes)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(sparkRunes) {
				idx = len(sparkRunes) - 1
			}
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
