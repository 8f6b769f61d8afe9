package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-astro/bodies"
	"github.com/litescript/ls-astro/earth"
	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/internal/state"
)

// defaultFrameChoices spans every chain of the frame graph: the CIO-based
// chain, TEME, the IERS 2010 equinox-based chain, and a few IAU body-fixed
// frames.
var defaultFrameChoices = []frames.Frame{
	frames.ICRF,
	frames.CIRF,
	frames.TIRF,
	frames.ITRF,
	frames.TEME,
	frames.MOD(earth.Iers2010),
	frames.TOD(earth.Iers2010),
	frames.PEF(earth.Iers2010),
	frames.IAU(bodies.Earth),
	frames.IAU(bodies.Moon),
	frames.IAU(bodies.Mars),
}

// FramesModel renders the rotation inspector: two selector strips for the
// origin and target frame and the rotation matrix between them at the
// current instant. Changing the selection emits a FramePairChangedMsg so
// the root model can recompute without waiting for the next refresh.
type FramesModel struct {
	width     int
	height    int
	choices   []frames.Frame
	origin    int
	target    int
	showDeriv bool
	snapshot  state.Snapshot
}

func NewFramesModel() FramesModel {
	return FramesModel{
		choices: append([]frames.Frame(nil), defaultFrameChoices...),
		origin:  0,
		target:  8,
	}
}

// WithPair selects the given frames, appending any that are not among the
// default choices.
func (m FramesModel) WithPair(from, to frames.Frame) FramesModel {
	m.origin = m.indexOf(from)
	m.target = m.indexOf(to)
	return m
}

func (m *FramesModel) indexOf(f frames.Frame) int {
	for i, c := range m.choices {
		if c == f {
			return i
		}
	}
	m.choices = append(m.choices, f)
	return len(m.choices) - 1
}

func (m FramesModel) SetSize(width, height int) FramesModel {
	m.width = width
	m.height = height
	return m
}

func (m FramesModel) UpdateData(snapshot state.Snapshot) FramesModel {
	m.snapshot = snapshot
	return m
}

func (m FramesModel) Update(msg tea.Msg) (FramesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.choices)
	changed := false
	switch keyMsg.String() {
	case "up", "k":
		m.origin = (m.origin + n - 1) % n
		changed = true
	case "down", "j":
		m.origin = (m.origin + 1) % n
		changed = true
	case "left", "h":
		m.target = (m.target + n - 1) % n
		changed = true
	case "right", "l":
		m.target = (m.target + 1) % n
		changed = true
	case "x":
		m.origin, m.target = m.target, m.origin
		changed = true
	case "d":
		m.showDeriv = !m.showDeriv
	}

	if !changed {
		return m, nil
	}
	from := m.choices[m.origin]
	to := m.choices[m.target]
	return m, func() tea.Msg {
		return FramePairChangedMsg{From: from, To: to}
	}
}

func (m FramesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rotation Inspector"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" ORIGIN ") + m.renderStrip(m.origin))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" TARGET ") + m.renderStrip(m.target))
	b.WriteString("\n\n")

	r := m.snapshot.Readout
	if r == nil {
		b.WriteString(dimStyle.Render("Waiting for first readout..."))
		b.WriteString("\n")
		return b.String()
	}

	pending := r.From != m.choices[m.origin] || r.To != m.choices[m.target]
	if pending {
		b.WriteString(dimStyle.Render("recomputing..."))
		b.WriteString("\n\n")
	}

	b.WriteString(accentStyle.Render(fmt.Sprintf("%s → %s", r.From.Name(), r.To.Name())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("at %v", r.TAI)))
	b.WriteString("\n\n")

	if r.RotationErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("unavailable: %v", r.RotationErr)))
		b.WriteString("\n")
		return b.String()
	}

	matrix := r.Rotation.Matrix()
	for i := 0; i < 3; i++ {
		row := fmt.Sprintf("  [ %+.12f  %+.12f  %+.12f ]",
			matrix.At(i, 0), matrix.At(i, 1), matrix.At(i, 2))
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}

	if m.showDeriv {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("d/dt (1/s)"))
		b.WriteString("\n")
		deriv := r.Rotation.Derivative()
		for i := 0; i < 3; i++ {
			row := fmt.Sprintf("  [ %+.9e  %+.9e  %+.9e ]",
				deriv.At(i, 0), deriv.At(i, 1), deriv.At(i, 2))
			b.WriteString(rowStyle.Render(row))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderStrip lists every frame choice with the selected one highlighted.
func (m FramesModel) renderStrip(selected int) string {
	parts := make([]string, len(m.choices))
	for i, f := range m.choices {
		label := f.Abbreviation()
		if i == selected {
			parts[i] = selectedRowStyle.Render(" " + label + " ")
		} else {
			parts[i] = rowStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
