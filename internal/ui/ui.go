// Package ui implements the terminal dashboard using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/internal/orient"
	"github.com/litescript/ls-astro/internal/state"
	"github.com/litescript/ls-astro/internal/version"
)

// ViewMode identifies which panel is active.
type ViewMode int

const (
	ViewClock ViewMode = iota
	ViewFrames
)

// TickMsg drives the periodic snapshot refresh.
type TickMsg time.Time

// AnimTickMsg drives spinner and shimmer animations.
type AnimTickMsg time.Time

// DataUpdateMsg carries a fresh state snapshot into the UI.
type DataUpdateMsg struct {
	Snapshot state.Snapshot
}

// ErrorMsg reports a compute failure.
type ErrorMsg struct {
	Error error
}

// FramePairChangedMsg is emitted by the frames view when the user picks a
// new origin or target frame.
type FramePairChangedMsg struct {
	From frames.Frame
	To   frames.Frame
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	state  *state.Manager
	engine *orient.Engine

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	clock      ClockModel
	framesView FramesModel

	snapshot state.Snapshot
}

// New creates the root model. The manager is shared with the compute loop;
// the engine is used for on-demand recomputes when the frame pair changes.
func New(stateMgr *state.Manager, engine *orient.Engine) Model {
	return Model{
		state:      stateMgr,
		engine:     engine,
		viewMode:   ViewClock,
		clock:      NewClockModel(),
		framesView: NewFramesModel(),
	}
}

// WithFramePair preselects the frame pair shown by the frames view.
func (m Model) WithFramePair(from, to frames.Frame) Model {
	m.framesView = m.framesView.WithPair(from, to)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "c":
			m.viewMode = ViewClock
		case "2", "f":
			m.viewMode = ViewFrames
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2
		default:
			var cmd tea.Cmd
			m, cmd = m.updateActiveView(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 14
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.clock = m.clock.SetSize(msg.Width, contentHeight)
		m.framesView = m.framesView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		m.snapshot = m.state.Snapshot()
		cmds = append(cmds, tickCmd())

	case AnimTickMsg:
		m.animTick++
		cmds = append(cmds, animTickCmd())

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.clock = m.clock.UpdateData(msg.Snapshot)
		m.framesView = m.framesView.UpdateData(msg.Snapshot)

	case ErrorMsg:
		m.clock = m.clock.SetError(msg.Error)

	case FramePairChangedMsg:
		m.state.SetFramePair(msg.From, msg.To)
		cmds = append(cmds, m.recomputeCmd(msg.From, msg.To))

	default:
		var cmd tea.Cmd
		m, cmd = m.updateActiveView(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateActiveView(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewClock:
		m.clock, cmd = m.clock.Update(msg)
	case ViewFrames:
		m.framesView, cmd = m.framesView.Update(msg)
	}
	return m, cmd
}

// recomputeCmd produces a readout for the new frame pair without waiting
// for the next scheduled refresh.
func (m Model) recomputeCmd(from, to frames.Frame) tea.Cmd {
	engine := m.engine
	mgr := m.state
	return func() tea.Msg {
		start := time.Now()
		readout, err := engine.Compute(time.Now(), from, to)
		mgr.Update(readout, time.Since(start), err)
		if err != nil {
			return ErrorMsg{Error: err}
		}
		return DataUpdateMsg{Snapshot: mgr.Snapshot()}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewClock:
		content = m.clock.View()
	case ViewFrames:
		content = m.framesView.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	var b strings.Builder
	b.WriteString(m.renderLogo())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

var logoLines = []string{
	"██╗     ███████╗       █████╗ ███████╗████████╗██████╗  ██████╗ ",
	"██║     ██╔════╝      ██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗",
	"██║     ███████╗█████╗███████║███████╗   ██║   ██████╔╝██║   ██║",
	"██║     ╚════██║╚════╝██╔══██║╚════██║   ██║   ██╔══██╗██║   ██║",
	"███████╗███████║      ██║  ██║███████║   ██║   ██║  ██║╚██████╔╝",
	"╚══════╝╚══════╝      ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ",
}

func (m Model) renderLogo() string {
	var b strings.Builder
	for row, line := range logoLines {
		runes := []rune(line)
		for col, r := range runes {
			if r == ' ' {
				b.WriteRune(r)
				continue
			}
			color := gradientColor(col, len(runes), row, len(logoLines))
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(r)))
		}
		b.WriteString("\n")
	}

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("213")).
		Italic(true).
		Render("Astronomical Time Scales · Earth Orientation · Reference Frames")
	copyright := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf("(c) 2026 litescript.net | v%s", version.Version))
	b.WriteString(tagline + "  " + copyright + "\n")
	return b.String()
}

// gradientColor maps a logo cell to a blue-to-pink horizontal gradient with
// a vertical brightness falloff.
func gradientColor(col, cols, row, rows int) lipgloss.Color {
	t := float64(col) / float64(cols-1)
	r := 60 + int(t*195)
	g := 120 - int(t*60)
	bl := 255 - int(t*80)
	fade := 1.0 - 0.35*float64(row)/float64(rows-1)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x",
		clamp8(float64(r)*fade), clamp8(float64(g)*fade), clamp8(float64(bl)*fade)))
}

func clamp8(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []struct {
		label string
		mode  ViewMode
	}{
		{"[1] Clock", ViewClock},
		{"[2] Frames", ViewFrames},
	}

	var parts []string
	for _, tab := range tabs {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
		label := tab.label
		if tab.mode == m.viewMode {
			style = style.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
			label = "▶ " + label
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("compute error: %v", m.snapshot.LastError))
	case m.snapshot.Readout != nil:
		remaining := time.Until(m.snapshot.NextRefresh).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
			Render(fmt.Sprintf("%s refresh in %s (last compute %s)",
				spinner, remaining, m.snapshot.ComputeDuration.Round(time.Microsecond)))
	default:
		status = m.renderShimmerText("Computing first readout...")
	}

	help := "↑/↓: select scale | tab: switch view | q: quit"
	if m.viewMode == ViewFrames {
		help = "←/→: target | ↑/↓: origin | x: swap | d: derivative | q: quit"
	}
	helpLine := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(help)

	return status + "\n" + helpLine
}

// renderShimmerText renders text with a moving highlight band.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	pos := m.animTick % (len(runes) + 8)
	var b strings.Builder
	for i, r := range runes {
		d := i - pos
		if d < 0 {
			d = -d
		}
		var color string
		switch {
		case d <= 1:
			color = "255"
		case d <= 3:
			color = "250"
		default:
			color = "240"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return b.String()
}
