// Command ls-astro is a terminal dashboard for astronomical time scales,
// Earth orientation, and reference frame rotations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/eop"
	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/internal/logging"
	"github.com/litescript/ls-astro/internal/orient"
	"github.com/litescript/ls-astro/internal/state"
	"github.com/litescript/ls-astro/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	matrixMode    bool
	timeSpec      string
	scaleSpec     string
	watchInterval time.Duration
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = 1 * time.Minute
)

func main() {
	// Parse flags
	refresh := flag.Duration("refresh", defaultRefresh, "Readout refresh interval (e.g., 1s, 500ms)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	eopSpec := flag.String("eop", "", "IERS finals CSV file, or two comma-separated files")
	lskPath := flag.String("lsk", "", "Leap second kernel file (NAIF LSK)")
	fromSpec := flag.String("from", "icrf", "Origin frame (e.g., icrf, cirf, itrf, teme, iau_moon)")
	toSpec := flag.String("to", "iau_earth", "Target frame")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&matrixMode, "matrix", false, "Print the rotation matrix for -from/-to")
	flag.StringVar(&timeSpec, "time", "", "Evaluate at this UTC instant (ISO 8601) instead of now")
	flag.StringVar(&scaleSpec, "scale", "", "Convert the instant to a single time scale")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat output at interval (e.g., 10s)")
	flag.Parse()

	// Validate refresh interval
	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	from, err := frames.ParseFrame(*fromSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -from: %v\n", err)
		os.Exit(1)
	}
	to, err := frames.ParseFrame(*toSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -to: %v\n", err)
		os.Exit(1)
	}

	// The leap second kernel replaces the builtin table everywhere: UTC
	// conversions, finals parsing, and the readout engine.
	var leap astrotime.LeapSecondsProvider
	if *lskPath != "" {
		kernel, err := astrotime.LoadLeapSecondsKernel(*lskPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -lsk: %v\n", err)
			os.Exit(1)
		}
		leap = kernel
	}

	provider, err := loadEOP(*eopSpec, leap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -eop: %v\n", err)
		os.Exit(1)
	}

	engine := orient.NewEngine(provider, leap)

	// Initialize state
	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)
	stateMgr.SetFramePair(from, to)

	// Headless mode: no TUI
	headless := summaryMode || matrixMode || timeSpec != "" || scaleSpec != "" || watchInterval != 0
	if headless {
		runHeadless(ctx, engine, logger, from, to)
		return
	}

	// Create TUI model
	model := ui.New(stateMgr, engine).WithFramePair(from, to)

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Start compute loop in background
	go runComputeLoop(ctx, engine, stateMgr, p, logger)

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadEOP builds the finals provider. The flag accepts one CSV covering
// both IAU 1980 and IAU 2000 data, or two comma-separated files.
func loadEOP(spec string, leap astrotime.LeapSecondsProvider) (*eop.Provider, error) {
	if spec == "" {
		return nil, nil
	}

	parser := eop.NewParser()
	switch parts := strings.Split(spec, ","); len(parts) {
	case 1:
		parser = parser.FromPath(parts[0])
	case 2:
		parser = parser.FromPaths(parts[0], parts[1])
	default:
		return nil, fmt.Errorf("expected one or two files, got %d", len(parts))
	}
	if leap != nil {
		parser = parser.WithLeapSeconds(leap)
	}
	return parser.Parse()
}

func runComputeLoop(ctx context.Context, engine *orient.Engine, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	// Do initial readout immediately
	doCompute(engine, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(engine, stateMgr, p, logger)
		}
	}
}

func doCompute(engine *orient.Engine, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	from, to := stateMgr.FramePair()

	start := time.Now()
	readout, err := engine.Compute(start, from, to)
	duration := time.Since(start)

	if err != nil {
		logger.Error("Readout failed: %v", err)
		stateMgr.Update(nil, duration, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	logger.Debug("Readout complete: %d scales, %s -> %s in %v",
		len(readout.Scales), readout.From, readout.To, duration)

	stateMgr.Update(readout, duration, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, engine *orient.Engine, logger *logging.Logger, from, to frames.Frame) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	// A fixed instant pins every repetition of the output; otherwise each
	// run reads the system clock.
	var utc astrotime.UTC
	atInstant := timeSpec != ""
	if atInstant {
		var err error
		utc, err = astrotime.ParseUTCWithProvider(timeSpec, engine.LeapSeconds())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -time: %v\n", err)
			os.Exit(1)
		}
	}

	var scale astrotime.TimeScale
	if scaleSpec != "" {
		var err error
		scale, err = astrotime.ParseTimeScale(scaleSpec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -scale: %v\n", err)
			os.Exit(1)
		}
	}

	// -watch or -time without a mode defaults to the summary.
	if !summaryMode && !matrixMode && scaleSpec == "" {
		summaryMode = true
	}

	outputOnce := func() error {
		var readout *orient.Readout
		var err error
		if atInstant {
			readout, err = engine.ComputeAt(utc, from, to)
		} else {
			readout, err = engine.Compute(time.Now(), from, to)
		}
		if err != nil {
			return err
		}

		// Single-scale conversion
		if scaleSpec != "" {
			return orient.WriteConversion(os.Stdout, readout, scale)
		}

		// Summary table
		if summaryMode {
			orient.WriteSummary(os.Stdout, readout)
		}

		// Rotation matrix
		if matrixMode {
			if summaryMode {
				fmt.Println()
			}
			if err := orient.WriteMatrix(os.Stdout, readout); err != nil {
				return err
			}
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		logger.Error("%v", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if isTTY {
				fmt.Print("\033[H\033[2J")
			} else {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				logger.Error("%v", err)
			}
		}
	}
}
