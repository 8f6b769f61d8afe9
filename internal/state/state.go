// Package state provides thread-safe state management for the application.
package state

import (
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/internal/orient"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventLeapSecond  EventType = "LEAP_SECOND"
	EventEOPLost     EventType = "EOP_LOST"
	EventEOPRestored EventType = "EOP_RESTORED"
)

// Event represents a change detected between consecutive readouts: a
// leap second stepping TAI-UTC, or the evaluation time leaving or
// re-entering the finals table coverage.
type Event struct {
	Type      EventType
	Timestamp time.Time
	OldOffset float64 // TAI-UTC before a leap second
	NewOffset float64 // TAI-UTC after a leap second
}

// Sample is a single history data point with timestamp.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *orient.Readout
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration
	nextRefresh     time.Time

	// Earth rotation angle history for the dashboard sparkline
	eraHistory []Sample
	maxHistory int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Frame pair the compute loop should evaluate
	from, to frames.Frame

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistory      int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistory:      240, // 4 minutes of ERA samples at 1 readout/s
		MaxEvents:       50,  // Last 50 events
		RefreshInterval: time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxHistory:      cfg.MaxHistory,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically updates the state with a new readout.
func (m *Manager) Update(r *orient.Readout, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.lastCompute = now
	m.lastError = err
	m.computeDuration = computeDuration
	m.nextRefresh = now.Add(m.refreshInterval)

	if r == nil {
		return
	}

	// Detect events before replacing the current readout
	m.detectEvents(r, now)

	m.current = r

	m.eraHistory = append(m.eraHistory, Sample{Timestamp: now, Value: r.Earth.Era.ToRadians()})
	if len(m.eraHistory) > m.maxHistory {
		m.eraHistory = m.eraHistory[1:]
	}
}

// detectEvents compares the new readout with the previous one and
// generates events.
func (m *Manager) detectEvents(r *orient.Readout, now time.Time) {
	prev := m.current
	if prev == nil {
		return
	}

	// TAI-UTC drifts by microseconds between refreshes on the pre-1972
	// model; a step of half a second or more is a leap second.
	if math.Abs(r.TaiMinusUtc-prev.TaiMinusUtc) >= 0.5 {
		m.addEvent(Event{
			Type:      EventLeapSecond,
			Timestamp: now,
			OldOffset: prev.TaiMinusUtc,
			NewOffset: r.TaiMinusUtc,
		})
	}

	if prev.EOP != nil && r.EOP != nil {
		prevOK := prev.EOP.Err == nil
		newOK := r.EOP.Err == nil
		switch {
		case prevOK && !newOK:
			m.addEvent(Event{Type: EventEOPLost, Timestamp: now})
		case !prevOK && newOK:
			m.addEvent(Event{Type: EventEOPRestored, Timestamp: now})
		}
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Readout         *orient.Readout
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	NextRefresh     time.Time
	EraHistory      []Sample
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Sample, len(m.eraHistory))
	copy(history, m.eraHistory)

	return Snapshot{
		Readout:         m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		NextRefresh:     m.nextRefresh,
		EraHistory:      history,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// FramePair returns the frame pair the compute loop should evaluate.
func (m *Manager) FramePair() (frames.Frame, frames.Frame) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.from, m.to
}

// SetFramePair updates the frame pair for subsequent readouts.
func (m *Manager) SetFramePair(from, to frames.Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.from, m.to = from, to
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one readout has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
