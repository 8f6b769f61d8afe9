package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/internal/orient"
	"github.com/litescript/ls-astro/units"
)

func readout(taiMinusUtc float64, era units.Angle) *orient.Readout {
	return &orient.Readout{
		TaiMinusUtc: taiMinusUtc,
		Earth:       orient.EarthAngles{Era: era},
	}
}

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}

	if m.RefreshInterval() != cfg.RefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), cfg.RefreshInterval)
	}

	if m.HasData() {
		t.Error("HasData should be false initially")
	}
}

func TestManager_Update(t *testing.T) {
	m := NewManager(DefaultConfig())

	r := readout(37, units.Radians(1.5))
	m.Update(r, 100*time.Microsecond, nil)

	if !m.HasData() {
		t.Error("HasData should be true after Update")
	}

	snap := m.Snapshot()

	if snap.Readout != r {
		t.Error("Snapshot Readout doesn't match")
	}

	if snap.ComputeDuration != 100*time.Microsecond {
		t.Errorf("ComputeDuration = %v, want 100µs", snap.ComputeDuration)
	}

	if snap.LastError != nil {
		t.Errorf("LastError = %v, want nil", snap.LastError)
	}

	if snap.NextRefresh.Before(snap.LastCompute) {
		t.Error("NextRefresh should follow LastCompute")
	}
}

func TestManager_UpdateWithError(t *testing.T) {
	m := NewManager(DefaultConfig())

	testErr := errors.New("compute failed")
	m.Update(nil, 50*time.Microsecond, testErr)

	snap := m.Snapshot()

	if snap.Readout != nil {
		t.Error("Readout should be nil on error")
	}

	if snap.LastError != testErr {
		t.Errorf("LastError = %v, want %v", snap.LastError, testErr)
	}
}

func TestManager_EraHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 3
	m := NewManager(cfg)

	for i := 0; i < 5; i++ {
		m.Update(readout(37, units.Radians(float64(i))), 0, nil)
	}

	snap := m.Snapshot()

	if len(snap.EraHistory) != 3 {
		t.Fatalf("history length = %d, want 3", len(snap.EraHistory))
	}

	// Oldest two samples were evicted
	if snap.EraHistory[0].Value != 2 {
		t.Errorf("first sample = %v, want 2", snap.EraHistory[0].Value)
	}
	if snap.EraHistory[2].Value != 4 {
		t.Errorf("last sample = %v, want 4", snap.EraHistory[2].Value)
	}
}

func TestManager_Snapshot_IsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Update(readout(37, units.Radians(1)), 0, nil)

	snap := m.Snapshot()
	snap.EraHistory[0].Value = 999

	snap2 := m.Snapshot()
	if snap2.EraHistory[0].Value == 999 {
		t.Error("Snapshot modification affected manager state")
	}
}

func TestManager_LeapSecondEvent(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.Update(readout(36, units.Radians(1)), 0, nil)
	m.Update(readout(36.0000001, units.Radians(1.1)), 0, nil)

	if events := m.RecentEvents(10); len(events) != 0 {
		t.Fatalf("drift produced %d events, want 0", len(events))
	}

	m.Update(readout(37, units.Radians(1.2)), 0, nil)

	events := m.RecentEvents(10)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventLeapSecond {
		t.Errorf("event type = %q, want LEAP_SECOND", events[0].Type)
	}
	if events[0].OldOffset != 36.0000001 || events[0].NewOffset != 37 {
		t.Errorf("offsets = %v -> %v, want 36.0000001 -> 37", events[0].OldOffset, events[0].NewOffset)
	}
}

func TestManager_EOPTransitions(t *testing.T) {
	m := NewManager(DefaultConfig())

	inRange := readout(37, units.Radians(1))
	inRange.EOP = &orient.EOPValues{XPole: 0.1}
	outOfRange := readout(37, units.Radians(1))
	outOfRange.EOP = &orient.EOPValues{Err: errors.New("outside data range")}

	m.Update(inRange, 0, nil)
	m.Update(outOfRange, 0, nil)

	events := m.RecentEvents(10)
	if len(events) != 1 || events[0].Type != EventEOPLost {
		t.Fatalf("events = %+v, want one EOP_LOST", events)
	}

	back := readout(37, units.Radians(1))
	back.EOP = &orient.EOPValues{XPole: 0.1}
	m.Update(back, 0, nil)

	events = m.RecentEvents(10)
	if len(events) != 2 || events[1].Type != EventEOPRestored {
		t.Fatalf("events = %+v, want EOP_LOST then EOP_RESTORED", events)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 5
	m := NewManager(cfg)

	// Alternate the offset so every update steps TAI-UTC
	for i := 0; i < 12; i++ {
		m.Update(readout(float64(36+i%2), units.Radians(1)), 0, nil)
	}

	events := m.RecentEvents(100)
	if len(events) != 5 {
		t.Errorf("events count = %d, want 5 (max)", len(events))
	}

	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("events not in chronological order at index %d", i)
		}
	}
}

func TestManager_FramePair(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.SetFramePair(frames.ICRF, frames.ITRF)

	from, to := m.FramePair()
	if from != frames.ICRF || to != frames.ITRF {
		t.Errorf("FramePair = %v -> %v, want ICRF -> ITRF", from, to)
	}
}

func TestManager_SetRefreshInterval(t *testing.T) {
	m := NewManager(DefaultConfig())

	newInterval := 30 * time.Second
	m.SetRefreshInterval(newInterval)

	if m.RefreshInterval() != newInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), newInterval)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	iterations := 100

	// Writer goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			m.Update(readout(37, units.Radians(float64(i))), time.Duration(i)*time.Microsecond, nil)
		}
	}()

	// Reader goroutines
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				_ = m.Snapshot()
				_ = m.HasData()
				_ = m.RefreshInterval()
				_, _ = m.FramePair()
				_ = m.RecentEvents(5)
			}
		}()
	}

	wg.Wait()
}
