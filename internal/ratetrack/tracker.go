/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratetrack

import "time"

// DefaultWindow is the width of the trailing interval over which update events are counted.
const DefaultWindow = time.Second

// Tracker counts update events that occurred within the trailing time window.
// An event recorded at time t is retained as long as now-t is strictly less than the window.
//
// All methods require that time values passed to them over multiple invocations
// are monotonically non-decreasing; this holds when the caller always passes time.Now().
// Tracker is not safe for concurrent use, the owner is expected to serialize access.
type Tracker struct {
	window time.Duration
	log    []time.Time
}

// New creates a new Tracker with the given window width.
// Non-positive window means DefaultWindow.
func New(window time.Duration) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{window: window}
}

// RecordUpdate records a new update event that occurred at the passed moment
// and returns the number of events retained within the trailing window, the new one included.
func (t *Tracker) RecordUpdate(now time.Time) int {
	t.log = append(t.log, now)
	t.prune(now)
	return len(t.log)
}

// Rate returns the number of events retained within the trailing window as of the passed moment.
func (t *Tracker) Rate(now time.Time) int {
	t.prune(now)
	return len(t.log)
}

// Window returns the width of the trailing interval.
func (t *Tracker) Window() time.Duration {
	return t.window
}

// Reset drops all recorded events.
func (t *Tracker) Reset() {
	t.log = nil
}

func (t *Tracker) prune(now time.Time) {
	for len(t.log) > 0 && now.Sub(t.log[0]) >= t.window {
		t.log[0] = time.Time{}
		t.log = t.log[1:]
	}
}
