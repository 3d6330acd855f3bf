/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"sync"
	"time"

	"github.com/robertalv/convex-panel-sub012/internal/ratetrack"
)

// RateReporterOpts represents options for the RateReporter.
type RateReporterOpts struct {
	// Window is the width of the trailing interval over which the update rate is measured.
	// Non-positive value means ratetrack.DefaultWindow (1 second).
	Window time.Duration
}

// RateReporter measures the arrival rate of an update stream without withholding
// delivery of the values themselves. It is a reduced variant of Controller for
// read-only rate display: the same sliding-window measurement, no pausing.
//
// Each reporter owns its tracker; it is never shared with a Controller instance.
// All methods are safe for concurrent use.
type RateReporter struct {
	mu      sync.Mutex
	tracker *ratetrack.Tracker
	rate    int
}

// NewRateReporter creates a new RateReporter with the default window.
func NewRateReporter() *RateReporter {
	return NewRateReporterWithOpts(RateReporterOpts{})
}

// NewRateReporterWithOpts creates a new RateReporter with the provided options.
func NewRateReporterWithOpts(opts RateReporterOpts) *RateReporter {
	return &RateReporter{tracker: ratetrack.New(opts.Window)}
}

// Record registers an update that arrived just now and returns the new rate.
func (r *RateReporter) Record() int {
	return r.RecordAt(time.Now())
}

// RecordAt registers an update that arrived at the passed moment and returns the new rate.
// Time values passed over multiple invocations must be monotonically non-decreasing.
func (r *RateReporter) RecordAt(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rate = r.tracker.RecordUpdate(now)
	return r.rate
}

// CurrentRate returns the rate computed by the last Record call.
func (r *RateReporter) CurrentRate() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rate
}

// Window returns the effective width of the rate measurement window.
func (r *RateReporter) Window() time.Duration {
	return r.tracker.Window()
}
