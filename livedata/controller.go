/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"sync"
	"time"

	"github.com/robertalv/convex-panel-sub012/internal/ratetrack"
	"github.com/robertalv/convex-panel-sub012/log"
)

// DefaultRateThreshold is the default number of updates per window
// above which a controller pauses itself.
const DefaultRateThreshold = 10

// SourceLogFieldKey is the name of the logged field that contains the controller's source label.
const SourceLogFieldKey = "live_data_source"

// Options represents options for the Controller.
type Options struct {
	// RateThreshold is the number of updates per window above which the controller
	// freezes the exposed value. Non-positive value means DefaultRateThreshold.
	RateThreshold int

	// Window is the width of the trailing interval over which the update rate is measured.
	// Non-positive value means ratetrack.DefaultWindow (1 second).
	Window time.Duration

	// Disabled turns off rate tracking and pausing entirely:
	// the controller becomes a passthrough, and Value always returns the latest upstream value.
	Disabled bool

	// OnAutoPause is called exactly once per pause episode,
	// at the moment the controller pauses itself because of the update rate.
	// It is not called again on subsequent rate checks while the controller stays paused.
	OnAutoPause func()

	// OnResume is called on every Resume,
	// regardless of whether the preceding pause was automatic or manual.
	OnResume func()

	// Source labels the controller in logs and metrics, e.g. with a query or table name.
	Source string

	// Logger is used for logging pause/resume transitions. Nil means no logging.
	Logger log.FieldLogger

	// MetricsCollector is used for collecting metrics about pause/resume transitions
	// and the observed update rate. Nil means no metrics.
	MetricsCollector MetricsCollector
}

// State is a consistent snapshot of the observable state of a Controller.
type State[T any] struct {
	// Value is the last value exposed to consumers.
	// It equals the latest upstream value unless the controller is paused.
	Value T

	// Paused reports whether updates are currently withheld from Value.
	Paused bool

	// AutoPaused reports whether the current pause was triggered by the update rate
	// rather than by an explicit Pause call. It is always false when Paused is false.
	AutoPaused bool

	// Rate is the number of updates observed in the trailing window as of the last update.
	Rate int
}

// Controller mirrors an upstream, frequently-changing value and freezes the exposed
// value when updates arrive faster than the configured threshold. A frozen controller
// thaws only on an explicit Resume (or TogglePause), never because the rate dropped.
//
// All methods are safe for concurrent use: updates usually arrive from a subscription
// goroutine while consumers read and pause/resume from another.
type Controller[T any] struct {
	mu        sync.Mutex
	displayed T
	latest    T

	paused     bool
	autoPaused bool
	notified   bool
	rate       int

	tracker       *ratetrack.Tracker
	rateThreshold int
	disabled      bool

	onAutoPause func()
	onResume    func()

	source  string
	logger  log.FieldLogger
	metrics MetricsCollector
}

// New creates a new Controller with default options.
// The exposed value is initialized with the passed upstream value.
func New[T any](initial T) *Controller[T] {
	return NewWithOpts(initial, Options{})
}

// NewWithOpts creates a new Controller with the provided options.
func NewWithOpts[T any](initial T, opts Options) *Controller[T] {
	rateThreshold := opts.RateThreshold
	if rateThreshold <= 0 {
		rateThreshold = DefaultRateThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewDisabledLogger()
	}
	metrics := opts.MetricsCollector
	if metrics == nil {
		metrics = disabledMetrics{}
	}
	return &Controller[T]{
		displayed:     initial,
		latest:        initial,
		tracker:       ratetrack.New(opts.Window),
		rateThreshold: rateThreshold,
		disabled:      opts.Disabled,
		onAutoPause:   opts.OnAutoPause,
		onResume:      opts.OnResume,
		source:        opts.Source,
		logger:        logger.With(log.String(SourceLogFieldKey, opts.Source)),
		metrics:       metrics,
	}
}

// Update delivers a new upstream value that arrived just now.
func (c *Controller[T]) Update(value T) {
	c.UpdateAt(value, time.Now())
}

// UpdateAt delivers a new upstream value that arrived at the passed moment.
// Time values passed over multiple invocations must be monotonically non-decreasing.
//
// If the controller is not paused and the resulting update rate stays within the
// threshold, the value becomes visible via Value immediately. If the rate exceeds
// the threshold, the controller pauses itself and keeps exposing the value shown
// before this update until Resume is called. The latest upstream value is always
// remembered for the catch-up on Resume.
func (c *Controller[T]) UpdateAt(value T, now time.Time) {
	c.mu.Lock()
	c.latest = value
	if c.disabled {
		c.displayed = value
		c.mu.Unlock()
		return
	}

	c.rate = c.tracker.RecordUpdate(now)
	engaged := false
	var notify func()
	if c.rate > c.rateThreshold && !c.paused {
		c.paused = true
		c.autoPaused = true
		engaged = true
		if !c.notified {
			c.notified = true
			notify = c.onAutoPause
		}
	}
	if !c.paused {
		c.displayed = value
	}
	rate := c.rate
	c.mu.Unlock()

	c.metrics.ObserveRate(c.source, rate)
	if engaged {
		c.metrics.IncAutoPauses(c.source)
		c.logger.Info("live data auto-paused, update rate exceeded threshold",
			log.Int("rate", rate), log.Int("threshold", c.rateThreshold))
	}
	if notify != nil {
		notify()
	}
}

// Pause freezes the exposed value. The pause is reported as manual
// even if the update rate is currently over the threshold.
func (c *Controller[T]) Pause() {
	c.mu.Lock()
	c.paused = true
	c.autoPaused = false
	c.mu.Unlock()

	c.metrics.IncManualPauses(c.source)
	c.logger.Debug("live data paused")
}

// Resume thaws the controller: the exposed value catches up with the latest
// upstream value, and the next auto-pause episode may notify again.
// OnResume is invoked on every call, whether the preceding pause was automatic,
// manual, or the controller was not paused at all.
func (c *Controller[T]) Resume() {
	c.mu.Lock()
	c.paused = false
	c.autoPaused = false
	c.notified = false
	c.displayed = c.latest
	c.mu.Unlock()

	c.metrics.IncResumes(c.source)
	c.logger.Debug("live data resumed")
	if c.onResume != nil {
		c.onResume()
	}
}

// TogglePause calls Resume if the controller is paused and Pause otherwise.
func (c *Controller[T]) TogglePause() {
	c.mu.Lock()
	paused := c.paused
	c.mu.Unlock()

	if paused {
		c.Resume()
		return
	}
	c.Pause()
}

// Value returns the last value exposed to consumers.
// It equals the latest upstream value unless the controller is paused.
func (c *Controller[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

// IsPaused reports whether updates are currently withheld from Value.
func (c *Controller[T]) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// IsAutoPaused reports whether the current pause was triggered by the update rate
// rather than by an explicit Pause call.
func (c *Controller[T]) IsAutoPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoPaused
}

// CurrentRate returns the number of updates observed in the trailing window
// as of the last delivered update.
func (c *Controller[T]) CurrentRate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// RateThreshold returns the effective rate threshold of the controller.
func (c *Controller[T]) RateThreshold() int {
	return c.rateThreshold
}

// Window returns the effective width of the rate measurement window.
func (c *Controller[T]) Window() time.Duration {
	return c.tracker.Window()
}

// State returns a consistent snapshot of the controller's observable state.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{
		Value:      c.displayed,
		Paused:     c.paused,
		AutoPaused: c.autoPaused,
		Rate:       c.rate,
	}
}
