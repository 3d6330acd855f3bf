/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratetrack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// TrackerTestSuite contains tests for Tracker.
type TrackerTestSuite struct {
	suite.Suite

	base time.Time
}

func TestTracker(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (ts *TrackerTestSuite) SetupTest() {
	ts.base = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
}

func (ts *TrackerTestSuite) at(offset time.Duration) time.Time {
	return ts.base.Add(offset)
}

func (ts *TrackerTestSuite) TestRecordUpdateCountsWithinWindow() {
	tracker := New(time.Second)

	ts.Equal(1, tracker.RecordUpdate(ts.at(0)))
	ts.Equal(2, tracker.RecordUpdate(ts.at(100*time.Millisecond)))
	ts.Equal(3, tracker.RecordUpdate(ts.at(200*time.Millisecond)))
}

func (ts *TrackerTestSuite) TestOldEventsArePurged() {
	tracker := New(time.Second)

	tracker.RecordUpdate(ts.at(0))
	tracker.RecordUpdate(ts.at(100*time.Millisecond))

	// Both previous events are older than the window by now.
	ts.Equal(1, tracker.RecordUpdate(ts.at(1500*time.Millisecond)))
}

func (ts *TrackerTestSuite) TestEventExactlyWindowOldIsPurged() {
	tracker := New(time.Second)

	tracker.RecordUpdate(ts.at(0))
	ts.Equal(1, tracker.RecordUpdate(ts.at(time.Second)))
}

func (ts *TrackerTestSuite) TestSlidingWindowProperty() {
	// The rate reported after the i-th event must equal the number of events j <= i
	// with t_i - t_j < window.
	tracker := New(time.Second)
	offsets := []time.Duration{
		0,
		100 * time.Millisecond,
		900 * time.Millisecond,
		1050 * time.Millisecond,
		2500 * time.Millisecond,
	}
	for i, offset := range offsets {
		want := 0
		for j := 0; j <= i; j++ {
			if offsets[i]-offsets[j] < time.Second {
				want++
			}
		}
		ts.Equal(want, tracker.RecordUpdate(ts.at(offset)), "event #%d", i+1)
	}
}

func (ts *TrackerTestSuite) TestRateDoesNotRecord() {
	tracker := New(time.Second)

	tracker.RecordUpdate(ts.at(0))
	ts.Equal(1, tracker.Rate(ts.at(500*time.Millisecond)))
	ts.Equal(1, tracker.Rate(ts.at(500*time.Millisecond)))
	ts.Equal(0, tracker.Rate(ts.at(2*time.Second)))
}

func (ts *TrackerTestSuite) TestCustomWindow() {
	tracker := New(100 * time.Millisecond)

	tracker.RecordUpdate(ts.at(0))
	ts.Equal(1, tracker.RecordUpdate(ts.at(150*time.Millisecond)))
	ts.Equal(2, tracker.RecordUpdate(ts.at(200*time.Millisecond)))
}

func (ts *TrackerTestSuite) TestNonPositiveWindowMeansDefault() {
	ts.Equal(DefaultWindow, New(0).Window())
	ts.Equal(DefaultWindow, New(-time.Second).Window())
	ts.Equal(5*time.Second, New(5*time.Second).Window())
}

func (ts *TrackerTestSuite) TestReset() {
	tracker := New(time.Second)

	tracker.RecordUpdate(ts.at(0))
	tracker.RecordUpdate(ts.at(10*time.Millisecond))
	tracker.Reset()

	ts.Equal(0, tracker.Rate(ts.at(20*time.Millisecond)))
	ts.Equal(1, tracker.RecordUpdate(ts.at(30*time.Millisecond)))
}
