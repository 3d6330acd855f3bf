/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateReporter(t *testing.T) {
	base := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	reporter := NewRateReporter()
	require.Equal(t, time.Second, reporter.Window())
	require.Equal(t, 0, reporter.CurrentRate())

	require.Equal(t, 1, reporter.RecordAt(base))
	require.Equal(t, 2, reporter.RecordAt(base.Add(100*time.Millisecond)))
	require.Equal(t, 3, reporter.RecordAt(base.Add(200*time.Millisecond)))
	require.Equal(t, 3, reporter.CurrentRate())

	// Older events leave the window.
	require.Equal(t, 1, reporter.RecordAt(base.Add(1500*time.Millisecond)))
	require.Equal(t, 1, reporter.CurrentRate())
}

func TestRateReporterCustomWindow(t *testing.T) {
	base := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	reporter := NewRateReporterWithOpts(RateReporterOpts{Window: 100 * time.Millisecond})
	require.Equal(t, 100*time.Millisecond, reporter.Window())

	require.Equal(t, 1, reporter.RecordAt(base))
	require.Equal(t, 2, reporter.RecordAt(base.Add(50*time.Millisecond)))
	require.Equal(t, 1, reporter.RecordAt(base.Add(150*time.Millisecond)))
}

func TestRateReportersDoNotShareTrackers(t *testing.T) {
	base := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	first := NewRateReporter()
	second := NewRateReporter()

	first.RecordAt(base)
	first.RecordAt(base.Add(time.Millisecond))
	require.Equal(t, 2, first.CurrentRate())
	require.Equal(t, 0, second.CurrentRate())
	require.Equal(t, 1, second.RecordAt(base.Add(2*time.Millisecond)))
}
