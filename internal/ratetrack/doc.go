/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package ratetrack provides measuring of the arrival rate of update events
// over a trailing time window.
//
// Unlike admission-control rate limiters, the tracker never rejects anything:
// it answers how many events were observed within the last window as of a
// given point in time, with exact (not approximated) counting. Consumers use
// the returned rate to decide whether to keep delivering values or to freeze
// them (see the livedata package).
package ratetrack
