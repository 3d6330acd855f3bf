/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package livedata provides rate-limited delivery of frequently updating values.
//
// The central type is Controller: it mirrors an upstream value stream and
// measures the arrival rate of updates over a trailing time window. When the
// rate exceeds a configurable threshold, the controller freezes the exposed
// value ("auto-pause") until the consumer explicitly resumes it. Pausing can
// also be requested manually at any time, and a paused controller never
// un-pauses on its own, so a consumer that was shown a frozen value keeps
// seeing it until the freeze is acknowledged.
//
// Key features:
//   - Exact sliding-window rate measurement with configurable window and threshold
//   - Auto-pause with a single notification per pause episode
//   - Manual pause/resume/toggle independent of the observed rate
//   - RateReporter for read-only rate display without withholding delivery
//   - Group for managing per-source controllers with an LRU bound
//   - YAML/JSON configuration and Prometheus metrics
package livedata
