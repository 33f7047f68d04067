// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"math"
	"time"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// DefaultSpeedSamples is the default capacity of the speed history buffer.
const DefaultSpeedSamples = 10

// Metrics holds the derived values a Calculator produces for one instant.
type Metrics struct {
	Percentage    float64
	Elapsed       time.Duration
	ETA           time.Duration
	Speed         float64
	Complete      bool
	Indeterminate bool
}

// Calculator turns raw progress counters into derived metrics. The speed
// smoothing buffer is internal state; Reset clears it and must be called in
// lockstep with the owning tracker's reset. Implementations are not required
// to be safe for concurrent use; the Tracker serializes all calls.
type Calculator interface {
	Calculate(current, total float64, start, now time.Time) Metrics
	Reset()
}

// SmoothedCalculator is the default Calculator. It keeps a bounded history
// of instantaneous rates and reports their arithmetic mean, which stabilises
// the displayed speed and ETA under irregular update intervals.
type SmoothedCalculator struct {
	precision int
	capacity  int
	samples   []float64
}

// NewSmoothedCalculator creates a calculator rounding percentages to the
// given number of decimal places and smoothing speed over up to sampleCap
// instantaneous rates. Non-positive sampleCap falls back to
// DefaultSpeedSamples; negative precision is treated as zero.
func NewSmoothedCalculator(precision, sampleCap int) *SmoothedCalculator {
	if sampleCap <= 0 {
		sampleCap = DefaultSpeedSamples
	}

	if precision < 0 {
		precision = 0
	}

	return &SmoothedCalculator{
		precision: precision,
		capacity:  sampleCap,
		samples:   make([]float64, 0, sampleCap),
	}
}

// Calculate implements Calculator. Every denominator is guarded so the
// result never contains NaN, Inf or negative values.
func (c *SmoothedCalculator) Calculate(current, total float64, start, now time.Time) Metrics {
	m := Metrics{Indeterminate: total <= 0}

	if current < 0 {
		current = 0
	}

	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	m.Elapsed = elapsed

	if sec := elapsed.Seconds(); sec > 0 && current > 0 {
		c.push(current / sec)
	}

	m.Speed = c.mean()

	if m.Indeterminate {
		// Percentage is undefined without a target; reported as 0.
		return m
	}

	m.Percentage = roundTo(clampPercent(current/total*100), c.precision)
	m.Complete = current >= total

	if current > 0 && !m.Complete && m.Speed > 0 {
		m.ETA = time.Duration((total - current) / m.Speed * float64(time.Second))
	}

	return m
}

// Reset clears the speed history so rates never leak across tracker resets.
func (c *SmoothedCalculator) Reset() {
	c.samples = c.samples[:0]
}

func (c *SmoothedCalculator) push(rate float64) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return
	}

	if len(c.samples) == c.capacity {
		copy(c.samples, c.samples[1:])
		c.samples = c.samples[:c.capacity-1]
	}

	c.samples = append(c.samples, rate)
}

func (c *SmoothedCalculator) mean() float64 {
	if len(c.samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range c.samples {
		sum += s
	}

	return sum / float64(len(c.samples))
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// roundTo rounds via integer scaling so that repeated float additions cannot
// drift a finished bar to 99.999999 instead of 100.
func roundTo(v float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))

	return math.Round(v*pow) / pow
}
