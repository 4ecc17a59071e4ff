package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the event loop did during a session. A summary is
// logged on shutdown.
type Metrics struct {
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputMaxNs   atomic.Int64

	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	fileChanges atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordInput records the time taken to handle one key.
func (m *Metrics) RecordInput(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.inputCount.Add(1)
	m.inputTotalNs.Add(ns)
	for {
		old := m.inputMaxNs.Load()
		if ns <= old || m.inputMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records the time taken to draw one frame.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordFileChange records an external change notice.
func (m *Metrics) RecordFileChange() {
	m.fileChanges.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Uptime time.Duration

	Inputs       uint64
	InputAverage time.Duration
	InputMax     time.Duration

	Renders       uint64
	RenderAverage time.Duration

	FileChanges uint64
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		Inputs:      m.inputCount.Load(),
		InputMax:    time.Duration(m.inputMaxNs.Load()),
		Renders:     m.renderCount.Load(),
		FileChanges: m.fileChanges.Load(),
	}
	if s.Inputs > 0 {
		s.InputAverage = time.Duration(m.inputTotalNs.Load() / int64(s.Inputs))
	}
	if s.Renders > 0 {
		s.RenderAverage = time.Duration(m.renderTotalNs.Load() / int64(s.Renders))
	}
	return s
}
