package app

import (
	"testing"
	"time"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordInput(2 * time.Millisecond)
	m.RecordInput(4 * time.Millisecond)
	m.RecordRender(time.Millisecond)
	m.RecordFileChange()

	s := m.Snapshot()
	if s.Inputs != 2 {
		t.Errorf("Inputs = %d, want 2", s.Inputs)
	}
	if s.InputAverage != 3*time.Millisecond {
		t.Errorf("InputAverage = %s, want 3ms", s.InputAverage)
	}
	if s.InputMax != 4*time.Millisecond {
		t.Errorf("InputMax = %s, want 4ms", s.InputMax)
	}
	if s.Renders != 1 || s.RenderAverage != time.Millisecond {
		t.Errorf("Renders = %d avg %s", s.Renders, s.RenderAverage)
	}
	if s.FileChanges != 1 {
		t.Errorf("FileChanges = %d, want 1", s.FileChanges)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.Inputs != 0 || s.InputAverage != 0 || s.RenderAverage != 0 {
		t.Errorf("unexpected snapshot %+v", s)
	}
}
