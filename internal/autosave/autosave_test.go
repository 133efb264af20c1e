package autosave

import (
	"sync"
	"testing"
	"time"

	"tca/internal/logging"
	"tca/internal/types"
)

// recorder collects saved protocols for assertions
type recorder struct {
	mu    sync.Mutex
	saved []*types.Protocol
}

func (r *recorder) save(p *types.Protocol) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, p)
	return true
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *recorder) last() *types.Protocol {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.save, 30*time.Millisecond, logging.NewDiscardLogger())
	defer d.Close()

	p := types.NewProtocol(types.AssessmentP4)
	for i := 0; i < 10; i++ {
		p.Location = "edit"
		d.Trigger(p)
		time.Sleep(2 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool { return rec.count() > 0 })
	if got := rec.count(); got != 1 {
		t.Errorf("expected one save for a burst, got %d", got)
	}
}

func TestDebouncerKeepsLatestState(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.save, 30*time.Millisecond, logging.NewDiscardLogger())
	defer d.Close()

	stale := types.NewProtocol(types.AssessmentP4)
	fresh := types.NewProtocol(types.AssessmentP5)
	d.Trigger(stale)
	d.Trigger(fresh)

	waitFor(t, time.Second, func() bool { return rec.count() > 0 })
	if got := rec.last(); got.ID != fresh.ID {
		t.Error("expected the latest triggered state to be saved")
	}
}

func TestDebouncerFlush(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.save, time.Hour, logging.NewDiscardLogger())
	defer d.Close()

	d.Trigger(types.NewProtocol(types.AssessmentP4))
	d.Flush()

	if got := rec.count(); got != 1 {
		t.Errorf("expected flush to save immediately, got %d saves", got)
	}

	// A second flush with nothing pending is a no-op.
	d.Flush()
	if got := rec.count(); got != 1 {
		t.Errorf("expected empty flush to save nothing, got %d saves", got)
	}
}

func TestDebouncerCloseFlushesAndStops(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.save, time.Hour, logging.NewDiscardLogger())

	d.Trigger(types.NewProtocol(types.AssessmentP4))
	d.Close()

	if got := rec.count(); got != 1 {
		t.Errorf("expected close to flush the pending save, got %d", got)
	}

	d.Trigger(types.NewProtocol(types.AssessmentP4))
	d.Flush()
	if got := rec.count(); got != 1 {
		t.Errorf("expected triggers after close to be ignored, got %d saves", got)
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(func(*types.Protocol) bool { return true }, -1, logging.NewDiscardLogger())
	defer d.Close()
	if d.delay != DefaultDelay {
		t.Errorf("expected default delay %v, got %v", DefaultDelay, d.delay)
	}
}

func TestDebouncerZeroDelaySavesSynchronously(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.save, 0, logging.NewDiscardLogger())
	defer d.Close()

	d.Trigger(types.NewProtocol(types.AssessmentP4))
	if got := rec.count(); got != 1 {
		t.Fatalf("expected the first trigger to save immediately, got %d saves", got)
	}

	d.Trigger(types.NewProtocol(types.AssessmentP4))
	if got := rec.count(); got != 2 {
		t.Errorf("expected every trigger to save immediately, got %d saves", got)
	}
}
