// Package autosave provides write debouncing for protocol edits. Rapid
// successive changes collapse into one save issued after a quiet period,
// so the persistence layer sees the final state of an editing burst
// instead of every keystroke.
package autosave

import (
	"sync"
	"time"

	"tca/internal/logging"
	"tca/internal/types"
)

// DefaultDelay is the quiet period before a pending change is flushed
const DefaultDelay = 2 * time.Second

// SaveFunc persists a protocol and reports whether the write succeeded
type SaveFunc func(*types.Protocol) bool

// Debouncer schedules debounced saves. Each Trigger call replaces any
// pending save with the newly supplied state and restarts the delay.
type Debouncer struct {
	save   SaveFunc
	delay  time.Duration
	logger *logging.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *types.Protocol
	closed  bool
}

// NewDebouncer creates a debouncer flushing through save after delay.
// A zero delay disables debouncing, every Trigger saves synchronously.
// A negative delay falls back to DefaultDelay.
func NewDebouncer(save SaveFunc, delay time.Duration, logger *logging.Logger) *Debouncer {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		save:   save,
		delay:  delay,
		logger: logger.With(map[string]interface{}{"component": "autosave"}),
	}
}

// Trigger records p as the state to persist and restarts the quiet
// period. Only the most recent state survives a burst of calls.
func (d *Debouncer) Trigger(p *types.Protocol) {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()
		return
	}

	d.pending = p
	if d.delay == 0 {
		d.mu.Unlock()
		d.flush()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
	d.mu.Unlock()
}

// flush persists the pending state, if any
func (d *Debouncer) flush() {
	d.mu.Lock()
	p := d.pending
	d.pending = nil
	d.mu.Unlock()

	if p == nil {
		return
	}
	if !d.save(p) {
		d.logger.Warn("Debounced save failed", map[string]interface{}{
			"protocol_id": p.ID,
		})
	}
}

// Flush persists any pending state immediately, cancelling the timer.
// Used on shutdown so an editing burst in progress is not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.flush()
}

// Close flushes any pending state and stops accepting triggers
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.Flush()
}
