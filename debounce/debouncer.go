package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the latest snapshot to a callback once no Notify call
// has arrived for the configured delay.
//
// Thread-safety: all methods are safe for concurrent use. The callback is
// never invoked concurrently with itself. Stop prevents every later delivery;
// a delivery already in progress runs to completion.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	now     func() time.Time
	state   State
	timer   *time.Timer
	stopped bool

	cbMu     sync.Mutex
	callback func(text string)
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock overrides the clock used to stamp PendingCommit.ScheduledAt.
func WithClock(now func() time.Time) Option {
	return func(d *Debouncer) {
		if now != nil {
			d.now = now
		}
	}
}

// New creates a Debouncer. A non-positive delay selects DefaultDelay.
func New(delay time.Duration, callback func(text string), opts ...Option) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer{
		delay:    delay,
		now:      time.Now,
		callback: callback,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Notify records text as the pending snapshot and restarts the quiet period.
func (d *Debouncer) Notify(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	p := d.state.Schedule(text, d.now())
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(p.Seq) })
}

// Flush delivers the pending snapshot immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	text, ok := d.state.Flush()
	d.mu.Unlock()

	if ok {
		d.deliver(text)
	}
}

// Cancel drops the pending snapshot without delivering it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Stop cancels the pending snapshot and disables the Debouncer. Later Notify
// calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.cancelLocked()
}

// Pending returns the outstanding commit, if any.
func (d *Debouncer) Pending() (PendingCommit, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Pending()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.state.Cancel()
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	text, ok := d.state.Fire(seq)
	if ok {
		d.timer = nil
	}
	d.mu.Unlock()

	if ok {
		d.deliver(text)
	}
}

func (d *Debouncer) deliver(text string) {
	if d.callback == nil {
		return
	}
	d.cbMu.Lock()
	defer d.cbMu.Unlock()
	d.callback(text)
}
