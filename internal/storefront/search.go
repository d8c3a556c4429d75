package storefront

import (
	"sync"
	"time"
)

const DefaultSearchDelay = 500 * time.Millisecond

// Debouncer coalesces bursts of search input. Each Trigger replaces the
// pending text and restarts the delay; fn runs once with the last text.
type Debouncer struct {
	delay time.Duration
	fn    func(text string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending *string
}

func NewDebouncer(delay time.Duration, fn func(text string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

func (d *Debouncer) Trigger(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = &text
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A later Trigger, Flush or Stop superseded this timer.
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	text := *d.pending
	d.pending = nil
	d.mu.Unlock()

	d.fn(text)
}

// Flush runs the pending search now, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	p := d.pending
	d.pending = nil
	d.mu.Unlock()

	if p != nil {
		d.fn(*p)
	}
}

// Stop drops the pending search.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = nil
}
