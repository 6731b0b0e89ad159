package fs

import (
	"sync"
	"time"

	"github.com/aretw0/patina/pkg/core"
)

// debouncer coalesces bursts of events for the same path into a single
// delivery. Editors routinely emit several WRITE events for one save; we
// only want to stamp once.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the configured delay. A newer event for the
// same path supersedes a pending one; only the last event of a burst fires.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Path]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[e.Path] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		fire(e)
	})
}

// stopAndWait rejects new events and waits for in-flight timers to finish,
// up to timeout. Pending (not yet fired) timers are cancelled.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
