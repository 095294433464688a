package watch

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces bursts of events per path and flushes them once no
// event has arrived for the window, or as soon as maxBatch distinct paths are
// pending. The latest event for a path wins.
type Debouncer struct {
	window   time.Duration
	maxBatch int
	onFlush  func([]FileEvent)

	mu      sync.Mutex
	events  map[string]FileEvent
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer calling onFlush with events sorted by path.
func NewDebouncer(window time.Duration, maxBatch int, onFlush func([]FileEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		maxBatch: maxBatch,
		onFlush:  onFlush,
		events:   make(map[string]FileEvent),
	}
}

// Add queues an event and restarts the window.
func (d *Debouncer) Add(event FileEvent) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.events[event.Path] = event

	if d.maxBatch > 0 && len(d.events) >= d.maxBatch {
		d.flushLocked()
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.flushLocked()
	})
	d.mu.Unlock()
}

// flushLocked must be called with mu held and releases it.
func (d *Debouncer) flushLocked() {
	events := make([]FileEvent, 0, len(d.events))
	for _, event := range d.events {
		events = append(events, event)
	}
	d.events = make(map[string]FileEvent)
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if len(events) > 0 && d.onFlush != nil {
		slices.SortFunc(events, func(a, b FileEvent) int { return cmp.Compare(a.Path, b.Path) })
		d.onFlush(events)
	}
}

// Stop flushes pending events and ignores any that arrive later.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.flushLocked()
}
