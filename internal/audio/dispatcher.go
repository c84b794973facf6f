package audio

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// DefaultQueue is the dispatcher's default event buffer.
const DefaultQueue = 64

// Dispatcher forwards simulation events to a Backend from its own
// goroutine. Publish never blocks: when the queue is full the event is
// dropped and counted.
type Dispatcher struct {
	backend Backend
	logger  *log.Logger
	events  chan core.Event
	done    chan struct{}

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

// NewDispatcher starts a dispatcher for b. A non-positive queue size uses
// DefaultQueue.
func NewDispatcher(b Backend, queue int, logger *log.Logger) *Dispatcher {
	if queue <= 0 {
		queue = DefaultQueue
	}
	d := &Dispatcher{
		backend: b,
		logger:  logger,
		events:  make(chan core.Event, queue),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.events {
		switch ev.Kind {
		case core.EventGameOver, core.EventVictory:
			d.backend.StopMusic()
		}
		d.backend.PlayEffect(ev.Kind)
	}
}

// Publish queues events for playback.
func (d *Dispatcher) Publish(events ...core.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	for _, ev := range events {
		select {
		case d.events <- ev:
		default:
			if d.dropped.Add(1) == 1 && d.logger != nil {
				d.logger.Debug("audio queue full, dropping events")
			}
		}
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Backend returns the backend events are played on.
func (d *Dispatcher) Backend() Backend {
	return d.backend
}

// Close drains the queue, stops the goroutine and closes the backend.
// It is safe to call more than once.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return nil
	}
	d.closed = true
	close(d.events)
	d.mu.Unlock()

	<-d.done
	return d.backend.Close()
}
