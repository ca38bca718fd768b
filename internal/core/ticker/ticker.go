// Package ticker provides a heartbeat that runs in its own goroutine so that
// its cadence is independent of whatever consumes the ticks.
package ticker

import (
	"sync"
	"time"
)

// DefaultInterval is used when Start receives a non-positive interval.
const DefaultInterval = time.Second

type commandKind int

const (
	commandStart commandKind = iota
	commandStop
)

type command struct {
	kind     commandKind
	interval time.Duration
}

// Source emits one tick per interval on Ticks until stopped.
// Each Source owns its own repeating timer; nothing is shared between instances.
type Source struct {
	commands    chan command
	ticks       chan struct{}
	done        chan struct{}
	disposeOnce sync.Once
}

// New creates a Source and launches its goroutine. The source starts idle.
func New() *Source {
	source := &Source{
		commands: make(chan command),
		ticks:    make(chan struct{}),
		done:     make(chan struct{}),
	}
	go source.run()
	return source
}

// Ticks returns the channel ticks are delivered on. It is closed after Dispose.
func (source *Source) Ticks() <-chan struct{} {
	return source.ticks
}

// Start begins emitting ticks. It is a no-op while a ticker is already active.
func (source *Source) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	source.send(command{kind: commandStart, interval: interval})
}

// Stop halts emission. Ticks not yet delivered are discarded.
func (source *Source) Stop() {
	source.send(command{kind: commandStop})
}

// Dispose stops emission and terminates the goroutine. The Source is unusable afterwards.
func (source *Source) Dispose() {
	source.disposeOnce.Do(func() {
		close(source.done)
	})
}

func (source *Source) send(cmd command) {
	select {
	case source.commands <- cmd:
	case <-source.done:
	}
}

func (source *Source) run() {
	defer close(source.ticks)

	var (
		ticker  *time.Ticker
		tickC   <-chan time.Time
		pending int
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
		pending = 0
	}
	defer stopTicker()

	for {
		// Deliver only while something is owed; a nil channel disables the case.
		var out chan<- struct{}
		if pending > 0 {
			out = source.ticks
		}

		select {
		case <-source.done:
			return
		case cmd := <-source.commands:
			switch cmd.kind {
			case commandStart:
				if ticker == nil {
					ticker = time.NewTicker(cmd.interval)
					tickC = ticker.C
				}
			case commandStop:
				stopTicker()
			}
		case <-tickC:
			pending++
		case out <- struct{}{}:
			pending--
		}
	}
}
