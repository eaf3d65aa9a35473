package render

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlath-ga/cities"
	"github.com/katalvlaran/lvlath-ga/genetic"
)

// frame is one pending Render call.
type frame struct {
	order   []int
	caption string
}

// Live runs a Renderer on its own goroutine. It also implements
// genetic.Reporter so an engine can feed it directly.
type Live struct {
	r     Renderer
	table *cities.Table

	frames chan frame
	done   chan struct{}

	mu      sync.Mutex
	closed  bool
	err     error
	dropped atomic.Int64
}

// NewLive starts the drawing goroutine. Close must be called to stop it.
func NewLive(r Renderer, table *cities.Table) *Live {
	l := &Live{
		r:      r,
		table:  table,
		frames: make(chan frame, 1),
		done:   make(chan struct{}),
	}
	go l.loop()

	return l
}

func (l *Live) loop() {
	defer close(l.done)
	for f := range l.frames {
		if err := l.r.Render(l.table, f.order, f.caption); err != nil {
			l.mu.Lock()
			if l.err == nil {
				l.err = err
			}
			l.mu.Unlock()
		}
	}
}

// Submit queues a frame without blocking. It reports false when the frame
// was dropped because the renderer is busy or Live is closed. order is
// copied.
func (l *Live) Submit(order []int, caption string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	select {
	case l.frames <- frame{order: append([]int(nil), order...), caption: caption}:
		return true
	default:
		l.dropped.Add(1)
		return false
	}
}

// Dropped returns how many frames Submit discarded.
func (l *Live) Dropped() int64 { return l.dropped.Load() }

// Close drains queued frames, stops the goroutine and returns the first
// render error. It is safe to call more than once.
func (l *Live) Close() error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.frames)
	}
	l.mu.Unlock()
	<-l.done

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.err
}

// Checkpoint implements genetic.Reporter.
func (l *Live) Checkpoint(s genetic.Snapshot) {
	l.Submit(s.Order, fmt.Sprintf("generation %d  best %.2f  mean %.2f", s.Generation, s.Best, s.Mean))
}

// Final implements genetic.Reporter.
func (l *Live) Final(res genetic.Result) {
	l.Submit(res.Order, fmt.Sprintf("final  generations %d  length %.2f", res.Generations, res.Length))
}
