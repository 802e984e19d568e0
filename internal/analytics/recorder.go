package analytics

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrClosed is returned when recording after Close.
var ErrClosed = errors.New("analytics: recorder closed")

// Writer is the part of Store the recorder needs.
type Writer interface {
	RecordVisit(ctx context.Context, v Visit) error
	RecordInteraction(ctx context.Context, in Interaction) error
}

type event struct {
	visit       *Visit
	interaction *Interaction
}

// Recorder writes events on a single background goroutine so request
// handlers never wait on the database. When the buffer is full events are
// dropped.
type Recorder struct {
	w       Writer
	log     *zap.Logger
	events  chan event
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewRecorder(w Writer, buffer int, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Recorder{
		w:       w,
		log:     log,
		events:  make(chan event, buffer),
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Recorder) loop() {
	defer close(r.done)
	for ev := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		var err error
		switch {
		case ev.visit != nil:
			err = r.w.RecordVisit(ctx, *ev.visit)
		case ev.interaction != nil:
			err = r.w.RecordInteraction(ctx, *ev.interaction)
		}
		cancel()
		if err != nil {
			r.log.Error("error recording analytics event", zap.Error(err))
		}
	}
}

func (r *Recorder) enqueue(ev event) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	select {
	case r.events <- ev:
	default:
		r.log.Warn("analytics buffer full, dropping event")
	}
	return nil
}

func (r *Recorder) Visit(v Visit) error {
	return r.enqueue(event{visit: &v})
}

func (r *Recorder) Interaction(in Interaction) error {
	return r.enqueue(event{interaction: &in})
}

// Close stops accepting events, writes what is buffered and waits for the
// writer goroutine to exit.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.events)
	}
	r.mu.Unlock()
	<-r.done
}
