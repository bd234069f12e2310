package keyboard

import (
	"context"
	"io"
	"sync"
)

// Source is a polling byte source. Available never blocks. ReadByte returns
// io.EOF once the source is exhausted and will produce nothing more.
type Source interface {
	Available() bool
	ReadByte() (byte, error)
}

// Waiter is implemented by sources that can block until a byte arrives.
// Wait returns nil when a byte is available, io.EOF when none ever will be,
// or the context's error.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Queue is an in-memory Source. Bytes pushed from any goroutine are read in
// order. Once closed and drained it reports io.EOF.
type Queue struct {
	mu     sync.Mutex
	buf    []byte
	closed bool
	notify chan struct{}
}

// NewQueue returns a queue holding the given bytes.
func NewQueue(b ...byte) *Queue {
	return &Queue{
		buf:    append([]byte(nil), b...),
		notify: make(chan struct{}, 1),
	}
}

// Push appends bytes to the queue.
func (q *Queue) Push(b ...byte) {
	q.mu.Lock()
	q.buf = append(q.buf, b...)
	q.mu.Unlock()
	q.signal()
}

// Close marks the queue finished. Bytes already queued can still be read.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// Available reports whether a byte can be read.
func (q *Queue) Available() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf) > 0
}

// ReadByte returns the next byte. An empty queue returns io.EOF whether or
// not it is closed; callers poll Available first.
func (q *Queue) ReadByte() (byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) == 0 {
		return 0, io.EOF
	}
	b := q.buf[0]
	q.buf = q.buf[1:]
	return b, nil
}

// Len returns the number of queued bytes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Wait blocks until a byte is queued, the queue is closed and empty, or ctx
// is done.
func (q *Queue) Wait(ctx context.Context) error {
	for {
		q.mu.Lock()
		n, closed := len(q.buf), q.closed
		q.mu.Unlock()

		switch {
		case n > 0:
			return nil
		case closed:
			return io.EOF
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.notify:
		}
	}
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
