package platform

import (
	"io"
	"sync"
)

// RingBuffer is a fixed-capacity byte ring feeding oto's pull-model
// player from the audio-sample-batch callback's push model. Grounded in
// the teacher's AudioRingBuffer (standalone/audio.go's NewAudioPlayer
// wires one as the oto.Player's io.Reader); overflow drops the oldest
// bytes rather than blocking the emulator's audio callback, since the
// audio mixer is a single-writer/single-reader queue the platform owns
// and the worker must never block on.
type RingBuffer struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	buf      []byte
	read     int
	write    int
	count    int
	closed   bool
}

// NewRingBuffer returns an empty ring of the given byte capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	rb := &RingBuffer{buf: make([]byte, capacity)}
	rb.notEmpty = sync.NewCond(&rb.mu)
	return rb
}

// Write appends p, dropping the oldest buffered bytes first if p would
// overflow capacity. Silently ignored once Close has been called.
func (rb *RingBuffer) Write(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.closed {
		return len(p), nil
	}

	if len(p) >= len(rb.buf) {
		copy(rb.buf, p[len(p)-len(rb.buf):])
		rb.read = 0
		rb.write = 0
		rb.count = len(rb.buf)
		rb.notEmpty.Broadcast()
		return len(p), nil
	}

	for _, b := range p {
		rb.buf[rb.write] = b
		rb.write = (rb.write + 1) % len(rb.buf)
		if rb.count == len(rb.buf) {
			rb.read = (rb.read + 1) % len(rb.buf)
		} else {
			rb.count++
		}
	}
	rb.notEmpty.Broadcast()
	return len(p), nil
}

// Read blocks until at least one byte is available or Close is called,
// implementing io.Reader for oto.NewPlayer.
func (rb *RingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	for rb.count == 0 && !rb.closed {
		rb.notEmpty.Wait()
	}
	if rb.count == 0 && rb.closed {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && rb.count > 0 {
		p[n] = rb.buf[rb.read]
		rb.read = (rb.read + 1) % len(rb.buf)
		rb.count--
		n++
	}
	return n, nil
}

// Buffered returns the number of bytes currently queued.
func (rb *RingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Clear discards all buffered bytes without closing the ring, used after
// a save-state load to drop stale audio.
func (rb *RingBuffer) Clear() {
	rb.mu.Lock()
	rb.read, rb.write, rb.count = 0, 0, 0
	rb.mu.Unlock()
}

// Close marks the ring closed: buffered data can still drain via Read,
// but Write becomes a no-op and a Read blocked on an empty buffer
// returns io.EOF instead of blocking forever.
func (rb *RingBuffer) Close() error {
	rb.mu.Lock()
	rb.closed = true
	rb.mu.Unlock()
	rb.notEmpty.Broadcast()
	return nil
}
