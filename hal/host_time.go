//go:build !tinygo

package hal

import "time"

// hostTime turns wall-clock progress into 1ms ticks. It is advanced by the
// window or headless runner once per frame.
type hostTime struct {
	ch   chan uint64
	seq  uint64
	last time.Time
	acc  time.Duration
	now  func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance emits one tick per elapsed millisecond since the previous call.
func (t *hostTime) advance() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}
	elapsed := now.Sub(t.last)
	t.last = now
	t.advanceBy(elapsed)
}

// advanceBy emits ticks for d of simulated time, carrying the remainder.
func (t *hostTime) advanceBy(d time.Duration) {
	t.acc += d
	n := uint64(t.acc / time.Millisecond)
	t.acc %= time.Millisecond
	t.emit(n)
}

// emit publishes n ticks. When the channel is full the oldest sequence
// numbers are dropped; readers only need the latest.
func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
			select {
			case <-t.ch:
			default:
			}
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}
}
