package hal

import (
	"io"
	"sync"
)

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger that writes each line to w. A nil w discards.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return &writerLogger{w: w}
}

func (l *writerLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	l.w.Write([]byte{'\n'})
}

func (l *writerLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
