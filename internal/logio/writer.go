// Package logio adapts printf-style logging functions to io.Writer, so that
// stream-oriented loggers can feed them.
package logio

import (
	"bytes"
	"sync"
)

// Writer passes each complete line written to it through Logf, without its
// trailing newline. Carriage returns before the newline are dropped too.
type Writer struct {
	Logf func(mess string, args ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs every line it completes. Writes are serialized,
// so a Writer may be shared by goroutines. It never returns an error.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.logLines(false)
	return len(p), nil
}

// Flush logs any partial line left in the buffer.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.logLines(true)
	return nil
}

// Close calls Flush.
func (lw *Writer) Close() error {
	return lw.Flush()
}

func (lw *Writer) logLines(all bool) {
	for lw.buf.Len() > 0 {
		var line []byte
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			line = lw.buf.Next(i + 1)
			line = bytes.TrimSuffix(line[:i], []byte{'\r'})
		} else if all {
			line = lw.buf.Next(lw.buf.Len())
		} else {
			break
		}
		if lw.Logf != nil {
			lw.Logf("%s", line)
		}
	}
}
