// Package logger provides logging functionality for arvore.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes prefixed lines to a writer.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewVerboseLogger creates a logger writing "[verbose]" lines to stderr,
// keeping stdout clean for machine-readable output.
func NewVerboseLogger() Logger {
	return newWriterLogger(os.Stderr, "[verbose] ")
}

func newWriterLogger(out io.Writer, prefix string) *writerLogger {
	return &writerLogger{out: out, prefix: prefix}
}

// Logf writes a formatted message with thread safety.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, w.prefix+format+"\n", args...)
}
