package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleSink writes formatted platform lines to the console. The CI
// renderer consumes these lines, so every line is flushed as soon as it is
// written; a buffered log that arrives after the job finished is useless.
type ConsoleSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{writer: w}
}

func (s *ConsoleSink) Write(v any) error {
	line, ok := v.(Line)
	if !ok {
		// Ignore lifecycle events; the console carries formatted lines only.
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.writer, string(line)); err != nil {
		return err
	}
	return flushIfPossible(s.writer)
}

func (s *ConsoleSink) Close() error {
	return nil
}
