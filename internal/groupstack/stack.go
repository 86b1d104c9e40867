// Package groupstack tracks open/close nesting of log section groups across
// an event stream. It is the only per-run mutable state in the pipeline; the
// dispatcher owns one Stack per run and passes it into each formatter call.
package groupstack

import "fmt"

// Entry is one open group. ID is derived from the nesting depth at push time
// so formatters that need matching start/end identifiers (GitLab section
// markers) can pair them without keeping state of their own.
type Entry struct {
	ID    string
	Title string
}

// Stack is an ordered sequence of open groups, outermost first.
// The zero value is an empty stack ready for use.
type Stack struct {
	entries []Entry
}

// Depth returns the number of currently open groups.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Push opens a group and returns its entry. It always succeeds.
func (s *Stack) Push(title string) Entry {
	e := Entry{ID: fmt.Sprintf("sec%d", len(s.entries)+1), Title: title}
	s.entries = append(s.entries, e)
	return e
}

// Pop closes the innermost group. Popping an empty stack is a non-fatal
// underflow: ok is false and the stack is unchanged. The caller is expected
// to record a diagnostic; CI log renderers tolerate stray end markers.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e, true
}

// DrainAll returns and clears every open group, innermost first, so the
// dispatcher can emit close sequences in proper nesting order at stream end.
func (s *Stack) DrainAll() []Entry {
	if len(s.entries) == 0 {
		return nil
	}
	drained := make([]Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		drained = append(drained, s.entries[i])
	}
	s.entries = s.entries[:0]
	return drained
}
