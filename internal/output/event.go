package output

import "cifmt/internal/message"

// Line is one formatted platform line, ready for the log.
type Line string

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - event (one per accepted input event)
// - run.finished
//
// JSON mode remains an aggregate array of the same records.
type Event struct {
	Type      string `json:"type"`
	Platform  string `json:"platform,omitempty"`
	Seq       int    `json:"seq,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Text      string `json:"text,omitempty"`
	Title     string `json:"title,omitempty"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	EndColumn int    `json:"end_column,omitempty"`
	Events    int    `json:"events,omitempty"`
	Skipped   int    `json:"skipped,omitempty"`
}

// EventFromMessage normalizes one accepted input event for the structured
// stream. seq is the 1-based ordinal of the input line it came from.
func EventFromMessage(seq int, m message.Message) Event {
	e := Event{
		Type:     "event",
		Seq:      seq,
		Kind:     string(m.Kind()),
		Severity: m.Severity().String(),
		Text:     m.Text(),
		Title:    m.Title(),
	}
	if loc, ok := m.Location(); ok {
		e.File = loc.File
		e.Line = loc.Line
		e.Column = loc.Col
		e.EndLine = loc.EndLine
		e.EndColumn = loc.EndCol
	}
	return e
}
