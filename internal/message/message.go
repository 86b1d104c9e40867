package message

import "fmt"

// Kind identifies the variant of a diagnostic event.
type Kind string

const (
	KindError      Kind = "error"
	KindWarning    Kind = "warning"
	KindNotice     Kind = "notice"
	KindGroupStart Kind = "group_start"
	KindGroupEnd   Kind = "group_end"
	KindRaw        Kind = "raw"
)

// Severity classifies a message for color/annotation selection.
type Severity uint8

const (
	SeverityNone Severity = iota
	SeverityNotice
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return ""
}

// Location ties a message to a position in a file. Line is 1-based and
// required; the remaining numeric fields are optional, with zero meaning
// absent.
type Location struct {
	File    string
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

func (l *Location) validate() error {
	if l.File == "" {
		return &SchemaError{Reason: "location requires a file"}
	}
	if l.Line < 1 {
		return &SchemaError{Reason: fmt.Sprintf("line must be >= 1, got %d", l.Line)}
	}
	if l.Col < 0 {
		return &SchemaError{Reason: fmt.Sprintf("column must be >= 1, got %d", l.Col)}
	}
	if l.EndLine != 0 && l.EndLine < l.Line {
		return &SchemaError{Reason: fmt.Sprintf("end_line %d must be >= line %d", l.EndLine, l.Line)}
	}
	if l.EndCol < 0 {
		return &SchemaError{Reason: fmt.Sprintf("end_column must be >= 1, got %d", l.EndCol)}
	}
	if l.EndCol != 0 && l.Col == 0 {
		return &SchemaError{Reason: "end_column requires column"}
	}
	return nil
}

// Message is one diagnostic event. Messages are immutable once built; all
// construction goes through the New* functions, which validate the location
// invariants. Text is carried verbatim; escaping is a formatter concern.
type Message struct {
	kind  Kind
	text  string
	title string
	loc   *Location
}

func (m Message) Kind() Kind    { return m.kind }
func (m Message) Text() string  { return m.text }
func (m Message) Title() string { return m.title }

// Location returns the attached location, if any.
func (m Message) Location() (Location, bool) {
	if m.loc == nil {
		return Location{}, false
	}
	return *m.loc, true
}

func (m Message) Severity() Severity {
	switch m.kind {
	case KindError:
		return SeverityError
	case KindWarning:
		return SeverityWarning
	case KindNotice:
		return SeverityNotice
	}
	return SeverityNone
}

// NewError builds an error event. title and loc are optional (empty/nil).
func NewError(text, title string, loc *Location) (Message, error) {
	return newAnnotation(KindError, text, title, loc)
}

// NewWarning builds a warning event.
func NewWarning(text, title string, loc *Location) (Message, error) {
	return newAnnotation(KindWarning, text, title, loc)
}

// NewNotice builds a notice event.
func NewNotice(text, title string, loc *Location) (Message, error) {
	return newAnnotation(KindNotice, text, title, loc)
}

func newAnnotation(kind Kind, text, title string, loc *Location) (Message, error) {
	m := Message{kind: kind, text: text, title: title}
	if loc != nil {
		if err := loc.validate(); err != nil {
			return Message{}, err
		}
		cp := *loc
		m.loc = &cp
	}
	return m, nil
}

// NewGroupStart builds a group-start event. The title is required.
func NewGroupStart(title string) (Message, error) {
	if title == "" {
		return Message{}, &SchemaError{Reason: "group_start requires a title"}
	}
	return Message{kind: KindGroupStart, title: title}, nil
}

// NewGroupEnd builds a group-end event. It carries no payload.
func NewGroupEnd() Message {
	return Message{kind: KindGroupEnd}
}

// NewRaw builds a pass-through event.
func NewRaw(text string) Message {
	return Message{kind: KindRaw, text: text}
}
