package platform

import (
	"fmt"
	"strings"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"

	"github.com/fatih/color"
)

const genericIndent = "  "

// Generic is the fallback formatter for terminals and CI systems without a
// recognized control syntax. Groups change indentation only; severity lines
// get a colorized tag. Raw text at depth 0 passes through byte-for-byte;
// color is only ever added around text, never inside it.
type Generic struct {
	tags map[message.Severity]*color.Color
}

func NewGeneric() *Generic {
	return &Generic{
		tags: map[message.Severity]*color.Color{
			message.SeverityError:   color.New(color.FgRed, color.Bold),
			message.SeverityWarning: color.New(color.FgYellow),
			message.SeverityNotice:  color.New(color.FgCyan),
		},
	}
}

func (g *Generic) Name() string { return NameGeneric }

func (g *Generic) Format(msg message.Message, st *groupstack.Stack) (string, bool) {
	switch msg.Kind() {
	case message.KindGroupStart:
		st.Push(msg.Title())
		return "", false
	case message.KindGroupEnd:
		st.Pop()
		return "", false
	case message.KindRaw:
		return indent(st.Depth()) + msg.Text(), true
	}

	line := indent(st.Depth()) + g.tags[msg.Severity()].Sprintf("[%s]", severityTag(msg.Severity())) + " "
	if loc, ok := msg.Location(); ok {
		line += loc.File + ":" + fmt.Sprint(loc.Line)
		if loc.Col > 0 {
			line += ":" + fmt.Sprint(loc.Col)
		}
		line += ": "
	}
	if msg.Title() != "" {
		line += msg.Title() + ": "
	}
	return line + msg.Text(), true
}

// CloseEntry emits nothing: force-closing a group only returns the
// indentation level to its enclosing depth.
func (g *Generic) CloseEntry(groupstack.Entry) string {
	return ""
}

func indent(depth int) string {
	return strings.Repeat(genericIndent, depth)
}

// severityTag is the plain-text tag shared by the GitLab and generic
// formatters.
func severityTag(s message.Severity) string {
	switch s {
	case message.SeverityError:
		return "ERROR"
	case message.SeverityWarning:
		return "WARN"
	case message.SeverityNotice:
		return "NOTE"
	}
	return ""
}
