package platform

import (
	"fmt"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"
)

// GitLab formats messages as GitLab CI section markers and tagged plain
// lines. Section start and end markers carry a matching identifier; the
// identifier is the one minted by the stack at push time, so end markers
// always pair with the start marker at the same nesting level.
type GitLab struct{}

func (g *GitLab) Name() string { return NameGitLab }

func (g *GitLab) Format(msg message.Message, st *groupstack.Stack) (string, bool) {
	switch msg.Kind() {
	case message.KindGroupStart:
		e := st.Push(msg.Title())
		return fmt.Sprintf("section_start:%s:%s", e.ID, escapeGitLabMarker(msg.Title())), true
	case message.KindGroupEnd:
		e, ok := st.Pop()
		if !ok {
			return "", false
		}
		return g.CloseEntry(e), true
	case message.KindRaw:
		return normalizeGitLabLine(msg.Text()), true
	}
	return g.taggedLine(msg), true
}

func (g *GitLab) CloseEntry(e groupstack.Entry) string {
	return "section_end:" + e.ID
}

func (g *GitLab) taggedLine(msg message.Message) string {
	line := "[" + severityTag(msg.Severity()) + "] "
	if loc, ok := msg.Location(); ok {
		line += fmt.Sprintf("%s:%d: ", escapeGitLabMarker(loc.File), loc.Line)
	}
	if msg.Title() != "" {
		line += escapeGitLabMarker(msg.Title()) + ": "
	}
	return line + normalizeGitLabLine(msg.Text())
}
