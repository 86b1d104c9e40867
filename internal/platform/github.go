package platform

import (
	"strconv"
	"strings"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"
)

// GitHub formats messages as GitHub Actions workflow commands. Annotations
// become ::error/::warning/::notice commands with a comma-joined property
// list; groups become ::group::/::endgroup:: pairs.
type GitHub struct{}

func (g *GitHub) Name() string { return NameGitHub }

func (g *GitHub) Format(msg message.Message, st *groupstack.Stack) (string, bool) {
	switch msg.Kind() {
	case message.KindGroupStart:
		st.Push(msg.Title())
		return "::group::" + escapeGitHubProperty(msg.Title()), true
	case message.KindGroupEnd:
		e, ok := st.Pop()
		if !ok {
			return "", false
		}
		return g.CloseEntry(e), true
	case message.KindRaw:
		return escapeGitHubLine(msg.Text()), true
	}
	return g.annotation(msg), true
}

func (g *GitHub) CloseEntry(groupstack.Entry) string {
	return "::endgroup::"
}

// annotation builds "::<command> <props>::<message>". Property order
// follows the workflow command reference: file, line, col, endLine,
// endColumn, title.
func (g *GitHub) annotation(msg message.Message) string {
	var props []string
	appendProp := func(key, value string) {
		props = append(props, key+"="+escapeGitHubProperty(value))
	}
	if loc, ok := msg.Location(); ok {
		appendProp("file", loc.File)
		appendProp("line", strconv.Itoa(loc.Line))
		if loc.Col > 0 {
			appendProp("col", strconv.Itoa(loc.Col))
		}
		if loc.EndLine > 0 {
			appendProp("endLine", strconv.Itoa(loc.EndLine))
		}
		if loc.EndCol > 0 {
			appendProp("endColumn", strconv.Itoa(loc.EndCol))
		}
	}
	if msg.Title() != "" {
		appendProp("title", msg.Title())
	}

	return "::" + msg.Severity().String() + " " + strings.Join(props, ",") + "::" + escapeGitHubLine(msg.Text())
}
