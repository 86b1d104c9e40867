package platform

import "strings"

// GitHub workflow commands reserve %, CR and LF everywhere, and additionally
// : and , inside key=value properties. Escaping is applied exactly once per
// field, after composition; % must be replaced first so already-escaped
// sequences are not double-escaped. Applying either function to text with no
// reserved characters is a no-op.
//
// See https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions

var githubLineEscaper = strings.NewReplacer(
	"%", "%25",
	"\r", "%0D",
	"\n", "%0A",
)

var githubPropertyEscaper = strings.NewReplacer(
	"%", "%25",
	"\r", "%0D",
	"\n", "%0A",
	":", "%3A",
	",", "%2C",
)

// escapeGitHubLine makes text safe to embed in a workflow command's
// free-form message.
func escapeGitHubLine(s string) string {
	return githubLineEscaper.Replace(s)
}

// escapeGitHubProperty makes text safe to embed in a workflow command's
// key=value property list.
func escapeGitHubProperty(s string) string {
	return githubPropertyEscaper.Replace(s)
}

// escapeGitLabMarker strips line breaks from text embedded in a section
// marker line. A marker split across lines would not be recognized by the
// renderer, so any run of CR/LF becomes a single space.
func escapeGitLabMarker(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inBreak := false
	for _, r := range s {
		if r == '\r' || r == '\n' {
			if !inBreak {
				b.WriteByte(' ')
				inBreak = true
			}
			continue
		}
		inBreak = false
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeGitLabLine rewrites CRLF and bare CR to a single LF so a carriage
// return is never left embedded in plain log text.
func normalizeGitLabLine(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
