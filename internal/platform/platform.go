// Package platform turns diagnostic messages into the control syntax a CI
// platform's log renderer expects: workflow commands for GitHub Actions,
// section markers for GitLab CI, and a colorized plain-text fallback.
package platform

import (
	"fmt"
	"os"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"
)

const (
	NameGitHub  = "github"
	NameGitLab  = "gitlab"
	NameGeneric = "generic"
	NameAuto    = "auto"
)

// Formatter renders one message for a single CI platform.
//
// Format is deterministic given the same message and stack state. It mutates
// the stack only for group messages and never fails for a message that
// passed construction validation; a group_end on an empty stack is the
// caller's job to guard (the dispatcher logs it and skips the call).
//
// ok reports whether the message produced a line at all. An empty line with
// ok=true is real output (an empty raw event passes through as a blank
// line); ok=false means the message only changed state, as with generic
// group transitions.
type Formatter interface {
	Name() string
	Format(msg message.Message, st *groupstack.Stack) (line string, ok bool)

	// CloseEntry emits the close sequence for one drained group entry, or ""
	// when the platform closes groups without output. It is used by Format on
	// group_end and by the dispatcher when force-closing groups the input
	// never closed.
	CloseEntry(e groupstack.Entry) string
}

// Select resolves a platform name to its formatter. The choice is fixed for
// the lifetime of a run.
func Select(name string) (Formatter, error) {
	switch name {
	case NameGitHub:
		return &GitHub{}, nil
	case NameGitLab:
		return &GitLab{}, nil
	case NameGeneric:
		return NewGeneric(), nil
	case NameAuto:
		return Detect(), nil
	}
	return nil, fmt.Errorf("unsupported platform: %s (must be one of: %s, %s, %s, %s)",
		name, NameGitHub, NameGitLab, NameGeneric, NameAuto)
}

// Detect infers the platform from well-known CI environment variables,
// falling back to the generic formatter.
func Detect() Formatter {
	if os.Getenv("GITHUB_ACTIONS") != "" {
		return &GitHub{}
	}
	if os.Getenv("GITLAB_CI") != "" {
		return &GitLab{}
	}
	return NewGeneric()
}

// Info describes one supported platform for discovery output.
type Info struct {
	Name        string
	Title       string
	Description string
}

// List returns the supported platforms, in selection-name order.
func List() []Info {
	return []Info{
		{
			Name:        NameGeneric,
			Title:       "Generic colorized output",
			Description: "Plain text with colorized severity tags and indentation for groups. Used when no CI platform is detected.",
		},
		{
			Name:        NameGitHub,
			Title:       "GitHub Actions",
			Description: "Workflow commands (::error::, ::group::, ...) rendered as annotations and collapsible groups. Detected via GITHUB_ACTIONS.",
		},
		{
			Name:        NameGitLab,
			Title:       "GitLab CI",
			Description: "Section markers (section_start/section_end) rendered as collapsible sections. Detected via GITLAB_CI.",
		},
	}
}
