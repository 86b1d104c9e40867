package platform

import (
	"strings"
	"testing"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"
)

func TestGitLab_Sections(t *testing.T) {
	f := &GitLab{}
	var st groupstack.Stack

	got, _ := f.Format(mustGroupStart(t, "Build"), &st)
	if want := "section_start:sec1:Build"; got != want {
		t.Errorf("outer start = %q, want %q", got, want)
	}
	got, _ = f.Format(mustGroupStart(t, "Compile"), &st)
	if want := "section_start:sec2:Compile"; got != want {
		t.Errorf("nested start = %q, want %q", got, want)
	}

	got, _ = f.Format(message.NewGroupEnd(), &st)
	if want := "section_end:sec2"; got != want {
		t.Errorf("nested end = %q, want %q", got, want)
	}
	got, _ = f.Format(message.NewGroupEnd(), &st)
	if want := "section_end:sec1"; got != want {
		t.Errorf("outer end = %q, want %q", got, want)
	}
}

func TestGitLab_SectionIDsPairAcrossSiblings(t *testing.T) {
	f := &GitLab{}
	var st groupstack.Stack

	first, _ := f.Format(mustGroupStart(t, "A"), &st)
	firstEnd, _ := f.Format(message.NewGroupEnd(), &st)
	second, _ := f.Format(mustGroupStart(t, "B"), &st)
	secondEnd, _ := f.Format(message.NewGroupEnd(), &st)

	if first != "section_start:sec1:A" || firstEnd != "section_end:sec1" {
		t.Errorf("first pair = %q / %q", first, firstEnd)
	}
	if second != "section_start:sec1:B" || secondEnd != "section_end:sec1" {
		t.Errorf("second pair = %q / %q", second, secondEnd)
	}
}

func TestGitLab_TaggedLines(t *testing.T) {
	f := &GitLab{}

	tests := []struct {
		name string
		msg  func(t *testing.T) message.Message
		want string
	}{
		{
			name: "error with location",
			msg: func(t *testing.T) message.Message {
				return mustError(t, "missing semicolon", "", &message.Location{File: "src/main.rs", Line: 10, Col: 5})
			},
			want: "[ERROR] src/main.rs:10: missing semicolon",
		},
		{
			name: "warning without location",
			msg: func(t *testing.T) message.Message {
				m, err := message.NewWarning("slow test", "", nil)
				if err != nil {
					t.Fatal(err)
				}
				return m
			},
			want: "[WARN] slow test",
		},
		{
			name: "notice with title",
			msg: func(t *testing.T) message.Message {
				m, err := message.NewNotice("done", "Status", nil)
				if err != nil {
					t.Fatal(err)
				}
				return m
			},
			want: "[NOTE] Status: done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st groupstack.Stack
			got, ok := f.Format(tt.msg(t), &st)
			if !ok || got != tt.want {
				t.Errorf("Format() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}
}

func TestGitLab_MarkerLinesNeverContainLineBreaks(t *testing.T) {
	f := &GitLab{}
	var st groupstack.Stack

	got, _ := f.Format(mustGroupStart(t, "Build\r\nstage\ntwo"), &st)
	if strings.ContainsAny(got, "\r\n") {
		t.Fatalf("section marker contains a line break: %q", got)
	}
	if want := "section_start:sec1:Build stage two"; got != want {
		t.Errorf("marker = %q, want %q", got, want)
	}
}

func TestGitLab_CarriageReturnsNormalized(t *testing.T) {
	f := &GitLab{}
	var st groupstack.Stack

	if got, _ := f.Format(message.NewRaw("a\r\nb\rc"), &st); got != "a\nb\nc" {
		t.Errorf("raw = %q, want %q", got, "a\nb\nc")
	}
	msg := mustError(t, "first\r\nsecond", "", nil)
	if got, _ := f.Format(msg, &st); got != "[ERROR] first\nsecond" {
		t.Errorf("error = %q, want %q", got, "[ERROR] first\nsecond")
	}
}
