package message

import (
	"encoding/json"
	"fmt"
)

// lineSchema is the wire shape of one input line. Optional fields are
// pointers so an explicit zero can be told apart from an absent field.
// Unknown fields are ignored.
type lineSchema struct {
	Kind      string  `json:"kind"`
	Text      *string `json:"text"`
	Title     *string `json:"title"`
	File      *string `json:"file"`
	Line      *int    `json:"line"`
	Column    *int    `json:"column"`
	EndLine   *int    `json:"end_line"`
	EndColumn *int    `json:"end_column"`
}

// DecodeLine parses one input line into a Message. All validation happens
// here and in the Message constructors; any failure is a *SchemaError.
func DecodeLine(data []byte) (Message, error) {
	var raw lineSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, &SchemaError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if raw.Kind == "" {
		return Message{}, &SchemaError{Reason: "missing kind"}
	}

	switch Kind(raw.Kind) {
	case KindError, KindWarning, KindNotice:
		if raw.Text == nil {
			return Message{}, &SchemaError{Reason: fmt.Sprintf("%s requires text", raw.Kind)}
		}
		loc, err := raw.location()
		if err != nil {
			return Message{}, err
		}
		return newAnnotation(Kind(raw.Kind), *raw.Text, deref(raw.Title), loc)
	case KindGroupStart:
		if raw.Title == nil {
			return Message{}, &SchemaError{Reason: "group_start requires a title"}
		}
		return NewGroupStart(*raw.Title)
	case KindGroupEnd:
		return NewGroupEnd(), nil
	case KindRaw:
		if raw.Text == nil {
			return Message{}, &SchemaError{Reason: "raw requires text"}
		}
		return NewRaw(*raw.Text), nil
	}
	return Message{}, &SchemaError{Reason: fmt.Sprintf("unrecognized kind %q", raw.Kind)}
}

func (r *lineSchema) location() (*Location, error) {
	if r.File == nil && r.Line == nil && r.Column == nil && r.EndLine == nil && r.EndColumn == nil {
		return nil, nil
	}
	if r.File == nil || r.Line == nil {
		return nil, &SchemaError{Reason: "location requires both file and line"}
	}
	// An explicit non-positive value is an invariant violation, not an
	// absent field.
	for _, f := range []struct {
		name  string
		value *int
	}{
		{"line", r.Line},
		{"column", r.Column},
		{"end_line", r.EndLine},
		{"end_column", r.EndColumn},
	} {
		if f.value != nil && *f.value < 1 {
			return nil, &SchemaError{Reason: fmt.Sprintf("%s must be >= 1, got %d", f.name, *f.value)}
		}
	}
	return &Location{
		File:    *r.File,
		Line:    *r.Line,
		Col:     derefInt(r.Column),
		EndLine: derefInt(r.EndLine),
		EndCol:  derefInt(r.EndColumn),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
