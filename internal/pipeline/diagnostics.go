package pipeline

import (
	"fmt"
	"io"
)

// Diagnostics is the side channel for malformed-line and unmatched-group
// incidents. It is kept separate from the formatted output so machine
// consumers of stdout never see it; one line per incident, each carrying the
// offending input line's ordinal and a reason.
type Diagnostics struct {
	w         io.Writer
	incidents int
}

func NewDiagnostics(w io.Writer) *Diagnostics {
	if w == nil {
		w = io.Discard
	}
	return &Diagnostics{w: w}
}

// Warnf records one skipped or tolerated incident against an input line.
func (d *Diagnostics) Warnf(line int, format string, args ...any) {
	d.incidents++
	fmt.Fprintf(d.w, "cifmt: line %d: %s\n", line, fmt.Sprintf(format, args...))
}

// Infof records run-level information (e.g. groups force-closed at stream
// end). Informational lines do not count as incidents.
func (d *Diagnostics) Infof(format string, args ...any) {
	fmt.Fprintf(d.w, "cifmt: %s\n", fmt.Sprintf(format, args...))
}

// Incidents reports how many lines were skipped or tolerated.
func (d *Diagnostics) Incidents() int {
	return d.incidents
}
