// Package pipeline drives the event stream: read a line, decode it, format
// it for the selected platform, write it to the sinks. One event is fully
// processed before the next is read; the grouping stack is the only mutable
// state and lives for exactly one run.
package pipeline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"cifmt/internal/groupstack"
	"cifmt/internal/message"
	"cifmt/internal/output"
	"cifmt/internal/platform"
)

// maxLineSize bounds a single input line. Compiler output can carry whole
// source snippets in one JSON object, so the default scanner limit is too
// small. A line over the bound is skipped with a diagnostic, like any other
// bad input line; it never aborts the run.
const maxLineSize = 1024 * 1024

type Dispatcher struct {
	formatter platform.Formatter
	out       *output.Manager
	diags     *Diagnostics
	stack     groupstack.Stack
}

func New(f platform.Formatter, out *output.Manager, diagWriter io.Writer) *Dispatcher {
	return &Dispatcher{
		formatter: f,
		out:       out,
		diags:     NewDiagnostics(diagWriter),
	}
}

// Diagnostics exposes the incident channel, mainly so callers can report a
// summary after the run.
func (d *Dispatcher) Diagnostics() *Diagnostics {
	return d.diags
}

// Run consumes the event stream until EOF. Malformed, oversized and
// unmatched-group lines are logged and skipped; any sink or input failure
// aborts the run and is the only error Run returns. At end of stream every
// group the input left open is force-closed so the rendered output is
// balanced.
func (d *Dispatcher) Run(r io.Reader) error {
	if err := d.out.Write(output.Event{Type: "run.started", Platform: d.formatter.Name()}); err != nil {
		return fmt.Errorf("write run.started: %w", err)
	}

	reader := bufio.NewReaderSize(r, 64*1024)
	lineNo := 0
	accepted := 0
	for {
		raw, tooLong, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		lineNo++
		if tooLong {
			d.diags.Warnf(lineNo, "skipping event: line exceeds %d bytes", maxLineSize)
			continue
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}

		msg, err := message.DecodeLine(raw)
		if err != nil {
			d.diags.Warnf(lineNo, "skipping event: %v", err)
			continue
		}

		if msg.Kind() == message.KindGroupEnd && d.stack.Depth() == 0 {
			d.diags.Warnf(lineNo, "unmatched group_end: no open group")
			continue
		}

		accepted++
		if line, ok := d.formatter.Format(msg, &d.stack); ok {
			if err := d.out.Write(output.Line(line)); err != nil {
				return fmt.Errorf("write formatted line: %w", err)
			}
		}
		if err := d.out.Write(output.EventFromMessage(lineNo, msg)); err != nil {
			return fmt.Errorf("write event: %w", err)
		}
	}

	if drained := d.stack.DrainAll(); len(drained) > 0 {
		d.diags.Infof("force-closing %d group(s) left open at end of stream", len(drained))
		for _, e := range drained {
			if line := d.formatter.CloseEntry(e); line != "" {
				if err := d.out.Write(output.Line(line)); err != nil {
					return fmt.Errorf("write close sequence: %w", err)
				}
			}
		}
	}

	finished := output.Event{Type: "run.finished", Events: accepted, Skipped: d.diags.Incidents()}
	if err := d.out.Write(finished); err != nil {
		return fmt.Errorf("write run.finished: %w", err)
	}
	return nil
}

// readLine returns the next input line without its line ending. A line
// longer than maxLineSize is consumed through its terminating newline and
// reported as tooLong instead of returned, so one oversized line costs one
// diagnostic and nothing else. io.EOF is only returned once the input is
// exhausted.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)

		if err == bufio.ErrBufferFull {
			if len(line) > maxLineSize {
				return nil, true, discardLine(r)
			}
			continue
		}
		if err == io.EOF {
			if len(line) == 0 {
				return nil, false, io.EOF
			}
		} else if err != nil {
			return nil, false, err
		}

		line = bytes.TrimSuffix(line, []byte{'\n'})
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) > maxLineSize {
			return nil, true, nil
		}
		return line, false, nil
	}
}

// discardLine consumes input through the next newline. It reports read
// failures but treats end of input as success; the caller sees the EOF on
// its next read.
func discardLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		switch err {
		case nil, io.EOF:
			return nil
		case bufio.ErrBufferFull:
			continue
		default:
			return err
		}
	}
}
