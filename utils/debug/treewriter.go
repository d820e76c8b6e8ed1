// Package debug renders nested structures as indented text for
// command output and report files.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes a "name: value" line, quoting string values so embedded
// whitespace survives round trips through logs.
func (tw TreeWriter) Field(depth int, name string, value any) {
	tw.indent(depth)
	tw.w.WriteString(name)
	tw.w.WriteString(": ")
	if s, ok := value.(string); ok {
		tw.w.WriteString(encodeText(s))
	} else {
		fmt.Fprintf(tw.w, "%v", value)
	}
	tw.w.WriteByte('\n')
}

// List writes a "name: a, b, c" line, skipping the line entirely when the
// list is empty.
func (tw TreeWriter) List(depth int, name string, values []string) {
	if len(values) == 0 {
		return
	}
	tw.indent(depth)
	tw.w.WriteString(name)
	tw.w.WriteString(": ")
	tw.w.WriteString(strings.Join(values, ", "))
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
