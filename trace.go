package parsey

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
//
// Each rule match, literal fallback and frame completion is written with
// indentation reflecting recursion depth.
func Trace(w io.Writer) ParseOption {
	return func(d *driver) {
		d.trace = traceWriter{w}
	}
}

type traceWriter struct {
	w io.Writer
}

func (t traceWriter) printf(depth int, format string, args ...interface{}) {
	if t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (t traceWriter) match(depth int, rule Rule, consumed string) {
	t.printf(depth, "%s %q", rule.Name, consumed)
}

func (t traceWriter) literal(depth int, char string) {
	t.printf(depth, "literal %q", char)
}

func (t traceWriter) close(depth int, rule Rule) {
	t.printf(depth, "end %s", rule.Name)
}
