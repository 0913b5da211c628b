package parser

import (
	"fmt"

	"github.com/seitarof/prototype/internal/model"
)

// Stats counts what the parser saw.
type Stats struct {
	Lines      int
	EmptyLines int
	Comments   int
	// Structures counts structure commits, replacements included.
	// Container.Size() is the number of distinct structures.
	Structures int
}

// Diagnostic is one recoverable parse problem.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d", d.Message, d.Line)
}

// Result is the best-effort outcome of one parse run.
type Result struct {
	Stats       Stats
	Diagnostics []Diagnostic
	Container   *model.Container
}

// Errors renders diagnostics as human readable messages.
func (r *Result) Errors() []string {
	out := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		out = append(out, d.String())
	}
	return out
}

// HasErrors reports whether any line was rejected.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

func (r *Result) errorf(line int, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}
