// Package lint detects redundant declaration modifiers in Java source.
package lint

import (
	"fmt"
	"sort"

	"github.com/dhamidi/remod/java/syntax"
)

// Severity defines the importance of a diagnostic.
type Severity int

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity converts a configuration string to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "info":
		return SevInfo, nil
	case "warning":
		return SevWarning, nil
	case "error":
		return SevError, nil
	}
	return SevWarning, fmt.Errorf("unknown severity %q", name)
}

// Diagnostic is one finding. Span covers the flagged token in the
// analyzed source.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Span     syntax.Span
}

// Sort orders diagnostics by start offset, end offset, then rule, for
// deterministic output.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i], diags[j]
		if di.Span.Start.Offset != dj.Span.Start.Offset {
			return di.Span.Start.Offset < dj.Span.Start.Offset
		}
		if di.Span.End.Offset != dj.Span.End.Offset {
			return di.Span.End.Offset < dj.Span.End.Offset
		}
		return di.Rule < dj.Rule
	})
}

// Dedup removes diagnostics that flag a span already flagged by an
// earlier entry. Call after Sort.
func Dedup(diags []Diagnostic) []Diagnostic {
	out := diags[:0]
	var last syntax.Span
	for i, d := range diags {
		if i > 0 && d.Span == last {
			continue
		}
		last = d.Span
		out = append(out, d)
	}
	return out
}
