// Package format renders diagnostics for the terminal and for tools.
package format

import "github.com/dhamidi/remod/lint"

// FileDiagnostics pairs a file with its findings.
type FileDiagnostics struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

// Encoder writes diagnostics for a set of files.
type Encoder interface {
	Encode(files []FileDiagnostics) error
}
