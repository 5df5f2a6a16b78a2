package format

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dhamidi/remod/lint"
)

// TextEncoder writes one line per diagnostic:
//
//	path:line:col: severity: message [rule]
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

var (
	severityColors = map[lint.Severity]*color.Color{
		lint.SevInfo:    color.New(color.FgCyan),
		lint.SevWarning: color.New(color.FgYellow),
		lint.SevError:   color.New(color.FgRed),
	}
	pathColor = color.New(color.Bold)
	ruleColor = color.New(color.Faint)
)

func (e *TextEncoder) Encode(files []FileDiagnostics) error {
	for _, file := range files {
		for _, d := range file.Diagnostics {
			sev := severityColors[d.Severity]
			if sev == nil {
				sev = color.New()
			}
			_, err := fmt.Fprintf(e.w, "%s: %s: %s %s\n",
				pathColor.Sprintf("%s:%d:%d", file.Path, d.Span.Start.Line, d.Span.Start.Column),
				sev.Sprint(d.Severity),
				d.Message,
				ruleColor.Sprintf("[%s]", d.Rule),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
