package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/remod/lint"
)

// JSONEncoder writes diagnostics as a JSON array, one element per
// finding.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

type jsonDiagnostic struct {
	Path     string   `json:"path"`
	Rule     string   `json:"rule"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Span     jsonSpan `json:"span"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *JSONEncoder) Encode(files []FileDiagnostics) error {
	out := make([]jsonDiagnostic, 0)
	for _, file := range files {
		for _, d := range file.Diagnostics {
			out = append(out, jsonDiagnostic{
				Path:     file.Path,
				Rule:     d.Rule,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Span:     toJSONSpan(d),
			})
		}
	}
	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func toJSONSpan(d lint.Diagnostic) jsonSpan {
	return jsonSpan{
		Start: jsonPosition{Offset: d.Span.Start.Offset, Line: d.Span.Start.Line, Column: d.Span.Start.Column},
		End:   jsonPosition{Offset: d.Span.End.Offset, Line: d.Span.End.Line, Column: d.Span.End.Column},
	}
}
