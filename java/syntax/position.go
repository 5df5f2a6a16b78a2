package syntax

import "fmt"

// Position is a location in the parsed source. Offset is a byte offset,
// Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers the half-open byte range [Start.Offset, End.Offset).
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
