package syntax

// TriviaKind classifies non-semantic source material.
type TriviaKind int

const (
	// TriviaSpace is a run of horizontal whitespace (spaces and tabs).
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a single line terminator ("\n", "\r\n", or "\r").
	TriviaNewline
	// TriviaLineComment is a // comment, not including the terminator.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment, newlines included.
	TriviaBlockComment
)

var triviaKindNames = map[TriviaKind]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
}

func (k TriviaKind) String() string {
	if name, ok := triviaKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Trivia is one piece of whitespace, line-terminator, or comment material
// attached to a token.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// IsWhitespace reports whether the trivia is horizontal whitespace.
func (t Trivia) IsWhitespace() bool { return t.Kind == TriviaSpace }

// IsNewline reports whether the trivia is a line terminator.
func (t Trivia) IsNewline() bool { return t.Kind == TriviaNewline }

// TriviaLen returns the total byte length of a trivia run.
func TriviaLen(run []Trivia) int {
	n := 0
	for _, t := range run {
		n += len(t.Text)
	}
	return n
}

// TriviaText concatenates a trivia run back into source text.
func TriviaText(run []Trivia) string {
	if len(run) == 0 {
		return ""
	}
	if len(run) == 1 {
		return run[0].Text
	}
	out := make([]byte, 0, TriviaLen(run))
	for _, t := range run {
		out = append(out, t.Text...)
	}
	return string(out)
}
