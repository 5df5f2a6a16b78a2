// Package fix removes redundant modifiers from Java source while
// preserving the surrounding layout.
package fix

import "github.com/dhamidi/remod/java/syntax"

// IsFirstOnLine reports whether tok is the first token on its line:
// everything between the start of the line and the token's full start
// is horizontal whitespace. The start of the file counts as a line
// start.
func IsFirstOnLine(tok syntax.Token, source []byte) bool {
	for i := tok.FullStart() - 1; i >= 0; i-- {
		switch source[i] {
		case ' ', '\t':
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}
