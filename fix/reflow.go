package fix

import "github.com/dhamidi/remod/java/syntax"

// collapseWhitespace drops every space run that directly follows
// another space run, so removing a token never leaves doubled
// whitespace. Newlines and comments break runs and survive untouched.
// Collapsing an already collapsed run is a no-op.
func collapseWhitespace(run []syntax.Trivia) []syntax.Trivia {
	if len(run) == 0 {
		return nil
	}
	out := make([]syntax.Trivia, 0, len(run))
	for _, t := range run {
		if t.IsWhitespace() && len(out) > 0 && out[len(out)-1].IsWhitespace() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func concatTrivia(runs ...[]syntax.Trivia) []syntax.Trivia {
	var n int
	for _, run := range runs {
		n += len(run)
	}
	if n == 0 {
		return nil
	}
	out := make([]syntax.Trivia, 0, n)
	for _, run := range runs {
		out = append(out, run...)
	}
	return out
}

// reflow produces the leaf replacements that delete target while
// keeping its trivia attached to the right neighbor.
//
// A target with no trivia disappears without touching its neighbors.
// A target that starts its line hands its trivia to the following
// token, so indentation and any comments stay on the line. A mid-line
// target folds its trivia into the previous token's trailing run and
// clears the following token's leading run, so nothing is emitted
// twice.
func reflow(source []byte, target, prev, next *syntax.Node) syntax.Replacements {
	repl := syntax.Replacements{target: nil}
	tok := *target.Token
	if !tok.HasTrivia() {
		return repl
	}
	own := concatTrivia(tok.Leading, tok.Trailing)
	if next == nil {
		if prev != nil {
			merged := collapseWhitespace(concatTrivia(prev.Token.Trailing, own))
			repl[prev] = syntax.ReplaceLeafToken(prev, prev.Token.WithTrailing(merged))
		}
		return repl
	}
	if prev == nil || IsFirstOnLine(tok, source) {
		merged := collapseWhitespace(concatTrivia(own, next.Token.Leading))
		repl[next] = syntax.ReplaceLeafToken(next, next.Token.WithLeading(merged))
		return repl
	}
	merged := collapseWhitespace(concatTrivia(prev.Token.Trailing, own, next.Token.Leading))
	repl[prev] = syntax.ReplaceLeafToken(prev, prev.Token.WithTrailing(merged))
	if len(next.Token.Leading) > 0 {
		repl[next] = syntax.ReplaceLeafToken(next, next.Token.WithLeading(nil))
	}
	return repl
}
