package fix

import (
	"github.com/dhamidi/remod/java/syntax"
	"github.com/dhamidi/remod/lint"
)

// Result reports the outcome of applying fixes to one document.
type Result struct {
	// Root is the rewritten tree. The document's original tree is left
	// intact.
	Root *syntax.Node
	// Text is the rewritten source.
	Text string
	// Applied counts diagnostics whose fix made it into Text.
	Applied int
	// Skipped counts diagnostics with no applicable fix, either
	// because the rule has no fix or because the span went stale.
	Skipped int
}

// Changed reports whether any fix was applied.
func (r Result) Changed() bool { return r.Applied > 0 }

// Apply fixes a single diagnostic.
func Apply(doc *Document, diag lint.Diagnostic) Result {
	return ApplyAll(doc, []lint.Diagnostic{diag})
}

// ApplyAll fixes every fixable diagnostic in one pass. Each fix is
// computed against the document's original tree and the resulting
// replacement sets are folded together, so earlier fixes never shift
// the spans later fixes target.
//
// When two fixes touch the same leaf the merge is best effort: a
// deletion always wins over a trivia update, and between two trivia
// updates the later diagnostic wins. Removing every modifier of one
// declaration therefore always drops all of them, though the
// surrounding whitespace may come out tighter than a one-at-a-time
// application would leave it.
func ApplyAll(doc *Document, diags []lint.Diagnostic) Result {
	ordered := make([]lint.Diagnostic, len(diags))
	copy(ordered, diags)
	lint.Sort(ordered)

	combined := syntax.Replacements{}
	result := Result{}
	for _, d := range ordered {
		if d.Rule != lint.RuleRedundantModifier {
			result.Skipped++
			continue
		}
		repl, ok := RemoveModifier(doc, d.Span)
		if !ok {
			result.Skipped++
			continue
		}
		merge(combined, repl)
		result.Applied++
	}
	if result.Applied == 0 {
		result.Root = doc.Root
		result.Text = string(doc.Source)
		return result
	}
	result.Root = syntax.ReplaceNodes(doc.Root, combined)
	result.Text = syntax.Text(result.Root)
	return result
}

func merge(dst, src syntax.Replacements) {
	for leaf, repl := range src {
		if old, ok := dst[leaf]; ok && old == nil && repl != nil {
			// the leaf is already slated for deletion
			continue
		}
		dst[leaf] = repl
	}
}
