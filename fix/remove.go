package fix

import "github.com/dhamidi/remod/java/syntax"

// Document is a parsed source file the fixer edits. Root always
// renders back to Source byte for byte until an edit is applied.
type Document struct {
	Path   string
	Source []byte
	Root   *syntax.Node
}

func NewDocument(path string, source []byte) *Document {
	return &Document{Path: path, Source: source, Root: syntax.Parse(source)}
}

// RemoveModifier computes the leaf replacements that delete the
// modifier token covering span. It reports false when span no longer
// points at a modifier token, which happens when a diagnostic is
// stale.
func RemoveModifier(doc *Document, span syntax.Span) (syntax.Replacements, bool) {
	leaf, ok := syntax.FindToken(doc.Root, span.Start.Offset)
	if !ok || leaf.Token.Span != span || !leaf.Token.Kind.IsModifier() {
		return nil, false
	}
	var prev, next *syntax.Node
	if p, ok := syntax.PrevToken(doc.Root, leaf); ok {
		prev = p
	}
	if n, ok := syntax.NextToken(doc.Root, leaf); ok {
		next = n
	}
	return reflow(doc.Source, leaf, prev, next), true
}
