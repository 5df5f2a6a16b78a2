package lint

import (
	"fmt"

	"github.com/dhamidi/remod/java/syntax"
)

// RuleRedundantModifier flags modifiers that repeat what the language
// already implies, plus literal duplicates.
const RuleRedundantModifier = "redundant-modifier"

// Options controls which rules run and how findings are reported.
type Options struct {
	// DisabledRules maps rule ids to true to suppress them.
	DisabledRules map[string]bool
	// SeverityOverride maps rule ids to a severity replacing the default.
	SeverityOverride map[string]Severity
}

func (o Options) enabled(rule string) bool {
	return !o.DisabledRules[rule]
}

func (o Options) severity(rule string, def Severity) Severity {
	if s, ok := o.SeverityOverride[rule]; ok {
		return s
	}
	return def
}

// Analyze walks the tree and reports redundant modifiers in sorted,
// deduplicated order.
func Analyze(root *syntax.Node, opts Options) []Diagnostic {
	a := &analyzer{opts: opts}
	a.walk(root, context{})
	Sort(a.diags)
	return Dedup(a.diags)
}

type context struct {
	// inInterface is true for members declared directly inside an
	// interface or annotation body.
	inInterface bool
	// nested is true for type declarations not at the top level.
	nested bool
}

type analyzer struct {
	opts  Options
	diags []Diagnostic
}

func (a *analyzer) report(leaf *syntax.Node, format string, args ...interface{}) {
	if !a.opts.enabled(RuleRedundantModifier) {
		return
	}
	a.diags = append(a.diags, Diagnostic{
		Rule:     RuleRedundantModifier,
		Severity: a.opts.severity(RuleRedundantModifier, SevWarning),
		Message:  fmt.Sprintf(format, args...),
		Span:     leaf.Token.Span,
	})
}

func (a *analyzer) walk(node *syntax.Node, ctx context) {
	switch node.Kind {
	case syntax.KindCompilationUnit:
		for _, child := range node.Children {
			a.walk(child, context{})
		}
	case syntax.KindClassDecl, syntax.KindEnumDecl, syntax.KindRecordDecl:
		a.checkTypeDecl(node, ctx)
		a.walkBody(node, context{nested: true})
	case syntax.KindInterfaceDecl, syntax.KindAnnotationDecl:
		a.checkTypeDecl(node, ctx)
		a.walkBody(node, context{inInterface: true, nested: true})
	case syntax.KindMethodDecl, syntax.KindFieldDecl:
		a.checkMember(node, ctx)
	case syntax.KindTypeBody:
		for _, child := range node.Children {
			a.walk(child, ctx)
		}
	}
}

// walkBody descends into a type declaration's body, keeping ctx for the
// members inside it.
func (a *analyzer) walkBody(node *syntax.Node, ctx context) {
	if body := node.FirstChildOfKind(syntax.KindTypeBody); body != nil {
		a.walk(body, ctx)
	}
}

// checkTypeDecl flags redundancies on the type declaration itself.
func (a *analyzer) checkTypeDecl(node *syntax.Node, ctx context) {
	leaves := node.ModifierLeaves()
	a.checkDuplicates(leaves)
	for _, leaf := range leaves {
		kind := leaf.Token.Kind
		switch {
		case kind == syntax.TokenAbstract && node.Kind == syntax.KindInterfaceDecl:
			a.report(leaf, "redundant 'abstract': interfaces are implicitly abstract")
		case kind == syntax.TokenStatic && ctx.nested && node.Kind != syntax.KindClassDecl:
			a.report(leaf, "redundant 'static': nested %s are implicitly static", plural(node.Kind))
		case kind == syntax.TokenStatic && ctx.inInterface:
			a.report(leaf, "redundant 'static': interface member types are implicitly static")
		case kind == syntax.TokenPublic && ctx.inInterface:
			a.report(leaf, "redundant 'public': interface members are implicitly public")
		}
	}
}

func plural(kind syntax.NodeKind) string {
	switch kind {
	case syntax.KindInterfaceDecl:
		return "interfaces"
	case syntax.KindEnumDecl:
		return "enums"
	case syntax.KindRecordDecl:
		return "records"
	case syntax.KindAnnotationDecl:
		return "annotation types"
	}
	return "types"
}

// checkMember flags redundancies on methods and fields.
func (a *analyzer) checkMember(node *syntax.Node, ctx context) {
	leaves := node.ModifierLeaves()
	a.checkDuplicates(leaves)
	if !ctx.inInterface {
		return
	}
	hasDefault := hasModifier(leaves, syntax.TokenDefault)
	hasStatic := hasModifier(leaves, syntax.TokenStatic)
	hasPrivate := hasModifier(leaves, syntax.TokenPrivate)
	for _, leaf := range leaves {
		switch leaf.Token.Kind {
		case syntax.TokenPublic:
			if !hasPrivate {
				a.report(leaf, "redundant 'public': interface members are implicitly public")
			}
		case syntax.TokenAbstract:
			if node.Kind == syntax.KindMethodDecl && !hasDefault && !hasStatic && !hasPrivate {
				a.report(leaf, "redundant 'abstract': interface methods are implicitly abstract")
			}
		case syntax.TokenStatic:
			if node.Kind == syntax.KindFieldDecl {
				a.report(leaf, "redundant 'static': interface fields are implicitly static")
			}
		case syntax.TokenFinal:
			if node.Kind == syntax.KindFieldDecl {
				a.report(leaf, "redundant 'final': interface fields are implicitly final")
			}
		}
	}
}

// checkDuplicates flags every repetition of a modifier after its first
// occurrence in the same list.
func (a *analyzer) checkDuplicates(leaves []*syntax.Node) {
	seen := make(map[syntax.TokenKind]bool, len(leaves))
	for _, leaf := range leaves {
		kind := leaf.Token.Kind
		if seen[kind] {
			a.report(leaf, "duplicate modifier '%s'", leaf.Token.Text)
			continue
		}
		seen[kind] = true
	}
}

func hasModifier(leaves []*syntax.Node, kind syntax.TokenKind) bool {
	for _, leaf := range leaves {
		if leaf.Token.Kind == kind {
			return true
		}
	}
	return false
}
