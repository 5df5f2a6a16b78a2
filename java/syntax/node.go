package syntax

import "strings"

type NodeKind int

const (
	KindError NodeKind = iota

	KindCompilationUnit
	KindPackageDecl
	KindImportDecl

	// Type declarations
	KindClassDecl
	KindInterfaceDecl
	KindEnumDecl
	KindRecordDecl
	KindAnnotationDecl

	// Members
	KindFieldDecl
	KindMethodDecl
	KindInitializerDecl

	// Declaration parts
	KindModifiers
	KindModifier
	KindAnnotation
	KindTypeBody
	KindBlock

	// KindToken is a leaf for raw material with no finer structure.
	KindToken
)

var nodeKindNames = map[NodeKind]string{
	KindError:           "Error",
	KindCompilationUnit: "CompilationUnit",
	KindPackageDecl:     "PackageDecl",
	KindImportDecl:      "ImportDecl",
	KindClassDecl:       "ClassDecl",
	KindInterfaceDecl:   "InterfaceDecl",
	KindEnumDecl:        "EnumDecl",
	KindRecordDecl:      "RecordDecl",
	KindAnnotationDecl:  "AnnotationDecl",
	KindFieldDecl:       "FieldDecl",
	KindMethodDecl:      "MethodDecl",
	KindInitializerDecl: "InitializerDecl",
	KindModifiers:       "Modifiers",
	KindModifier:        "Modifier",
	KindAnnotation:      "Annotation",
	KindTypeBody:        "TypeBody",
	KindBlock:           "Block",
	KindToken:           "Token",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTypeDecl reports whether the kind declares a class-like type.
func (k NodeKind) IsTypeDecl() bool {
	switch k {
	case KindClassDecl, KindInterfaceDecl, KindEnumDecl, KindRecordDecl, KindAnnotationDecl:
		return true
	default:
		return false
	}
}

// IsDeclaration reports whether the kind is a declaration that owns a
// modifier list.
func (k NodeKind) IsDeclaration() bool {
	switch k {
	case KindFieldDecl, KindMethodDecl, KindInitializerDecl:
		return true
	default:
		return k.IsTypeDecl()
	}
}

// Node is one vertex of the syntax tree. Leaves carry a Token; interior
// nodes carry ordered Children. Nodes are immutable after parsing: edits
// go through the rewrite functions, which build a new tree.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
}

// IsLeaf reports whether the node carries a token.
func (n *Node) IsLeaf() bool { return n.Token != nil }

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// ModifierLeaves returns the modifier-keyword leaves of a declaration, in
// source order. Annotations in the modifier list are not included.
func (n *Node) ModifierLeaves() []*Node {
	mods := n.FirstChildOfKind(KindModifiers)
	if mods == nil {
		return nil
	}
	return mods.ChildrenOfKind(KindModifier)
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Token.Kind.String())
		if n.Token.Text != "" && n.Token.Text != n.Token.Kind.String() {
			sb.WriteString(" ")
			sb.WriteString(n.Token.Text)
		}
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1)
	}
}

func tokenLeaf(tok Token) *Node {
	t := tok
	return &Node{Kind: KindToken, Span: tok.Span, Token: &t}
}

func modifierLeaf(tok Token) *Node {
	t := tok
	return &Node{Kind: KindModifier, Span: tok.Span, Token: &t}
}
