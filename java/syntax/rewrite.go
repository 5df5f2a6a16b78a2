package syntax

// Replacements maps existing nodes to their substitutes. A nil substitute
// removes the node from its parent's child list. Keys must be nodes of
// the tree the rewrite is applied to; substitutes must be freshly built
// nodes that are not part of any existing tree.
type Replacements map[*Node]*Node

// ReplaceNodes returns a new root with every mapped node substituted. The
// input tree is left untouched; subtrees without replacements are shared
// between the old and the new tree. A node that is itself replaced is not
// descended into, so a replacement of an ancestor supersedes replacements
// of its descendants.
func ReplaceNodes(root *Node, repl Replacements) *Node {
	if len(repl) == 0 {
		return root
	}
	node, _ := rewriteNode(root, repl)
	return node
}

func rewriteNode(n *Node, repl Replacements) (*Node, bool) {
	if sub, ok := repl[n]; ok {
		return sub, true
	}
	if n.IsLeaf() {
		return n, false
	}

	var children []*Node
	changed := false
	for i, child := range n.Children {
		nc, chg := rewriteNode(child, repl)
		if chg && !changed {
			changed = true
			children = make([]*Node, 0, len(n.Children))
			children = append(children, n.Children[:i]...)
		}
		if changed && nc != nil {
			children = append(children, nc)
		}
	}
	if !changed {
		return n, false
	}
	return &Node{Kind: n.Kind, Span: n.Span, Children: children}, true
}

// ReplaceLeafToken builds a substitute for a leaf carrying a modified
// copy of its token. Kind and span are preserved: positions always refer
// to the originally parsed text.
func ReplaceLeafToken(leaf *Node, tok Token) *Node {
	t := tok
	return &Node{Kind: leaf.Kind, Span: leaf.Span, Token: &t}
}
