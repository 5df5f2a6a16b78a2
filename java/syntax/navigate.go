package syntax

// Leaves returns every token-bearing leaf of the tree in source order.
func Leaves(root *Node) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			out = append(out, n)
			return
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

// FirstToken returns the first token under the node in source order.
func FirstToken(n *Node) (Token, bool) {
	if n.IsLeaf() {
		return *n.Token, true
	}
	for _, child := range n.Children {
		if tok, ok := FirstToken(child); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// LastToken returns the last token under the node in source order.
func LastToken(n *Node) (Token, bool) {
	if n.IsLeaf() {
		return *n.Token, true
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if tok, ok := LastToken(n.Children[i]); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// FindToken returns the leaf whose token text covers the byte offset.
func FindToken(root *Node, offset int) (*Node, bool) {
	for _, leaf := range Leaves(root) {
		if leaf.Token.Span.Contains(offset) {
			return leaf, true
		}
	}
	return nil, false
}

// PrevToken returns the leaf immediately before the given one in source
// order.
func PrevToken(root *Node, leaf *Node) (*Node, bool) {
	leaves := Leaves(root)
	for i, l := range leaves {
		if l == leaf {
			if i == 0 {
				return nil, false
			}
			return leaves[i-1], true
		}
	}
	return nil, false
}

// NextToken returns the leaf immediately after the given one in source
// order.
func NextToken(root *Node, leaf *Node) (*Node, bool) {
	leaves := Leaves(root)
	for i, l := range leaves {
		if l == leaf {
			if i == len(leaves)-1 {
				return nil, false
			}
			return leaves[i+1], true
		}
	}
	return nil, false
}

// Path returns the chain of nodes from root down to the target node. The
// target must be reachable from root by pointer identity.
func Path(root, target *Node) ([]*Node, bool) {
	var path []*Node
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		path = append(path, n)
		if n == target {
			return true
		}
		for _, child := range n.Children {
			if walk(child) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !walk(root) {
		return nil, false
	}
	return path, true
}

// AncestorOfKind returns the nearest ancestor of target (target included)
// for which the predicate holds.
func AncestorOfKind(root, target *Node, match func(NodeKind) bool) (*Node, bool) {
	path, ok := Path(root, target)
	if !ok {
		return nil, false
	}
	for i := len(path) - 1; i >= 0; i-- {
		if match(path[i].Kind) {
			return path[i], true
		}
	}
	return nil, false
}
