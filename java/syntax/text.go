package syntax

import (
	"io"
	"strings"
)

// Text renders the tree back to source text. For a freshly parsed tree
// the result equals the input byte for byte.
func Text(root *Node) string {
	var sb strings.Builder
	writeNode(&sb, root)
	return sb.String()
}

// WriteText renders the tree to w.
func WriteText(w io.Writer, root *Node) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		return writeNodeSlow(w, root)
	}
	var err error
	var walk func(n *Node)
	walk = func(n *Node) {
		if err != nil {
			return
		}
		if n.IsLeaf() {
			err = writeToken(sw, *n.Token)
			return
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return err
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.IsLeaf() {
		writeToken(sb, *n.Token) //nolint:errcheck // strings.Builder never fails
		return
	}
	for _, child := range n.Children {
		writeNode(sb, child)
	}
}

func writeToken(w io.StringWriter, tok Token) error {
	for _, t := range tok.Leading {
		if _, err := w.WriteString(t.Text); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(tok.Text); err != nil {
		return err
	}
	for _, t := range tok.Trailing {
		if _, err := w.WriteString(t.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeNodeSlow(w io.Writer, root *Node) error {
	_, err := io.WriteString(w, Text(root))
	return err
}
