package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/remod/java/syntax"
)

// ASTJSONEncoder dumps a syntax tree, trivia included, as JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *syntax.Node) error {
	text, err := json.MarshalIndent(nodeToJSON(node), "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *jsonSpan      `json:"span,omitempty"`
	Token    *astJSONToken  `json:"token,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONToken struct {
	Kind     string          `json:"kind"`
	Text     string          `json:"text"`
	Leading  []astJSONTrivia `json:"leading,omitempty"`
	Trailing []astJSONTrivia `json:"trailing,omitempty"`
}

type astJSONTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func nodeToJSON(n *syntax.Node) *astJSONNode {
	jn := &astJSONNode{Kind: n.Kind.String()}
	if n.Span.Start.Line != 0 || n.Span.End.Line != 0 {
		span := jsonSpan{
			Start: jsonPosition{Offset: n.Span.Start.Offset, Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   jsonPosition{Offset: n.Span.End.Offset, Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
		jn.Span = &span
	}
	if n.Token != nil {
		jn.Token = &astJSONToken{
			Kind:     n.Token.Kind.String(),
			Text:     n.Token.Text,
			Leading:  triviaToJSON(n.Token.Leading),
			Trailing: triviaToJSON(n.Token.Trailing),
		}
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}
	return jn
}

func triviaToJSON(run []syntax.Trivia) []astJSONTrivia {
	if len(run) == 0 {
		return nil
	}
	out := make([]astJSONTrivia, len(run))
	for i, t := range run {
		out[i] = astJSONTrivia{Kind: t.Kind.String(), Text: t.Text}
	}
	return out
}
