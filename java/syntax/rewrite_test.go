package syntax

import "testing"

func TestReplaceNodesDelete(t *testing.T) {
	full := "class A { public static int x; }"
	root := Parse([]byte(full))
	body := root.Children[0].FirstChildOfKind(KindTypeBody)
	field := body.FirstChildOfKind(KindFieldDecl)
	mods := field.ModifierLeaves()
	if len(mods) != 2 {
		t.Fatalf("modifiers = %d, want 2", len(mods))
	}

	newRoot := ReplaceNodes(root, Replacements{mods[1]: nil})

	newField := newRoot.Children[0].FirstChildOfKind(KindTypeBody).FirstChildOfKind(KindFieldDecl)
	if got := len(newField.ModifierLeaves()); got != 1 {
		t.Errorf("modifiers after delete = %d, want 1", got)
	}

	// the old tree is untouched
	if got := len(field.ModifierLeaves()); got != 2 {
		t.Errorf("old tree modifiers = %d, want 2", got)
	}
	if Text(root) != full {
		t.Errorf("old tree text changed: %q", Text(root))
	}
}

func TestReplaceNodesSharing(t *testing.T) {
	full := "class A { int x; }\nclass B { int y; }\n"
	root := Parse([]byte(full))
	declA, declB := root.Children[0], root.Children[1]

	fieldA := declA.FirstChildOfKind(KindTypeBody).FirstChildOfKind(KindFieldDecl)
	leaf := fieldA.Children[1] // the "int" raw leaf after the modifier list

	tok := leaf.Token.WithTrailing([]Trivia{{Kind: TriviaSpace, Text: "  "}})
	newRoot := ReplaceNodes(root, Replacements{leaf: ReplaceLeafToken(leaf, tok)})

	if newRoot == root {
		t.Fatal("expected a new root")
	}
	if newRoot.Children[0] == declA {
		t.Error("modified subtree should be rebuilt")
	}
	if newRoot.Children[1] != declB {
		t.Error("untouched subtree should be shared by pointer")
	}
}

func TestReplaceNodesUpdateToken(t *testing.T) {
	full := "class A { public int x; }"
	root := Parse([]byte(full))
	body := root.Children[0].FirstChildOfKind(KindTypeBody)
	field := body.FirstChildOfKind(KindFieldDecl)
	mod := field.ModifierLeaves()[0]

	tok := mod.Token.WithTrailing(nil)
	newRoot := ReplaceNodes(root, Replacements{mod: ReplaceLeafToken(mod, tok)})

	if got := Text(newRoot); got != "class A { publicint x; }" {
		t.Errorf("Text = %q", got)
	}
	if got := Text(root); got != full {
		t.Errorf("old text = %q, want unchanged", got)
	}
}

func TestReplaceNodesAncestorWins(t *testing.T) {
	full := "class A { public int x; }"
	root := Parse([]byte(full))
	body := root.Children[0].FirstChildOfKind(KindTypeBody)
	field := body.FirstChildOfKind(KindFieldDecl)
	mod := field.ModifierLeaves()[0]

	// replacing the whole field supersedes the leaf update below it
	newRoot := ReplaceNodes(root, Replacements{
		field: nil,
		mod:   ReplaceLeafToken(mod, mod.Token.WithTrailing(nil)),
	})
	if got := Text(newRoot); got != "class A { }" {
		t.Errorf("Text = %q, want field removed entirely", got)
	}
}

func TestReplaceNodesEmpty(t *testing.T) {
	root := Parse([]byte("class A {}"))
	if got := ReplaceNodes(root, nil); got != root {
		t.Error("empty replacement set should return the same root")
	}
}
