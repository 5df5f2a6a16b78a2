package syntax

import (
	"strings"
	"testing"
)

func TestLexKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"public", TokenPublic},
		{"protected", TokenProtected},
		{"private", TokenPrivate},
		{"abstract", TokenAbstract},
		{"static", TokenStatic},
		{"final", TokenFinal},
		{"strictfp", TokenStrictfp},
		{"native", TokenNative},
		{"synchronized", TokenSynchronized},
		{"transient", TokenTransient},
		{"volatile", TokenVolatile},
		{"default", TokenDefault},
		{"sealed", TokenSealed},
		{"non-sealed", TokenNonSealed},
		{"class", TokenClass},
		{"interface", TokenInterface},
		{"enum", TokenEnum},
		{"record", TokenRecord},
		{"package", TokenPackage},
		{"import", TokenImport},
		{"extends", TokenExtends},
		{"implements", TokenImplements},
		{"permits", TokenPermits},
		{"throws", TokenThrows},
		{"void", TokenVoid},
		{"foo", TokenIdent},
		{"nonsealed", TokenIdent},
		{"non", TokenIdent},
		{"if", TokenIdent},
		{"while", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Lex([]byte(tt.input))
			if len(tokens) != 2 {
				t.Fatalf("len(tokens) = %d, want 2 (token + EOF)", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Text != tt.input {
				t.Errorf("Text = %q, want %q", tokens[0].Text, tt.input)
			}
		})
	}
}

func TestLexLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"42", TokenIntLiteral},
		{"100_000L", TokenIntLiteral},
		{"0x1F", TokenIntLiteral},
		{"0b1010", TokenIntLiteral},
		{"1.5f", TokenFloatLiteral},
		{"2e10", TokenFloatLiteral},
		{"3.14", TokenFloatLiteral},
		{"'a'", TokenCharLiteral},
		{`'\n'`, TokenCharLiteral},
		{`"hi"`, TokenStringLiteral},
		{`"a\"b"`, TokenStringLiteral},
		{`"""
		text"""`, TokenTextBlock},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Lex([]byte(tt.input))
			if len(tokens) != 2 {
				t.Fatalf("len(tokens) = %d, want 2", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Text != tt.input {
				t.Errorf("Text = %q, want %q", tokens[0].Text, tt.input)
			}
		})
	}
}

func TestLexTriviaPartition(t *testing.T) {
	// Trailing trivia runs through the first newline; the rest is the
	// next token's leading run.
	tokens := Lex([]byte("a b\n  c"))
	if len(tokens) != 4 {
		t.Fatalf("len(tokens) = %d, want 4", len(tokens))
	}

	a, b, c := tokens[0], tokens[1], tokens[2]

	if got := TriviaText(a.Trailing); got != " " {
		t.Errorf("a.Trailing = %q, want %q", got, " ")
	}
	if len(b.Leading) != 0 {
		t.Errorf("b.Leading = %v, want empty", b.Leading)
	}
	if got := TriviaText(b.Trailing); got != "\n" {
		t.Errorf("b.Trailing = %q, want %q", got, "\n")
	}
	if got := TriviaText(c.Leading); got != "  " {
		t.Errorf("c.Leading = %q, want %q", got, "  ")
	}
}

func TestLexTriviaKinds(t *testing.T) {
	tokens := Lex([]byte("a // note\n/* block */ b"))
	a, b := tokens[0], tokens[1]

	wantTrailing := []TriviaKind{TriviaSpace, TriviaLineComment, TriviaNewline}
	if len(a.Trailing) != len(wantTrailing) {
		t.Fatalf("a.Trailing has %d pieces, want %d", len(a.Trailing), len(wantTrailing))
	}
	for i, kind := range wantTrailing {
		if a.Trailing[i].Kind != kind {
			t.Errorf("a.Trailing[%d].Kind = %v, want %v", i, a.Trailing[i].Kind, kind)
		}
	}

	wantLeading := []TriviaKind{TriviaBlockComment, TriviaSpace}
	if len(b.Leading) != len(wantLeading) {
		t.Fatalf("b.Leading has %d pieces, want %d", len(b.Leading), len(wantLeading))
	}
	for i, kind := range wantLeading {
		if b.Leading[i].Kind != kind {
			t.Errorf("b.Leading[%d].Kind = %v, want %v", i, b.Leading[i].Kind, kind)
		}
	}
}

func TestLexFileLeadingAndEOF(t *testing.T) {
	tokens := Lex([]byte("  // header\nclass A {}\n// tail\n"))
	first := tokens[0]
	if first.Kind != TokenClass {
		t.Fatalf("first token = %v, want class", first.Kind)
	}
	if got := TriviaText(first.Leading); got != "  // header\n" {
		t.Errorf("first.Leading = %q", got)
	}

	eof := tokens[len(tokens)-1]
	if eof.Kind != TokenEOF {
		t.Fatalf("last token = %v, want EOF", eof.Kind)
	}
	if got := TriviaText(eof.Leading); got != "// tail\n" {
		t.Errorf("eof.Leading = %q, want %q", got, "// tail\n")
	}
}

func TestLexCRLF(t *testing.T) {
	tokens := Lex([]byte("a\r\nb\rc"))
	a, b := tokens[0], tokens[1]
	if got := TriviaText(a.Trailing); got != "\r\n" {
		t.Errorf("a.Trailing = %q, want CRLF", got)
	}
	if len(a.Trailing) != 1 || a.Trailing[0].Kind != TriviaNewline {
		t.Errorf("CRLF should be one newline trivia, got %v", a.Trailing)
	}
	if got := TriviaText(b.Trailing); got != "\r" {
		t.Errorf("b.Trailing = %q, want CR", got)
	}
}

func TestLexFullFidelity(t *testing.T) {
	sources := []string{
		"",
		"\n",
		"   \t \n  ",
		"class A {}",
		"public    class A {\n\tint x = 1;\n}\n",
		"/* leading */\npackage com.example;\n\nimport java.util.List;\n",
		"interface I { public abstract void m(); }",
		"class A { String s = \"a { b\"; char c = '}'; }",
		"enum E { A, B { void f() {} }; int x; }",
		"@Deprecated @SuppressWarnings(\"all\")\nclass A {}",
		"class A { int[] xs = {1, 2, 3}; }",
		"record Point(int x, int y) {}",
		"class A { <T extends Comparable<T>> T max(T a, T b) { return a; } }",
		"class A { Runnable r = () -> { int x = 1 < 2 ? 3 : 4; }; }",
		"class Broken { int x = ; !!! }",
	}

	for _, src := range sources {
		name := src
		if len(name) > 24 {
			name = name[:24]
		}
		t.Run(name, func(t *testing.T) {
			var sb strings.Builder
			for _, tok := range Lex([]byte(src)) {
				sb.WriteString(TriviaText(tok.Leading))
				sb.WriteString(tok.Text)
				sb.WriteString(TriviaText(tok.Trailing))
			}
			if sb.String() != src {
				t.Errorf("reassembled = %q, want %q", sb.String(), src)
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	tokens := Lex([]byte("ab\n cd"))
	cd := tokens[1]
	if cd.Span.Start.Offset != 4 {
		t.Errorf("cd offset = %d, want 4", cd.Span.Start.Offset)
	}
	if cd.Span.Start.Line != 2 || cd.Span.Start.Column != 2 {
		t.Errorf("cd position = %d:%d, want 2:2", cd.Span.Start.Line, cd.Span.Start.Column)
	}
	if cd.FullStart() != 3 {
		t.Errorf("cd.FullStart() = %d, want 3", cd.FullStart())
	}
}
