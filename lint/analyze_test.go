package lint

import (
	"strings"
	"testing"

	"github.com/dhamidi/remod/java/syntax"
)

func analyzeSource(t *testing.T, source string) []Diagnostic {
	t.Helper()
	root := syntax.Parse([]byte(source))
	return Analyze(root, Options{})
}

func flagged(t *testing.T, source string, diags []Diagnostic) []string {
	t.Helper()
	var words []string
	for _, d := range diags {
		if d.Span.End.Offset > len(source) {
			t.Fatalf("span %v exceeds source length %d", d.Span, len(source))
		}
		words = append(words, source[d.Span.Start.Offset:d.Span.End.Offset])
	}
	return words
}

func TestAnalyzeInterfaceMembers(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "public method",
			source: "interface I { public void m(); }",
			want:   []string{"public"},
		},
		{
			name:   "public abstract method",
			source: "interface I { public abstract void m(); }",
			want:   []string{"public", "abstract"},
		},
		{
			name:   "default method keeps abstract-free",
			source: "interface I { default void m() {} }",
			want:   nil,
		},
		{
			name:   "public default method",
			source: "interface I { public default void m() {} }",
			want:   []string{"public"},
		},
		{
			name:   "static method",
			source: "interface I { static void m() {} }",
			want:   nil,
		},
		{
			name:   "private method is not public",
			source: "interface I { private void m() {} }",
			want:   nil,
		},
		{
			name:   "field modifiers",
			source: "interface I { public static final int X = 1; }",
			want:   []string{"public", "static", "final"},
		},
		{
			name:   "plain field",
			source: "interface I { int X = 1; }",
			want:   nil,
		},
		{
			name:   "class members untouched",
			source: "class C { public static final int X = 1; public void m() {} }",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := analyzeSource(t, tt.source)
			got := flagged(t, tt.source, diags)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("flagged %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeTypeDecls(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "abstract interface",
			source: "abstract interface I {}",
			want:   []string{"abstract"},
		},
		{
			name:   "static nested interface",
			source: "class C { static interface I {} }",
			want:   []string{"static"},
		},
		{
			name:   "static nested enum",
			source: "class C { static enum E { A } }",
			want:   []string{"static"},
		},
		{
			name:   "static nested record",
			source: "class C { static record P(int x) {} }",
			want:   []string{"static"},
		},
		{
			name:   "static nested class is fine",
			source: "class C { static class D {} }",
			want:   nil,
		},
		{
			name:   "static class inside interface",
			source: "interface I { static class D {} }",
			want:   []string{"static"},
		},
		{
			name:   "public nested type inside interface",
			source: "interface I { public interface J {} }",
			want:   []string{"public"},
		},
		{
			name:   "top level enum",
			source: "enum E { A }",
			want:   nil,
		},
		{
			name:   "abstract class is fine",
			source: "abstract class C {}",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := analyzeSource(t, tt.source)
			got := flagged(t, tt.source, diags)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("flagged %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDuplicateModifiers(t *testing.T) {
	source := "class C { public public void m() {} }"
	diags := analyzeSource(t, source)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Rule != RuleRedundantModifier {
		t.Errorf("rule = %q, want %q", d.Rule, RuleRedundantModifier)
	}
	if !strings.Contains(d.Message, "duplicate") {
		t.Errorf("message %q does not mention duplicate", d.Message)
	}
	// the second occurrence is flagged, not the first
	if want := strings.LastIndex(source, "public"); d.Span.Start.Offset != want {
		t.Errorf("flagged offset %d, want %d", d.Span.Start.Offset, want)
	}
}

func TestAnalyzeSortedAndDeduped(t *testing.T) {
	source := "interface I {\n\tpublic static final int B = 2;\n\tpublic void m();\n}\n"
	diags := analyzeSource(t, source)
	for i := 1; i < len(diags); i++ {
		if diags[i].Span.Start.Offset < diags[i-1].Span.Start.Offset {
			t.Fatalf("diagnostics out of order at %d: %v", i, diags)
		}
		if diags[i].Span == diags[i-1].Span {
			t.Fatalf("duplicate span at %d: %v", i, diags[i].Span)
		}
	}
	if len(diags) != 4 {
		t.Fatalf("got %d diagnostics, want 4: %v", len(diags), diags)
	}
}

func TestAnalyzeOptions(t *testing.T) {
	source := "interface I { public void m(); }"
	root := syntax.Parse([]byte(source))

	disabled := Analyze(root, Options{
		DisabledRules: map[string]bool{RuleRedundantModifier: true},
	})
	if len(disabled) != 0 {
		t.Errorf("disabled rule still produced %v", disabled)
	}

	raised := Analyze(root, Options{
		SeverityOverride: map[string]Severity{RuleRedundantModifier: SevError},
	})
	if len(raised) != 1 || raised[0].Severity != SevError {
		t.Errorf("severity override not applied: %v", raised)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, name := range []string{"info", "warning", "error"} {
		sev, err := ParseSeverity(name)
		if err != nil {
			t.Fatalf("ParseSeverity(%q): %v", name, err)
		}
		if sev.String() != name {
			t.Errorf("round trip %q -> %q", name, sev.String())
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}
