package zr

import "testing"

func TestParseRenderAndPrettyPrint(t *testing.T) {
	src, errs := Parse(`cmd --flag "Hello, $name!" -kE`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !IsNode(src, KindSource) {
		t.Fatalf("expected Source kind")
	}
	if HasError(src) {
		t.Fatalf("did not expect Source to carry an error flag")
	}

	rendered := Render(src)
	if rendered == "" {
		t.Fatalf("expected non-empty rendered output")
	}

	tree := PrettyPrint(src.Children(), "")
	if tree == "" {
		t.Fatalf("expected non-empty pretty-print output")
	}
}

func TestParseUnterminatedStringReportsError(t *testing.T) {
	src, errs := Parse(`"abc`)
	if len(errs) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	var sawError bool
	for _, stmt := range src.Statements {
		if HasError(stmt) {
			sawError = true
		}
	}
	if !sawError {
		t.Fatalf("expected a statement to carry NodeHasError")
	}
}

func TestLexerOptionsPassThrough(t *testing.T) {
	src, errs := Parse("# note\ncmd one", WithComments(true))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(src.Statements) == 0 {
		t.Fatalf("expected at least one statement")
	}
}
