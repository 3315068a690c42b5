package lexer

import (
	"testing"

	"github.com/roblox-aurora/cmd-ast/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `cmd --flag "hi $name" -kE 42 true; if $x { $y = 1 }`

	tests := []struct {
		kind  token.Kind
		value string
	}{
		{token.String, "cmd"},
		{token.Option, "flag"},
		{token.InterpolatedString, ""},
		{token.Operator, "-"},
		{token.String, "kE"},
		{token.Number, "42"},
		{token.Boolean, "true"},
		{token.EndOfStatement, ";"},
		{token.Keyword, "if"},
		{token.Identifier, "x"},
		{token.Special, "{"},
		{token.Identifier, "y"},
		{token.Operator, "="},
		{token.Number, "1"},
		{token.Special, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (value=%q)", i, tt.kind, tok.Kind, tok.Value)
		}
		if tt.kind != token.InterpolatedString && tt.kind != token.EOF && tok.Value != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, tok.Value)
		}
	}
}

func TestInterpolatedStringSplitsVariables(t *testing.T) {
	l := New(`"Hello, $player!"`)
	tok := l.Next()
	if tok.Kind != token.InterpolatedString {
		t.Fatalf("expected InterpolatedString, got %s", tok.Kind)
	}
	if len(tok.Variables) != 1 || tok.Variables[0] != "player" {
		t.Fatalf("expected variables=[player], got %v", tok.Variables)
	}
	if len(tok.Values) != 2 || tok.Values[0] != "Hello, " || tok.Values[1] != "!" {
		t.Fatalf("expected values=[\"Hello, \", \"!\"], got %v", tok.Values)
	}
}

func TestUnterminatedStringSetsFlag(t *testing.T) {
	l := New(`"abc`)
	tok := l.Next()
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %s", tok.Kind)
	}
	if !tok.Flags.Has(token.UnterminatedString) {
		t.Fatalf("expected UnterminatedString flag set")
	}
	if tok.Closed {
		t.Fatalf("expected Closed=false")
	}
}

func TestLabelFlagRetrofit(t *testing.T) {
	l := New(`key: value`)
	first := l.Next()
	second := l.Next()
	if second.Kind != token.Special || second.Value != ":" {
		t.Fatalf("expected ':' Special token, got %s %q", second.Kind, second.Value)
	}
	if !first.Flags.Has(token.Label) {
		t.Fatalf("expected Label flag retrofit on preceding token")
	}
}

func TestFunctionNameFlag(t *testing.T) {
	l := New(`function greet() {}`)
	kw := l.Next()
	if kw.Kind != token.Keyword || kw.Value != "function" {
		t.Fatalf("expected 'function' keyword, got %s %q", kw.Kind, kw.Value)
	}
	name := l.Next()
	if name.Kind != token.Identifier || name.Value != "greet" {
		t.Fatalf("expected Identifier 'greet', got %s %q", name.Kind, name.Value)
	}
	if !name.Flags.Has(token.FunctionName) {
		t.Fatalf("expected FunctionName flag on function name")
	}
}

func TestLongOptionToken(t *testing.T) {
	l := New(`--verbose`)
	tok := l.Next()
	if tok.Kind != token.Option || tok.Value != "verbose" || tok.Prefix != "--" {
		t.Fatalf("unexpected option token: %+v", tok)
	}
}

func TestPrefixSigilSplitsFromFollowingLiteral(t *testing.T) {
	l := New(`~target`)
	sigil := l.Next()
	if sigil.Kind != token.Operator || sigil.Value != "~" {
		t.Fatalf("unexpected sigil token: %+v", sigil)
	}
	rest := l.Next()
	if rest.Kind != token.String || rest.Value != "target" {
		t.Fatalf("unexpected literal token: %+v", rest)
	}
	if rest.Start.Offset != sigil.End.Offset {
		t.Fatalf("expected sigil and literal to be adjacent, got %d != %d", sigil.End.Offset, rest.Start.Offset)
	}
}

func TestCommentDiscardedByDefault(t *testing.T) {
	l := New("# a comment\ncmd")
	tok := l.Next()
	if tok.Kind != token.EndOfStatement {
		t.Fatalf("expected comment to be discarded, leaving newline as EndOfStatement, got %s", tok.Kind)
	}
}

func TestCommentEmittedWithOption(t *testing.T) {
	l := New("# a comment\ncmd", WithComments(true))
	tok := l.Next()
	if tok.Kind != token.Comment {
		t.Fatalf("expected Comment token, got %s", tok.Kind)
	}
}

func TestLineContinuationSuppressesEndOfStatement(t *testing.T) {
	l := New("cmd \\\narg")
	first := l.Next()
	second := l.Next()
	if first.Value != "cmd" || second.Value != "arg" {
		t.Fatalf("expected 'cmd' then 'arg' with no EndOfStatement between, got %q then %q", first.Value, second.Value)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New(`cmd arg`)
	p1 := l.Peek()
	p2 := l.Peek()
	if p1 != p2 {
		t.Fatalf("expected repeated Peek to return the same token pointer")
	}
	n := l.Next()
	if n != p1 {
		t.Fatalf("expected Next to return the previously peeked token")
	}
}
