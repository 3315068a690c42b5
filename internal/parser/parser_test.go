package parser

import (
	"testing"

	"github.com/roblox-aurora/cmd-ast/internal/ast"
)

func TestParseSimpleCommand(t *testing.T) {
	src, errs := Parse(`cmd one two`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(src.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(src.Statements))
	}
	cmd, ok := src.Statements[0].(*ast.CommandStatement)
	if !ok {
		t.Fatalf("expected CommandStatement, got %T", src.Statements[0])
	}
	if cmd.Command.Name.Text != "cmd" {
		t.Fatalf("expected command name 'cmd', got %q", cmd.Command.Name.Text)
	}
	if len(cmd.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(cmd.Args))
	}
}

func TestParseLongOptionReducesToOptionExpression(t *testing.T) {
	src, errs := Parse(`cmd --test "Hello, $player!"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	if len(cmd.Args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(cmd.Args))
	}
	opt, ok := cmd.Args[0].(*ast.OptionExpression)
	if !ok {
		t.Fatalf("expected OptionExpression, got %T", cmd.Args[0])
	}
	if opt.Option.Flag != "test" {
		t.Fatalf("expected flag 'test', got %q", opt.Option.Flag)
	}
	interp, ok := opt.Expression.(*ast.InterpolatedString)
	if !ok {
		t.Fatalf("expected InterpolatedString value, got %T", opt.Expression)
	}
	if len(interp.Values) != 3 {
		t.Fatalf("expected 3 interpolation chunks, got %d", len(interp.Values))
	}
}

func TestParseShortOptionCluster(t *testing.T) {
	src, errs := Parse(`cmd -kEwL`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	if len(cmd.Args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(cmd.Args))
	}
	want := []string{"k", "E", "w", "L"}
	for i, w := range want {
		key, ok := cmd.Args[i].(*ast.OptionKey)
		if !ok {
			t.Fatalf("arg %d: expected OptionKey, got %T", i, cmd.Args[i])
		}
		if key.Flag != w {
			t.Fatalf("arg %d: expected flag %q, got %q", i, w, key.Flag)
		}
		if len(key.Flag) != 1 {
			t.Fatalf("arg %d: expected single-letter flag, got %q", i, key.Flag)
		}
	}
}

func TestParsePipelineFold(t *testing.T) {
	src, errs := Parse(`cmd one && cmd --number two`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	bin, ok := src.Statements[0].(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected BinaryExpression, got %T", src.Statements[0])
	}
	if bin.Operator.Operator != "&&" {
		t.Fatalf("expected '&&', got %q", bin.Operator.Operator)
	}
	left, ok := bin.Left.(*ast.CommandStatement)
	if !ok || left.Command.Name.Text != "cmd" || len(left.Args) != 1 {
		t.Fatalf("unexpected left side: %#v", bin.Left)
	}
	right, ok := bin.Right.(*ast.CommandStatement)
	if !ok || len(right.Args) != 1 {
		t.Fatalf("unexpected right side: %#v", bin.Right)
	}
	if _, ok := right.Args[0].(*ast.OptionExpression); !ok {
		t.Fatalf("expected right side's arg to be an OptionExpression, got %T", right.Args[0])
	}
}

func TestParseVariableStatement(t *testing.T) {
	src, errs := Parse(`$x = 1 + 2`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt, ok := src.Statements[0].(*ast.VariableStatement)
	if !ok {
		t.Fatalf("expected VariableStatement, got %T", src.Statements[0])
	}
	if stmt.Declaration.Identifier.Name != "x" {
		t.Fatalf("expected identifier 'x', got %q", stmt.Declaration.Identifier.Name)
	}
	bin, ok := stmt.Declaration.Expression.(*ast.BinaryExpression)
	if !ok || bin.Operator.Operator != "+" {
		t.Fatalf("expected '+' BinaryExpression, got %#v", stmt.Declaration.Expression)
	}
}

func TestParseIfElseChain(t *testing.T) {
	src, errs := Parse(`if $x { cmd one } else if $y { cmd two } else { cmd three }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer, ok := src.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", src.Statements[0])
	}
	inner, ok := outer.Else.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected else-if chain, got %T", outer.Else)
	}
	if _, ok := inner.Else.(*ast.Block); !ok {
		t.Fatalf("expected trailing else Block, got %T", inner.Else)
	}
}

func TestParseIfColonForm(t *testing.T) {
	src, errs := Parse("if $x: cmd one\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ifStmt := src.Statements[0].(*ast.IfStatement)
	block, ok := ifStmt.Then.(*ast.Block)
	if !ok {
		t.Fatalf("expected Block wrapping single statement, got %T", ifStmt.Then)
	}
	if block.Braced {
		t.Fatalf("expected colon-form block to be unbraced")
	}
	if len(block.Statements) != 1 {
		t.Fatalf("expected 1 statement in colon-form block, got %d", len(block.Statements))
	}
}

func TestParseForInStatement(t *testing.T) {
	src, errs := Parse(`for $item in $list { cmd $item }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forStmt, ok := src.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected ForInStatement, got %T", src.Statements[0])
	}
	if forStmt.Initializer.Name != "item" {
		t.Fatalf("expected initializer 'item', got %q", forStmt.Initializer.Name)
	}
	if len(forStmt.Statement.Statements) != 1 {
		t.Fatalf("expected 1 statement in for body, got %d", len(forStmt.Statement.Statements))
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	src, errs := Parse(`function greet($name: string) { cmd $name }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn, ok := src.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", src.Statements[0])
	}
	if fn.Name.Name != "greet" {
		t.Fatalf("expected name 'greet', got %q", fn.Name.Name)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Name.Name != "name" {
		t.Fatalf("unexpected parameters: %#v", fn.Parameters)
	}
	if fn.Parameters[0].Type == nil || fn.Parameters[0].Type.TypeName.Name != "string" {
		t.Fatalf("expected type reference 'string', got %#v", fn.Parameters[0].Type)
	}
}

func TestParseArrayLiteralInVariableStatement(t *testing.T) {
	src, errs := Parse(`$x = [1, 2, 3]`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	stmt := src.Statements[0].(*ast.VariableStatement)
	arr, ok := stmt.Declaration.Expression.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expected ArrayLiteral, got %T", stmt.Declaration.Expression)
	}
	if len(arr.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(arr.Values))
	}
}

func TestParseExplicitCallInnerExpression(t *testing.T) {
	src, errs := Parse(`cmd greet(1, 2)`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	if len(cmd.Args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(cmd.Args))
	}
	inner, ok := cmd.Args[0].(*ast.InnerExpression)
	if !ok {
		t.Fatalf("expected InnerExpression, got %T", cmd.Args[0])
	}
	call, ok := inner.Expression.(*ast.CommandStatement)
	if !ok || call.Command.Name.Text != "greet" || len(call.Args) != 2 {
		t.Fatalf("unexpected inner call: %#v", inner.Expression)
	}
}

func TestParseExplicitCallWithOperatorArgument(t *testing.T) {
	src, errs := Parse(`cmd greet(1 + 2)`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	if len(cmd.Args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(cmd.Args))
	}
	inner, ok := cmd.Args[0].(*ast.InnerExpression)
	if !ok {
		t.Fatalf("expected InnerExpression, got %T", cmd.Args[0])
	}
	if !inner.Call {
		t.Fatalf("expected Call to be set for explicit-call form")
	}
	call, ok := inner.Expression.(*ast.CommandStatement)
	if !ok || call.Command.Name.Text != "greet" || len(call.Args) != 1 {
		t.Fatalf("unexpected inner call: %#v", inner.Expression)
	}
	bin, ok := call.Args[0].(*ast.BinaryExpression)
	if !ok || bin.Operator.Operator != "+" {
		t.Fatalf("expected '+' BinaryExpression argument, got %#v", call.Args[0])
	}
}

func TestParseDollarParenIsNotACall(t *testing.T) {
	src, errs := Parse(`cmd $(greet one two)`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	inner, ok := cmd.Args[0].(*ast.InnerExpression)
	if !ok {
		t.Fatalf("expected InnerExpression, got %T", cmd.Args[0])
	}
	if inner.Call {
		t.Fatalf("expected Call to be unset for $(...) form")
	}
}

func TestParsePrefixExpressionSigil(t *testing.T) {
	src, errs := Parse(`cmd ~target @owner`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmd := src.Statements[0].(*ast.CommandStatement)
	if len(cmd.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(cmd.Args))
	}
	for i, wantPrefix := range []string{"~", "@"} {
		pe, ok := cmd.Args[i].(*ast.PrefixExpression)
		if !ok {
			t.Fatalf("arg %d: expected PrefixExpression, got %T", i, cmd.Args[i])
		}
		if pe.Prefix.Value != wantPrefix {
			t.Fatalf("arg %d: expected prefix %q, got %q", i, wantPrefix, pe.Prefix.Value)
		}
		if _, ok := pe.Expression.(*ast.StringLit); !ok {
			t.Fatalf("arg %d: expected wrapped StringLit, got %T", i, pe.Expression)
		}
	}
}

func TestUnterminatedStringProducesInvalidAndError(t *testing.T) {
	src, errs := Parse(`"abc`)
	if len(errs) == 0 {
		t.Fatalf("expected at least one error")
	}
	var sawInvalid bool
	for _, s := range src.Statements {
		if ast.HasError(s) {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Fatalf("expected some statement to carry the error flag")
	}
}
