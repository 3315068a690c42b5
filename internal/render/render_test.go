package render

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/roblox-aurora/cmd-ast/internal/parser"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func renderSource(t *testing.T, source string) string {
	t.Helper()
	src, errs := parser.Parse(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}
	return Render(src)
}

func TestRenderCommandStatement(t *testing.T) {
	out := renderSource(t, `cmd one two`)
	snaps.MatchSnapshot(t, out)
}

func TestRenderOptionsAndInterpolation(t *testing.T) {
	out := renderSource(t, `cmd --test "Hello, $player!" -kE`)
	snaps.MatchSnapshot(t, out)
}

func TestRenderPipeline(t *testing.T) {
	out := renderSource(t, `cmd one && cmd --number two`)
	snaps.MatchSnapshot(t, out)
}

func TestRenderIfElse(t *testing.T) {
	out := renderSource(t, `if $x { cmd one } else { cmd two }`)
	snaps.MatchSnapshot(t, out)
}

func TestRenderFunctionDeclaration(t *testing.T) {
	out := renderSource(t, `function greet($name: string) { cmd $name }`)
	snaps.MatchSnapshot(t, out)
}

func TestRenderExplicitCall(t *testing.T) {
	out := renderSource(t, `cmd greet(1 + 2, $x)`)
	snaps.MatchSnapshot(t, out)
}

// TestExplicitCallRoundTripIsIdempotent guards against InnerExpression's
// two source forms (`$( ... )` and `name(arg, arg)`) collapsing back to
// the same rendered text: an explicit call with an operator-bearing
// argument must render as `name(arg, arg)` again, not `$(name arg arg)`,
// or re-parsing it would route the argument through command-mode
// argument grammar instead of the Pratt expression grammar it was
// parsed with (spec §8 "Idempotence").
func TestExplicitCallRoundTripIsIdempotent(t *testing.T) {
	source := `cmd greet(1 + 2)`

	src, errs := parser.Parse(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}
	rendered := Render(src)

	reparsed, errs := parser.Parse(rendered)
	if len(errs) != 0 {
		t.Fatalf("re-parsing rendered output %q produced errors: %v", rendered, errs)
	}

	rerendered := Render(reparsed)
	if rerendered != rendered {
		t.Fatalf("render(parse(render(src))) = %q, want %q", rerendered, rendered)
	}
}

func TestPrettyPrintCommandStatement(t *testing.T) {
	src, errs := parser.Parse(`cmd --flag one`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	out := PrettyPrint(src.Children(), "")
	snaps.MatchSnapshot(t, out)
}
