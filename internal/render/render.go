// Package render reconstructs Zirconium source text from an AST and
// prints debug trees of it, mirroring the teacher's pkg/printer
// without carrying over its formatter/line-width machinery: spec §4.3
// asks only for a near-source walk, not a canonical formatter.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roblox-aurora/cmd-ast/internal/ast"
)

// Render walks node, producing a near-source reconstruction. It is not
// byte-exact with the original input (whitespace and comments are not
// preserved). Quoted text is re-escaped so it re-lexes to the same
// value. An option key is re-emitted as `-f` when its flag is one
// character long and `--flag` otherwise, so a one-character long
// option such as `--f value` comes back as `-f value`.
func Render(node ast.Node) string {
	var b strings.Builder
	write(&b, node)
	return b.String()
}

func write(b *strings.Builder, node ast.Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.Source:
		for i, s := range n.Statements {
			if i > 0 {
				b.WriteByte('\n')
			}
			write(b, s)
		}

	case *ast.Block:
		if !n.Braced {
			if len(n.Statements) > 0 {
				b.WriteString(": ")
				write(b, n.Statements[0])
			}
			return
		}
		b.WriteString("{ ")
		for i, s := range n.Statements {
			if i > 0 {
				b.WriteString("; ")
			}
			write(b, s)
		}
		b.WriteString(" }")

	case *ast.CommandName:
		write(b, n.Name)

	case *ast.CommandStatement:
		write(b, n.Command)
		for _, a := range n.Args {
			b.WriteByte(' ')
			write(b, a)
		}

	case *ast.IfStatement:
		b.WriteString("if ")
		write(b, n.Condition)
		b.WriteByte(' ')
		write(b, n.Then)
		if n.Else != nil {
			b.WriteString(" else ")
			write(b, n.Else)
		}

	case *ast.ForInStatement:
		b.WriteString("for $")
		b.WriteString(n.Initializer.Name)
		b.WriteString(" in ")
		write(b, n.Expression)
		b.WriteByte(' ')
		write(b, n.Statement)

	case *ast.TypeReference:
		b.WriteString(n.TypeName.Name)

	case *ast.Parameter:
		b.WriteString("$")
		b.WriteString(n.Name.Name)
		if n.Type != nil {
			b.WriteString(": ")
			write(b, n.Type)
		}

	case *ast.FunctionDeclaration:
		b.WriteString("function ")
		b.WriteString(n.Name.Name)
		b.WriteByte('(')
		for i, p := range n.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, p)
		}
		b.WriteString(") ")
		write(b, n.Body)

	case *ast.VariableDeclaration:
		b.WriteString("$")
		b.WriteString(n.Identifier.Name)
		b.WriteString(" = ")
		write(b, n.Expression)

	case *ast.VariableStatement:
		write(b, n.Declaration)

	case *ast.PropertyAssignment:
		write(b, n.Name)
		b.WriteString(": ")
		write(b, n.Initializer)

	case *ast.BinaryExpression:
		write(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(n.Operator.Operator)
		b.WriteByte(' ')
		write(b, n.Right)

	case *ast.UnaryExpression:
		b.WriteString(n.Operator)
		write(b, n.Expression)

	case *ast.InterpolatedString:
		b.WriteByte('"')
		for _, v := range n.Values {
			switch t := v.(type) {
			case *ast.StringLit:
				for i := 0; i < len(t.Text); i++ {
					if c := t.Text[i]; c == '\\' || c == '"' || c == '$' {
						b.WriteByte('\\')
					}
					b.WriteByte(t.Text[i])
				}
			case *ast.Identifier:
				b.WriteByte('$')
				b.WriteString(t.Name)
			}
		}
		b.WriteByte('"')

	case *ast.ArrayLiteral:
		b.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, v)
		}
		b.WriteByte(']')

	case *ast.ObjectLiteral:
		b.WriteString("{ ")
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, v)
		}
		b.WriteString(" }")

	case *ast.PropertyAccessExpression:
		write(b, n.Expression)
		b.WriteByte('.')
		b.WriteString(n.Name.Name)

	case *ast.ArrayIndexExpression:
		write(b, n.Expression)
		b.WriteByte('[')
		b.WriteString(n.Index.Raw)
		b.WriteByte(']')

	case *ast.ParenthesizedExpression:
		b.WriteByte('(')
		write(b, n.Expression)
		b.WriteByte(')')

	case *ast.InnerExpression:
		if n.Call {
			writeExplicitCall(b, n)
		} else {
			b.WriteString("$(")
			write(b, n.Expression)
			b.WriteByte(')')
		}

	case *ast.PrefixExpression:
		b.WriteString(n.Prefix.Value)
		write(b, n.Expression)

	case *ast.OptionExpression:
		writeOption(b, n.Option)
		if n.Expression != nil {
			b.WriteByte(' ')
			write(b, n.Expression)
		}

	case *ast.OptionKey:
		writeOption(b, n)

	case *ast.StringLit:
		if n.Quotes == 0 {
			b.WriteString(n.Text)
		} else {
			b.WriteByte(n.Quotes)
			for i := 0; i < len(n.Text); i++ {
				if c := n.Text[i]; c == '\\' || c == n.Quotes || c == '$' {
					b.WriteByte('\\')
				}
				b.WriteByte(n.Text[i])
			}
			b.WriteByte(n.Quotes)
		}

	case *ast.NumberLit:
		b.WriteString(n.Raw)

	case *ast.BooleanLit:
		b.WriteString(strconv.FormatBool(n.Value))

	case *ast.Identifier:
		b.WriteString("$")
		b.WriteString(n.Name)

	case *ast.OperatorToken:
		b.WriteString(n.Operator)

	case *ast.PrefixToken:
		b.WriteString(n.Value)

	case *ast.EndOfStatement:
		b.WriteString(n.Value)

	case *ast.Invalid:
		b.WriteString(fmt.Sprintf("<invalid: %s>", n.Message))

	default:
		b.WriteString(node.String())
	}
}

// writeExplicitCall re-emits the `name(arg, arg)` form of an
// InnerExpression with Call set: n.Expression is always the
// CommandStatement parseExplicitCall built, whose Args were each
// parsed as a full Pratt expression (commands.go parseExplicitCall),
// not command-mode arguments — rendering them space-joined the way
// the `$( ... )` case does would lose the comma/grouping that let the
// args re-parse as expressions instead of barewords.
func writeExplicitCall(b *strings.Builder, n *ast.InnerExpression) {
	cmd, ok := n.Expression.(*ast.CommandStatement)
	if !ok {
		write(b, n.Expression)
		return
	}
	write(b, cmd.Command)
	b.WriteByte('(')
	for i, a := range cmd.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, a)
	}
	b.WriteByte(')')
}

// writeOption re-emits a single flag as `--name` or `-f`, inferring
// the original prefix from the flag's length (spec §4.3 `render`:
// "options re-emit `--flag value` or `-f`").
func writeOption(b *strings.Builder, k *ast.OptionKey) {
	if len(k.Flag) == 1 {
		b.WriteByte('-')
	} else {
		b.WriteString("--")
	}
	b.WriteString(k.Flag)
}
