package ast

import "fmt"

// BinaryExpression is a left/operator/right expression produced both
// by expression-mode Pratt parsing and by command-mode pipe/logical
// folding (spec §4.3).
type BinaryExpression struct {
	base
	Left     Node
	Operator *OperatorToken
	Right    Node
}

func NewBinaryExpression(left Node, operator *OperatorToken, right Node) *BinaryExpression {
	n := &BinaryExpression{Left: left, Operator: operator, Right: right}
	n.kind = KindBinaryExpression
	left.SetParent(n)
	operator.SetParent(n)
	right.SetParent(n)
	return n
}

func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpression) String() string {
	return fmt.Sprintf("BinaryExpression(%s)", n.Operator.Operator)
}

// UnaryExpression is a prefix unary operation, currently only `!`
// (spec §4.3 expression-mode prefix productions).
type UnaryExpression struct {
	base
	Operator   string
	Expression Node
}

func NewUnaryExpression(operator string, expression Node) *UnaryExpression {
	n := &UnaryExpression{Operator: operator, Expression: expression}
	n.kind = KindUnaryExpression
	expression.SetParent(n)
	return n
}

func (n *UnaryExpression) Children() []Node { return []Node{n.Expression} }
func (n *UnaryExpression) String() string   { return fmt.Sprintf("UnaryExpression(%s)", n.Operator) }

// InterpolatedString holds the alternating String/Identifier chunks a
// `"...$var..."` literal decomposes into.
type InterpolatedString struct {
	base
	Values []Node // *StringLit | *Identifier, alternating
}

func NewInterpolatedString(values []Node) *InterpolatedString {
	n := &InterpolatedString{Values: values}
	n.kind = KindInterpolatedString
	for _, v := range values {
		v.SetParent(n)
	}
	return n
}

func (n *InterpolatedString) Children() []Node { return n.Values }
func (n *InterpolatedString) String() string {
	return fmt.Sprintf("InterpolatedString(%d parts)", len(n.Values))
}

// ArrayLiteral is a `[ a, b, c ]` expression-mode literal.
type ArrayLiteral struct {
	base
	Values []Node
}

func NewArrayLiteral(values []Node) *ArrayLiteral {
	n := &ArrayLiteral{Values: values}
	n.kind = KindArrayLiteral
	for _, v := range values {
		v.SetParent(n)
	}
	return n
}

func (n *ArrayLiteral) Children() []Node { return n.Values }
func (n *ArrayLiteral) String() string   { return fmt.Sprintf("ArrayLiteral(%d)", len(n.Values)) }

// ObjectLiteral is a `{ key: value, ... }` expression-mode literal
// (spec §9 open question: expression-mode only, never a command-mode
// production).
type ObjectLiteral struct {
	base
	Values []*PropertyAssignment
}

func NewObjectLiteral(values []*PropertyAssignment) *ObjectLiteral {
	n := &ObjectLiteral{Values: values}
	n.kind = KindObjectLiteral
	for _, v := range values {
		v.SetParent(n)
	}
	return n
}

func (n *ObjectLiteral) Children() []Node {
	children := make([]Node, len(n.Values))
	for i, v := range n.Values {
		children[i] = v
	}
	return children
}
func (n *ObjectLiteral) String() string { return fmt.Sprintf("ObjectLiteral(%d)", len(n.Values)) }

// PropertyAccessExpression is a `.name` chain, left-associative over
// Identifier, another PropertyAccessExpression, or an
// ArrayIndexExpression.
type PropertyAccessExpression struct {
	base
	Expression Node
	Name       *Identifier
}

func NewPropertyAccessExpression(expression Node, name *Identifier) *PropertyAccessExpression {
	n := &PropertyAccessExpression{Expression: expression, Name: name}
	n.kind = KindPropertyAccessExpression
	expression.SetParent(n)
	name.SetParent(n)
	return n
}

func (n *PropertyAccessExpression) Children() []Node { return []Node{n.Expression, n.Name} }
func (n *PropertyAccessExpression) String() string {
	return fmt.Sprintf("PropertyAccessExpression(.%s)", n.Name.Name)
}

// ArrayIndexExpression is a `expr[index]` subscript.
type ArrayIndexExpression struct {
	base
	Expression Node
	Index      *NumberLit
}

func NewArrayIndexExpression(expression Node, index *NumberLit) *ArrayIndexExpression {
	n := &ArrayIndexExpression{Expression: expression, Index: index}
	n.kind = KindArrayIndexExpression
	expression.SetParent(n)
	index.SetParent(n)
	return n
}

func (n *ArrayIndexExpression) Children() []Node { return []Node{n.Expression, n.Index} }
func (n *ArrayIndexExpression) String() string {
	return fmt.Sprintf("ArrayIndexExpression[%s]", n.Index.Raw)
}

// ParenthesizedExpression wraps an expression in explicit parens.
type ParenthesizedExpression struct {
	base
	Expression Node
}

func NewParenthesizedExpression(expression Node) *ParenthesizedExpression {
	n := &ParenthesizedExpression{Expression: expression}
	n.kind = KindParenthesizedExpression
	expression.SetParent(n)
	return n
}

func (n *ParenthesizedExpression) Children() []Node { return []Node{n.Expression} }
func (n *ParenthesizedExpression) String() string   { return "ParenthesizedExpression" }

// InnerExpression is the `$( ... )` / explicit-call sub-expression
// form (spec §3.2); Expression is a CommandStatement, BinaryExpression,
// or VariableStatement. Call distinguishes the two source forms that
// share this node shape: false for `$( ... )` (Expression's command,
// if any, was parsed with command-mode argument grammar), true for
// `name(arg, arg)` (Expression is always a CommandStatement whose Args
// were each parsed as a full Pratt expression). The renderer needs
// this to reproduce the form the parser actually saw.
type InnerExpression struct {
	base
	Expression Node
	Call       bool
}

func NewInnerExpression(expression Node, call bool) *InnerExpression {
	n := &InnerExpression{Expression: expression, Call: call}
	n.kind = KindInnerExpression
	expression.SetParent(n)
	return n
}

func (n *InnerExpression) Children() []Node { return []Node{n.Expression} }
func (n *InnerExpression) String() string {
	if n.Call {
		return "InnerExpression(call)"
	}
	return "InnerExpression"
}

// PrefixExpression is a sigil (~ @ % ^ * !) applied to a literal in an
// argument slot (spec §6, §GLOSSARY "Prefix expression").
type PrefixExpression struct {
	base
	Prefix     *PrefixToken
	Expression Node
}

func NewPrefixExpression(prefix *PrefixToken, expression Node) *PrefixExpression {
	n := &PrefixExpression{Prefix: prefix, Expression: expression}
	n.kind = KindPrefixExpression
	prefix.SetParent(n)
	expression.SetParent(n)
	return n
}

func (n *PrefixExpression) Children() []Node { return []Node{n.Prefix, n.Expression} }
func (n *PrefixExpression) String() string {
	return fmt.Sprintf("PrefixExpression(%s)", n.Prefix.Value)
}

// OptionExpression is a reduced `--flag value` command-argument pair.
type OptionExpression struct {
	base
	Option     *OptionKey
	Expression Node
}

func NewOptionExpression(option *OptionKey, expression Node) *OptionExpression {
	n := &OptionExpression{Option: option, Expression: expression}
	n.kind = KindOptionExpression
	option.SetParent(n)
	if expression != nil {
		expression.SetParent(n)
	}
	return n
}

func (n *OptionExpression) Children() []Node {
	if n.Expression == nil {
		return []Node{n.Option}
	}
	return []Node{n.Option, n.Expression}
}
func (n *OptionExpression) String() string {
	return fmt.Sprintf("OptionExpression(--%s)", n.Option.Flag)
}
