// Package zr is Zirconium's public surface: parse Zr source into an
// AST, render an AST back to near-source text, and pretty-print a
// tree for debugging. It re-exports the node factories and predicates
// downstream interpreters need without requiring them to import the
// internal packages directly (spec §6 "External interfaces").
package zr

import (
	"github.com/roblox-aurora/cmd-ast/internal/ast"
	"github.com/roblox-aurora/cmd-ast/internal/lexer"
	"github.com/roblox-aurora/cmd-ast/internal/parser"
	"github.com/roblox-aurora/cmd-ast/internal/render"
)

// Re-exported types downstream code pattern-matches against.
type (
	Node                     = ast.Node
	Kind                     = ast.Kind
	Flags                    = ast.Flags
	Source                   = ast.Source
	Block                    = ast.Block
	CommandName              = ast.CommandName
	CommandStatement         = ast.CommandStatement
	IfStatement              = ast.IfStatement
	ForInStatement           = ast.ForInStatement
	TypeReference            = ast.TypeReference
	Parameter                = ast.Parameter
	FunctionDeclaration      = ast.FunctionDeclaration
	VariableDeclaration      = ast.VariableDeclaration
	VariableStatement        = ast.VariableStatement
	PropertyAssignment       = ast.PropertyAssignment
	BinaryExpression         = ast.BinaryExpression
	UnaryExpression          = ast.UnaryExpression
	InterpolatedString       = ast.InterpolatedString
	ArrayLiteral             = ast.ArrayLiteral
	ObjectLiteral            = ast.ObjectLiteral
	PropertyAccessExpression = ast.PropertyAccessExpression
	ArrayIndexExpression     = ast.ArrayIndexExpression
	ParenthesizedExpression  = ast.ParenthesizedExpression
	InnerExpression          = ast.InnerExpression
	PrefixExpression         = ast.PrefixExpression
	OptionExpression         = ast.OptionExpression
	OptionKey                = ast.OptionKey
	StringLit                = ast.StringLit
	NumberLit                = ast.NumberLit
	BooleanLit               = ast.BooleanLit
	Identifier               = ast.Identifier
	OperatorToken            = ast.OperatorToken
	PrefixToken              = ast.PrefixToken
	EndOfStatement           = ast.EndOfStatement
	Invalid                  = ast.Invalid
	NodeError                = ast.NodeError
	LexerOption              = lexer.Option
)

// Kind constants, re-exported so callers never import internal/ast.
const (
	KindInvalid                  = ast.KindInvalid
	KindSource                   = ast.KindSource
	KindBlock                    = ast.KindBlock
	KindCommandStatement         = ast.KindCommandStatement
	KindCommandName              = ast.KindCommandName
	KindIfStatement              = ast.KindIfStatement
	KindForInStatement           = ast.KindForInStatement
	KindFunctionDeclaration      = ast.KindFunctionDeclaration
	KindParameter                = ast.KindParameter
	KindTypeReference            = ast.KindTypeReference
	KindVariableDeclaration      = ast.KindVariableDeclaration
	KindVariableStatement        = ast.KindVariableStatement
	KindBinaryExpression         = ast.KindBinaryExpression
	KindUnaryExpression          = ast.KindUnaryExpression
	KindInterpolatedString       = ast.KindInterpolatedString
	KindArrayLiteral             = ast.KindArrayLiteral
	KindObjectLiteral            = ast.KindObjectLiteral
	KindPropertyAssignment       = ast.KindPropertyAssignment
	KindPropertyAccessExpression = ast.KindPropertyAccessExpression
	KindArrayIndexExpression     = ast.KindArrayIndexExpression
	KindParenthesizedExpression  = ast.KindParenthesizedExpression
	KindInnerExpression          = ast.KindInnerExpression
	KindPrefixExpression         = ast.KindPrefixExpression
	KindOptionExpression         = ast.KindOptionExpression
	KindString                   = ast.KindString
	KindNumber                   = ast.KindNumber
	KindBoolean                  = ast.KindBoolean
	KindIdentifier               = ast.KindIdentifier
	KindOperatorToken            = ast.KindOperatorToken
	KindPrefixToken              = ast.KindPrefixToken
	KindEndOfStatement           = ast.KindEndOfStatement
	KindOptionKey                = ast.KindOptionKey

	NoFlags      = ast.NoFlags
	NodeHasError = ast.NodeHasError
)

// Parse lexes and parses source, returning the AST root and any
// diagnostics accumulated along the way (spec §6
// `parse(source, options?)`).
func Parse(source string, opts ...LexerOption) (*Source, []*NodeError) {
	return parser.Parse(source, opts...)
}

// Render walks node, producing a near-source reconstruction (spec §4.3,
// §6 `render(node)`).
func Render(node Node) string {
	return render.Render(node)
}

// PrettyPrint emits one line per node in nodes, indented by depth
// (spec §4.3, §6 `pretty_print(nodes, prefix="")`).
func PrettyPrint(nodes []Node, prefix string) string {
	return render.PrettyPrint(nodes, prefix)
}

// IsNode narrows n's variant by kind (spec §4.4, §9).
func IsNode(n Node, k Kind) bool { return ast.IsNode(n, k) }

// IsParentNode reports whether n owns at least one child.
func IsParentNode(n Node) bool { return ast.IsParentNode(n) }

// HasError reports whether n carries the NodeHasError flag.
func HasError(n Node) bool { return ast.HasError(n) }

// Node factories, re-exported so collaborators never import
// internal/ast directly (spec §6 "Re-exports of node factories").
var (
	NewSource                   = ast.NewSource
	NewBlock                    = ast.NewBlock
	NewCommandName               = ast.NewCommandName
	NewCommandStatement          = ast.NewCommandStatement
	NewIfStatement                = ast.NewIfStatement
	NewForInStatement             = ast.NewForInStatement
	NewTypeReference              = ast.NewTypeReference
	NewParameter                  = ast.NewParameter
	NewFunctionDeclaration        = ast.NewFunctionDeclaration
	NewVariableDeclaration        = ast.NewVariableDeclaration
	NewVariableStatement          = ast.NewVariableStatement
	NewPropertyAssignment         = ast.NewPropertyAssignment
	NewBinaryExpression           = ast.NewBinaryExpression
	NewUnaryExpression            = ast.NewUnaryExpression
	NewInterpolatedString         = ast.NewInterpolatedString
	NewArrayLiteral               = ast.NewArrayLiteral
	NewObjectLiteral              = ast.NewObjectLiteral
	NewPropertyAccessExpression   = ast.NewPropertyAccessExpression
	NewArrayIndexExpression       = ast.NewArrayIndexExpression
	NewParenthesizedExpression    = ast.NewParenthesizedExpression
	NewInnerExpression            = ast.NewInnerExpression
	NewPrefixExpression           = ast.NewPrefixExpression
	NewOptionExpression           = ast.NewOptionExpression
	NewOptionKey                  = ast.NewOptionKey
	NewStringLit                  = ast.NewStringLit
	NewNumberLit                  = ast.NewNumberLit
	NewBooleanLit                 = ast.NewBooleanLit
	NewIdentifier                 = ast.NewIdentifier
	NewOperatorToken              = ast.NewOperatorToken
	NewPrefixToken                = ast.NewPrefixToken
	NewEndOfStatement             = ast.NewEndOfStatement
	NewInvalid                    = ast.NewInvalid

	OffsetNodePosition         = ast.OffsetNodePosition
	GetNextNode                = ast.GetNextNode
	GetPreviousNode            = ast.GetPreviousNode
	FlattenInterpolatedString  = ast.FlattenInterpolatedString
	ToString                   = ast.ToString
)

// LexerOption constructors, re-exported alongside Parse.
var (
	WithComments     = lexer.WithComments
	WithWhitespace   = lexer.WithWhitespace
	WithCommandNames = lexer.WithCommandNames
	WithTracing      = lexer.WithTracing
)
