// Package ast defines the Zirconium abstract syntax tree: a closed
// set of tagged node variants sharing common span/parent/flag fields,
// per spec §3.2 and the "tagged variants over inheritance" design
// note in spec §9.
package ast

// Kind tags every concrete Node variant Zirconium's parser can emit.
type Kind int

const (
	KindInvalid Kind = iota

	// Terminals
	KindString
	KindNumber
	KindBoolean
	KindIdentifier
	KindOperatorToken
	KindPrefixToken
	KindEndOfStatement
	KindOptionKey

	// Composites
	KindSource
	KindBlock
	KindCommandStatement
	KindCommandName
	KindIfStatement
	KindForInStatement
	KindFunctionDeclaration
	KindParameter
	KindTypeReference
	KindVariableDeclaration
	KindVariableStatement
	KindBinaryExpression
	KindUnaryExpression
	KindInterpolatedString
	KindArrayLiteral
	KindObjectLiteral
	KindPropertyAssignment
	KindPropertyAccessExpression
	KindArrayIndexExpression
	KindParenthesizedExpression
	KindInnerExpression
	KindPrefixExpression
	KindOptionExpression
)

var kindNames = [...]string{
	KindInvalid:                  "Invalid",
	KindString:                   "String",
	KindNumber:                   "Number",
	KindBoolean:                  "Boolean",
	KindIdentifier:               "Identifier",
	KindOperatorToken:            "OperatorToken",
	KindPrefixToken:              "PrefixToken",
	KindEndOfStatement:           "EndOfStatement",
	KindOptionKey:                "OptionKey",
	KindSource:                   "Source",
	KindBlock:                    "Block",
	KindCommandStatement:         "CommandStatement",
	KindCommandName:              "CommandName",
	KindIfStatement:              "IfStatement",
	KindForInStatement:           "ForInStatement",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindParameter:                "Parameter",
	KindTypeReference:            "TypeReference",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableStatement:        "VariableStatement",
	KindBinaryExpression:         "BinaryExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindInterpolatedString:       "InterpolatedString",
	KindArrayLiteral:             "ArrayLiteral",
	KindObjectLiteral:            "ObjectLiteral",
	KindPropertyAssignment:       "PropertyAssignment",
	KindPropertyAccessExpression: "PropertyAccessExpression",
	KindArrayIndexExpression:     "ArrayIndexExpression",
	KindParenthesizedExpression:  "ParenthesizedExpression",
	KindInnerExpression:          "InnerExpression",
	KindPrefixExpression:         "PrefixExpression",
	KindOptionExpression:         "OptionExpression",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Flags is a per-node annotation bitset (spec §9: "Flags are a
// bitset, not a subtype marker").
type Flags uint8

const (
	NoFlags Flags = 0
	// NodeHasError marks an Invalid node, an unterminated StringLit, or
	// a Block left unclosed at end of input.
	NodeHasError Flags = 1 << 0
)

// Node is the common interface every AST variant satisfies. It plays
// the role spec §9 assigns an arena-indexed NodeId in a systems
// language with affine ownership: parent is a plain back-reference,
// never an owner, so the tree remains a simple rooted tree freed when
// Source is dropped.
type Node interface {
	// Kind reports the tagged variant this node belongs to.
	Kind() Kind

	// Parent returns the node's parent, or nil for an unattached or
	// root node.
	Parent() Node

	// SetParent wires the back-link; only node factories call this.
	SetParent(Node)

	// Span returns the node's [start,end) byte range (end is the offset
	// just past the node's last byte, not the last byte itself) and
	// whether one has been recorded at all (some nodes, e.g. a
	// synthesized Invalid wrapper, may not have a span).
	Span() (start, end int, ok bool)

	// SetSpan records the node's byte range.
	SetSpan(start, end int)

	// Flags returns the node's annotation bitset.
	Flags() Flags

	// AddFlags ORs extra bits into the node's flag set.
	AddFlags(Flags)

	// Children returns the node's immediate child nodes in source
	// order, or nil for terminals. Used by generic tree walks
	// (rendering, offsetting, sibling lookup).
	Children() []Node

	// String renders a short debug form of the node (used by
	// prettyPrint; not the same as render.Render's source
	// reconstruction).
	String() string
}

// base is embedded by every concrete node type and supplies the
// common Node plumbing so individual node structs need only define
// their payload fields and Children()/String().
type base struct {
	kind     Kind
	parent   Node
	start    int
	end      int
	hasSpan  bool
	flags    Flags
}

func (b *base) Kind() Kind           { return b.kind }
func (b *base) Parent() Node         { return b.parent }
func (b *base) SetParent(p Node)     { b.parent = p }
func (b *base) Flags() Flags         { return b.flags }
func (b *base) AddFlags(f Flags)     { b.flags |= f }
func (b *base) Span() (int, int, bool) {
	return b.start, b.end, b.hasSpan
}
func (b *base) SetSpan(start, end int) {
	b.start, b.end = start, end
	b.hasSpan = true
}
