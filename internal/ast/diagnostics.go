package ast

import "fmt"

// Invalid wraps a best-effort sub-tree the parser could not fully
// make sense of, carrying a human-readable Message and the
// NodeHasError flag (spec §4.3 "Error recovery", §4.4).
type Invalid struct {
	base
	Expression Node
	Message    string
}

// NewInvalid builds an Invalid node. expression may be nil when the
// parser had nothing usable to attach.
func NewInvalid(expression Node, message string) *Invalid {
	n := &Invalid{Expression: expression, Message: message}
	n.kind = KindInvalid
	n.flags |= NodeHasError
	if expression != nil {
		expression.SetParent(n)
	}
	return n
}

func (n *Invalid) Children() []Node {
	if n.Expression == nil {
		return nil
	}
	return []Node{n.Expression}
}
func (n *Invalid) String() string { return fmt.Sprintf("Invalid(%s)", n.Message) }

// NodeError pairs a diagnostic message with the node whose span
// localises it (spec §4.4, §7).
type NodeError struct {
	Node    Node
	Message string
}

func (e *NodeError) Error() string {
	if start, end, ok := e.Node.Span(); ok {
		return fmt.Sprintf("%d..%d: %s", start, end, e.Message)
	}
	return e.Message
}
