package ast

// IsNode is the sole supported way to narrow a Node's variant outside
// exhaustive pattern matching (spec §4.4, §9).
func IsNode(n Node, k Kind) bool {
	return n != nil && n.Kind() == k
}

// IsParentNode reports whether n owns at least one child, i.e. is a
// composite rather than a terminal.
func IsParentNode(n Node) bool {
	return n != nil && len(n.Children()) > 0
}

// HasError reports whether n's own flags include NodeHasError. The
// flag is not propagated upward, so a node whose descendant is an
// Invalid node reports false unless it carries the flag itself.
func HasError(n Node) bool {
	return n != nil && n.Flags().Has(NodeHasError)
}

// Has reports whether all bits in mask are set on f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
