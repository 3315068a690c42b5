package render

import (
	"fmt"
	"strings"

	"fortio.org/log"

	"github.com/roblox-aurora/cmd-ast/internal/ast"
)

// PrettyPrint emits one line per node, indented by depth, for
// debugging a parsed tree (spec §4.3 `prettyPrint(nodes, prefix="")`).
func PrettyPrint(nodes []ast.Node, prefix string) string {
	var b strings.Builder
	for _, n := range nodes {
		prettyPrintNode(&b, n, prefix)
	}
	return b.String()
}

func prettyPrintNode(b *strings.Builder, n ast.Node, prefix string) {
	if n == nil {
		return
	}
	log.Debugf("prettyPrint: %s%s", prefix, n.String())
	fmt.Fprintf(b, "%s%s\n", prefix, n.String())
	for _, c := range n.Children() {
		prettyPrintNode(b, c, prefix+"  ")
	}
}
