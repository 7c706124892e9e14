package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes one label per line, indented two spaces per depth.
func Print(w io.Writer, root *Node) {
	Walk(root, func(node *Node, depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), node.Label())
	})
}

func (n *Node) String() string {
	var sb strings.Builder
	Print(&sb, n)
	return sb.String()
}
