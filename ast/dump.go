package ast

import (
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented drawing of a tree, one node per line. Errors
// attached to nodes are appended to the node's line.
func Dump(root Node) string {
	if root == nil {
		return "<nil>"
	}
	p := tp.New()
	dumpNode(p, root)
	return p.String()
}

func dumpNode(p tp.Tree, n Node) {
	if n == nil {
		p.AddNode("<nil>")
		return
	}
	children := n.Children()
	if len(children) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range children {
		dumpNode(branch, ch)
	}
}

func label(n Node) string {
	if err := n.Err(); err != nil {
		return n.String() + "  ⚠ " + err.Error()
	}
	return n.String()
}
