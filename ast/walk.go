package ast

// Inspect traverses a tree in depth-first order, calling f for every node
// before visiting its children. If f returns false, the children of the
// node are skipped. Nil children (malformed input) are skipped as well.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, ch := range n.Children() {
		if ch != nil {
			Inspect(ch, f)
		}
	}
}

// NodeError is an error together with the node it is attached to.
type NodeError struct {
	Node Node
	Err  error
}

func (ne NodeError) Error() string {
	return ne.Node.String() + ": " + ne.Err.Error()
}

func (ne NodeError) Unwrap() error {
	return ne.Err
}

// Errors collects the errors attached to nodes of a tree, in document order.
func Errors(root Node) []NodeError {
	var errs []NodeError
	Inspect(root, func(n Node) bool {
		if err := n.Err(); err != nil {
			errs = append(errs, NodeError{Node: n, Err: err})
		}
		return true
	})
	return errs
}

// HasErrors is true if any node of a tree carries an error.
func HasErrors(root Node) bool {
	found := false
	Inspect(root, func(n Node) bool {
		if n.Err() != nil {
			found = true
		}
		return !found
	})
	return found
}

// ClearErrors removes all errors attached to nodes of a tree.
func ClearErrors(root Node) {
	Inspect(root, func(n Node) bool {
		n.SetErr(nil)
		return true
	})
}
