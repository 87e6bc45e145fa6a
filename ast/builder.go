package ast

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is returned by a Builder if a parser hands over nodes in
// a shape not conforming to the node model.
var ErrMalformedTree = errors.New("malformed syntax tree")

// Builder constructs a syntax tree from enter/leave events of a parser.
//
// Parsers usually walk their parse trees with recursive callbacks. Builder
// decouples the shape of the syntax tree from that recursion: it keeps an
// explicit stack of currently open nodes. Enter pushes a node, Leave pops
// the top node and attaches it to the node below. Leaving the outermost
// stylesheet completes the tree.
type Builder struct {
	open []Node
	root *Stylesheet
}

// NewBuilder creates a builder with no open nodes.
func NewBuilder() *Builder {
	return &Builder{}
}

// Enter opens a node. Subsequent nodes will be attached to it until it is
// closed with Leave.
func (b *Builder) Enter(n Node) {
	assertThat(n != nil, "cannot enter nil node")
	tracer().Debugf("builder: enter %v at depth %d", n, len(b.open))
	b.open = append(b.open, n)
}

// Leave closes the innermost open node and attaches it to its parent.
// A node may only be closed when all its mandatory children are present.
func (b *Builder) Leave() error {
	if len(b.open) == 0 {
		return fmt.Errorf("%w: leave without open node", ErrMalformedTree)
	}
	n := b.open[len(b.open)-1]
	if err := complete(n); err != nil {
		return err
	}
	b.open = b.open[:len(b.open)-1]
	if _, ok := n.(*Stylerule); ok && b.withinRule() {
		return fmt.Errorf("%w: %v nested within a style rule", ErrMalformedTree, n)
	}
	if len(b.open) == 0 {
		sheet, ok := n.(*Stylesheet)
		if !ok {
			return fmt.Errorf("%w: root is %v, not a stylesheet", ErrMalformedTree, n)
		}
		b.root = sheet
		return nil
	}
	return attach(b.open[len(b.open)-1], n)
}

// Add attaches a leaf node to the innermost open node. It is equivalent to
// Enter(n) immediately followed by Leave().
func (b *Builder) Add(n Node) error {
	b.Enter(n)
	return b.Leave()
}

// Stylesheet returns the completed tree. It is an error to call it while
// nodes are still open.
func (b *Builder) Stylesheet() (*Stylesheet, error) {
	if len(b.open) > 0 {
		return nil, fmt.Errorf("%w: %d nodes still open", ErrMalformedTree, len(b.open))
	}
	if b.root == nil {
		return nil, fmt.Errorf("%w: no stylesheet built", ErrMalformedTree)
	}
	return b.root, nil
}

// withinRule is true if a style rule is currently open.
func (b *Builder) withinRule() bool {
	for _, n := range b.open {
		if _, ok := n.(*Stylerule); ok {
			return true
		}
	}
	return false
}

// complete checks that a node has all its mandatory children.
func complete(n Node) error {
	missing := func(what string) error {
		return fmt.Errorf("%w: %v is missing %s", ErrMalformedTree, n, what)
	}
	switch n := n.(type) {
	case *Stylerule:
		if len(n.Selectors) == 0 {
			return missing("a selector")
		}
	case *Declaration:
		if n.Property == nil {
			return missing("a property")
		}
		if n.Expression == nil {
			return missing("a value")
		}
	case *VariableAssignment:
		if n.Name == "" {
			return missing("a variable name")
		}
		if n.Expression == nil {
			return missing("a value")
		}
	case *Operation:
		if n.Lhs == nil || n.Rhs == nil {
			return missing("an operand")
		}
	case *IfClause:
		if n.Condition == nil {
			return missing("a condition")
		}
	}
	return nil
}

func attach(parent, child Node) error {
	misplaced := func() error {
		return fmt.Errorf("%w: cannot attach %v to %v", ErrMalformedTree, child, parent)
	}
	switch p := parent.(type) {
	case *Stylesheet:
		if st, ok := child.(Statement); ok {
			p.Body = append(p.Body, st)
			return nil
		}
	case *Stylerule:
		switch c := child.(type) {
		case Selector:
			p.Selectors = append(p.Selectors, c)
			return nil
		case Statement:
			p.Body = append(p.Body, c)
			return nil
		}
	case *Declaration:
		switch c := child.(type) {
		case *PropertyName:
			if p.Property == nil {
				p.Property = c
				return nil
			}
		case Expression:
			if p.Expression == nil {
				p.Expression = c
				return nil
			}
		}
	case *VariableAssignment:
		// the first reference names the variable, the next expression is its value
		if ref, ok := child.(*VariableReference); ok && p.Name == "" {
			p.Name = ref.Name
			return nil
		}
		if expr, ok := child.(Expression); ok && p.Expression == nil {
			p.Expression = expr
			return nil
		}
	case *Operation:
		if expr, ok := child.(Expression); ok {
			if p.Lhs == nil {
				p.Lhs = expr
				return nil
			} else if p.Rhs == nil {
				p.Rhs = expr
				return nil
			}
		}
	case *IfClause:
		switch c := child.(type) {
		case Expression:
			if p.Condition == nil {
				p.Condition = c
				return nil
			}
		case Statement:
			p.Body = append(p.Body, c)
			return nil
		case *ElseClause:
			if p.Else == nil {
				p.Else = c
				return nil
			}
		}
	case *ElseClause:
		if st, ok := child.(Statement); ok {
			p.Body = append(p.Body, st)
			return nil
		}
	}
	return misplaced()
}
