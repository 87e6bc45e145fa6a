package ast

import (
	"fmt"
	"strings"
)

// Node is the base type our syntax trees are built of.
//
// Every node owns an ordered sequence of child nodes (empty for leaves) and
// may carry an error attached by a checking pass. Absence of an error means
// the node is valid.
type Node interface {
	Children() []Node // ordered child nodes, nil for leaves
	Err() error       // error attached to this node, if any
	SetErr(error)     // attach an error to this node; nil clears it
	String() string
	node()
}

// Statement is a node which may appear in the body of a stylesheet, a style
// rule or a branch of a conditional: style rules, declarations, variable
// assignments and if-clauses.
type Statement interface {
	Node
	statement()
}

// Expression is a node which denotes a value: literals, operations and
// variable references.
type Expression interface {
	Node
	expression()
}

// Literal is an expression wrapping a single constant value.
type Literal interface {
	Expression
	Type() ExpressionType // intrinsic type of the literal
	literal()
}

// Selector is one of TagSelector, ClassSelector or IdSelector.
type Selector interface {
	Node
	selector()
}

// diagnostic is embedded into every node type and holds the attached error.
type diagnostic struct {
	err error
}

func (d *diagnostic) Err() error       { return d.err }
func (d *diagnostic) SetErr(err error) { d.err = err }
func (*diagnostic) node()              {}

// --- Containers ------------------------------------------------------------

// Stylesheet is the root of a syntax tree.
type Stylesheet struct {
	diagnostic
	Body []Statement // top-level rules and variable assignments
}

// Sheet creates a stylesheet node with a body of statements.
func Sheet(body ...Statement) *Stylesheet {
	return &Stylesheet{Body: body}
}

func (s *Stylesheet) Children() []Node { return statements(s.Body) }
func (s *Stylesheet) String() string   { return "Stylesheet" }

// Stylerule is a rule with a list of selectors and a body.
type Stylerule struct {
	diagnostic
	Selectors []Selector
	Body      []Statement // declarations, assignments and if-clauses
}

// Rule creates a style rule for a list of selectors. The body is set with
// method With.
func Rule(selectors ...Selector) *Stylerule {
	return &Stylerule{Selectors: selectors}
}

// With appends statements to the body of a style rule.
// It returns the rule to allow for chaining.
func (r *Stylerule) With(body ...Statement) *Stylerule {
	r.Body = append(r.Body, body...)
	return r
}

func (r *Stylerule) Children() []Node {
	children := make([]Node, 0, len(r.Selectors)+len(r.Body))
	for _, sel := range r.Selectors {
		children = append(children, sel)
	}
	return append(children, statements(r.Body)...)
}

func (r *Stylerule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, sel := range r.Selectors {
		sels[i] = SelectorText(sel)
	}
	return fmt.Sprintf("Stylerule(%s)", strings.Join(sels, ", "))
}

func (*Stylerule) statement() {}

// --- Selectors -------------------------------------------------------------

// TagSelector selects elements by tag name, e.g. "p".
type TagSelector struct {
	diagnostic
	Name string
}

// ClassSelector selects elements by class name. Name excludes the leading dot.
type ClassSelector struct {
	diagnostic
	Name string
}

// IdSelector selects an element by id. Name excludes the leading hash.
type IdSelector struct {
	diagnostic
	Name string
}

// Tag creates a tag selector.
func Tag(name string) *TagSelector { return &TagSelector{Name: name} }

// Class creates a class selector. A leading '.' is stripped.
func Class(name string) *ClassSelector {
	return &ClassSelector{Name: strings.TrimPrefix(name, ".")}
}

// ID creates an id selector. A leading '#' is stripped.
func ID(name string) *IdSelector {
	return &IdSelector{Name: strings.TrimPrefix(name, "#")}
}

func (*TagSelector) Children() []Node   { return nil }
func (*ClassSelector) Children() []Node { return nil }
func (*IdSelector) Children() []Node    { return nil }
func (s *TagSelector) String() string   { return "Tag(" + s.Name + ")" }
func (s *ClassSelector) String() string { return "Class(" + s.Name + ")" }
func (s *IdSelector) String() string    { return "Id(" + s.Name + ")" }
func (*TagSelector) selector()          {}
func (*ClassSelector) selector()        {}
func (*IdSelector) selector()           {}

// SelectorText returns the CSS notation of a selector.
func SelectorText(sel Selector) string {
	switch s := sel.(type) {
	case *TagSelector:
		return s.Name
	case *ClassSelector:
		return "." + s.Name
	case *IdSelector:
		return "#" + s.Name
	}
	panic(fmt.Sprintf("icss.ast: unknown selector type %T", sel))
}

// --- Declarations and variables --------------------------------------------

// Declaration sets a property to the value of an expression.
type Declaration struct {
	diagnostic
	Property   *PropertyName
	Expression Expression
}

// Declare creates a declaration for a property name and a value expression.
func Declare(property string, expr Expression) *Declaration {
	return &Declaration{Property: &PropertyName{Name: property}, Expression: expr}
}

func (d *Declaration) Children() []Node { return []Node{d.Property, d.Expression} }
func (d *Declaration) String() string   { return "Declaration" }
func (*Declaration) statement()         {}

// PropertyName is the left hand side of a declaration.
type PropertyName struct {
	diagnostic
	Name string
}

func (*PropertyName) Children() []Node  { return nil }
func (p *PropertyName) String() string { return "PropertyName(" + p.Name + ")" }

// VariableAssignment binds the value of an expression to a name within the
// enclosing scope.
type VariableAssignment struct {
	diagnostic
	Name       string
	Expression Expression
}

// Assign creates a variable assignment.
func Assign(name string, expr Expression) *VariableAssignment {
	return &VariableAssignment{Name: name, Expression: expr}
}

func (a *VariableAssignment) Children() []Node { return []Node{a.Expression} }
func (a *VariableAssignment) String() string {
	return "VariableAssignment(" + a.Name + ")"
}
func (*VariableAssignment) statement() {}

// VariableReference names a variable. It never owns a value itself; values
// are found by scoped lookup.
type VariableReference struct {
	diagnostic
	Name string
}

// Ref creates a variable reference.
func Ref(name string) *VariableReference { return &VariableReference{Name: name} }

func (*VariableReference) Children() []Node  { return nil }
func (r *VariableReference) String() string { return "VariableReference(" + r.Name + ")" }
func (*VariableReference) expression()       {}

// --- Conditionals ----------------------------------------------------------

// IfClause is a conditional part of a body. Its Body applies if the
// condition holds, otherwise the body of Else (if present).
type IfClause struct {
	diagnostic
	Condition Expression
	Body      []Statement
	Else      *ElseClause // optional
}

// ElseClause is the alternative branch of an if-clause.
type ElseClause struct {
	diagnostic
	Body []Statement
}

// If creates an if-clause without an else branch.
func If(cond Expression, body ...Statement) *IfClause {
	return &IfClause{Condition: cond, Body: body}
}

// Otherwise attaches an else branch to an if-clause.
// It returns the if-clause to allow for chaining.
func (c *IfClause) Otherwise(body ...Statement) *IfClause {
	c.Else = &ElseClause{Body: body}
	return c
}

func (c *IfClause) Children() []Node {
	children := append([]Node{c.Condition}, statements(c.Body)...)
	if c.Else != nil {
		children = append(children, c.Else)
	}
	return children
}

func (c *IfClause) String() string { return "IfClause" }
func (*IfClause) statement()       {}

func (e *ElseClause) Children() []Node { return statements(e.Body) }
func (e *ElseClause) String() string   { return "ElseClause" }

// ---------------------------------------------------------------------------

func statements(body []Statement) []Node {
	if len(body) == 0 {
		return nil
	}
	nodes := make([]Node, len(body))
	for i, st := range body {
		nodes[i] = st
	}
	return nodes
}

// Check interface assignability.
var (
	_ Statement  = &Stylerule{}
	_ Statement  = &Declaration{}
	_ Statement  = &VariableAssignment{}
	_ Statement  = &IfClause{}
	_ Expression = &VariableReference{}
	_ Expression = &Operation{}
	_ Selector   = &TagSelector{}
	_ Selector   = &ClassSelector{}
	_ Selector   = &IdSelector{}
	_ Node       = &ElseClause{}
	_ Node       = &PropertyName{}
	_ Node       = &Stylesheet{}
)
