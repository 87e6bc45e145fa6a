package checker

import (
	"errors"
	"fmt"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/scope"
)

// ErrNoStylesheet is returned when checking a nil tree.
var ErrNoStylesheet = errors.New("no stylesheet to check")

var properties = map[string]bool{
	"width":            true,
	"height":           true,
	"color":            true,
	"background-color": true,
}

// IsProperty is true if name is one of the property names ICSS knows:
// width, height, color and background-color.
func IsProperty(name string) bool {
	return properties[name]
}

// Check validates a syntax tree and attaches an error to every node with a
// defect. Errors from previous runs are cleared first, which makes checking
// idempotent.
//
// Check returns nil for a valid tree, otherwise the collected errors of type
// Errors.
func Check(sheet *ast.Stylesheet) error {
	if sheet == nil {
		return ErrNoStylesheet
	}
	ast.ClearErrors(sheet)
	c := &checker{types: scope.NewChain[ast.ExpressionType]()}
	c.check(sheet)
	if errs := ast.Errors(sheet); len(errs) > 0 {
		tracer().Infof("check: found %d errors", len(errs))
		return Errors(errs)
	}
	return nil
}

type checker struct {
	types *TypeScopes
	rules int // number of enclosing style rules
}

func (c *checker) check(n ast.Node) {
	switch n := n.(type) {
	case *ast.Stylesheet:
		c.types.Push()
		c.checkBody(n.Body)
		c.types.Pop()
	case *ast.Stylerule:
		if c.rules > 0 {
			c.fail(n, errorf(NestedRule, "style rule %s nested within another rule", n))
		}
		c.rules++
		defer func() { c.rules-- }()
		c.types.Push()
		for _, sel := range n.Selectors {
			c.check(sel)
		}
		c.checkBody(n.Body)
		c.types.Pop()
	case *ast.Declaration:
		c.check(n.Property)
		c.check(n.Expression)
	case *ast.PropertyName:
		if !IsProperty(n.Name) {
			c.fail(n, errorf(UnknownProperty, "unknown property `%s`", n.Name))
		}
	case *ast.VariableAssignment:
		c.checkAssignment(n)
	case *ast.VariableReference:
		if c.types.Lookup(n.Name).IsNothing() {
			c.fail(n, errorf(UndeclaredVariable, "variable `%s` not declared", n.Name))
		}
	case *ast.Operation:
		c.check(n.Lhs)
		c.check(n.Rhs)
		c.checkOperation(n)
	case *ast.IfClause:
		c.check(n.Condition) // within the enclosing scope
		c.checkCondition(n)
		c.types.Push()
		c.checkBody(n.Body)
		c.types.Pop()
		if n.Else != nil {
			c.check(n.Else)
		}
	case *ast.ElseClause:
		c.types.Push()
		c.checkBody(n.Body)
		c.types.Pop()
	case *ast.TagSelector, *ast.ClassSelector, *ast.IdSelector:
	case ast.Literal:
	default:
		panic(fmt.Sprintf("icss.checker: unknown node type %T", n))
	}
}

func (c *checker) checkBody(body []ast.Statement) {
	for _, st := range body {
		c.check(st)
	}
}

func (c *checker) checkAssignment(a *ast.VariableAssignment) {
	typ := ResolveType(a.Expression, c.types).WithDefault(ast.TypeUndefined)
	c.check(a.Expression)
	if c.types.DeclaredLocally(a.Name) {
		c.fail(a, errorf(DuplicateDeclarationInScope,
			"variable `%s` already declared within scope", a.Name))
		return
	}
	c.types.Declare(a.Name, typ)
}

// checkOperation applies the typing rules for arithmetic. Operands of
// unknown type have been reported by other rules and are skipped.
func (c *checker) checkOperation(op *ast.Operation) {
	lt := ResolveType(op.Lhs, c.types).WithDefault(ast.TypeUndefined)
	rt := ResolveType(op.Rhs, c.types).WithDefault(ast.TypeUndefined)
	if lt == ast.TypeUndefined || rt == ast.TypeUndefined {
		return
	}
	switch {
	case lt == ast.TypeColor || rt == ast.TypeColor:
		c.fail(op, errorf(IllegalOperandType, "operations with colors are not allowed"))
	case lt == ast.TypeBool || rt == ast.TypeBool:
		c.fail(op, errorf(IllegalOperandType, "operations with booleans are not allowed"))
	case op.Op == ast.OpMultiply:
		if lt != ast.TypeScalar && rt != ast.TypeScalar {
			c.fail(op, errorf(MissingScalarInMultiply,
				"multiply operations should contain at least one scalar"))
		}
	case lt != rt:
		c.fail(op, errorf(TypeMismatchInOperation, "operation between different types"))
	}
}

// checkCondition requires the condition of an if-clause to be a boolean
// literal or a reference to a boolean variable. An undeclared reference has
// already been reported on the reference itself.
func (c *checker) checkCondition(clause *ast.IfClause) {
	switch cond := clause.Condition.(type) {
	case *ast.BoolLiteral:
	case *ast.VariableReference:
		typ, found := c.types.Lookup(cond.Name).Get()
		if found && typ != ast.TypeBool && typ != ast.TypeUndefined {
			c.fail(clause, errorf(NonBooleanCondition, "variable `%s` is not a boolean", cond.Name))
		}
	default:
		c.fail(clause, errorf(NonBooleanCondition, "conditional expression is not a boolean"))
	}
}

func (c *checker) fail(n ast.Node, err *Error) {
	tracer().Infof("check: %v: %s", n, err)
	n.SetErr(err)
}
