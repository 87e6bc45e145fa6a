package checker

import (
	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/maybe"
	"github.com/npillmayer/icss/scope"
)

// TypeScopes is a chain of scopes binding variable names to static types.
type TypeScopes = scope.Chain[ast.ExpressionType]

// ResolveType computes the static type of an expression, looking up
// variables in a chain of type scopes.
//
// ResolveType does not report errors. If the type cannot be determined,
// because a referenced variable is not declared or a multiplication has no
// scalar operand, the result is Nothing. An addition or subtraction has the
// type of its left operand; whether both operands agree is up to the caller.
func ResolveType(expr ast.Expression, types *TypeScopes) maybe.Maybe[ast.ExpressionType] {
	switch e := expr.(type) {
	case ast.Literal:
		return maybe.Just(e.Type())
	case *ast.VariableReference:
		return types.Lookup(e.Name)
	case *ast.Operation:
		var lt, rt ast.ExpressionType
		var ok bool
		if lt, ok = ResolveType(e.Lhs, types).Get(); !ok {
			return maybe.Nothing[ast.ExpressionType]()
		}
		if rt, ok = ResolveType(e.Rhs, types).Get(); !ok {
			return maybe.Nothing[ast.ExpressionType]()
		}
		return operationType(e.Op, lt, rt)
	case nil:
		return maybe.Nothing[ast.ExpressionType]()
	}
	panic("icss.checker: unknown expression type")
}

func operationType(op ast.Operator, lt, rt ast.ExpressionType) maybe.Maybe[ast.ExpressionType] {
	switch op {
	case ast.OpAdd, ast.OpSubtract:
		return maybe.Just(lt)
	case ast.OpMultiply:
		switch {
		case lt == ast.TypeScalar:
			return maybe.Just(rt)
		case rt == ast.TypeScalar:
			return maybe.Just(lt)
		}
		return maybe.Nothing[ast.ExpressionType]()
	}
	panic("icss.checker: unknown operator " + op.String())
}
