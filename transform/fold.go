package transform

import (
	"fmt"

	"github.com/npillmayer/icss/ast"
)

// Fold reduces an expression to a single literal, resolving variable
// references with a chain of value scopes. The expression tree is left
// untouched; literals are returned as fresh nodes where they are computed
// or taken from a variable binding.
func Fold(expr ast.Expression, values *ValueScopes) (ast.Literal, error) {
	ev := &evaluator{values: values}
	return ev.fold(expr)
}

func (ev *evaluator) fold(expr ast.Expression) (ast.Literal, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return e, nil
	case *ast.VariableReference:
		value, found := ev.values.Lookup(e.Name).Get()
		if !found {
			return nil, fmt.Errorf("%w: variable %s has no value", ErrInconsistent, e.Name)
		}
		return clone(value), nil
	case *ast.Operation:
		lhs, err := ev.fold(e.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := ev.fold(e.Rhs)
		if err != nil {
			return nil, err
		}
		result, err := arithmetic(e.Op, lhs, rhs)
		if err != nil {
			e.SetErr(err)
			return nil, err
		}
		tracer().Debugf("eval: %v %s %v = %v", lhs, e.Op, rhs, result)
		return result, nil
	case nil:
		return nil, fmt.Errorf("%w: missing expression", ErrInconsistent)
	}
	panic(fmt.Sprintf("icss.transform: unknown expression type %T", expr))
}

// operands is a pair of operand types, used to match the legal
// combinations of an operation.
type operands struct {
	l, r ast.ExpressionType
}

func arithmetic(op ast.Operator, lhs, rhs ast.Literal) (ast.Literal, error) {
	pair := operands{lhs.Type(), rhs.Type()}
	a, b := number(lhs), number(rhs)
	switch op {
	case ast.OpAdd, ast.OpSubtract:
		switch pair {
		case operands{ast.TypePixel, ast.TypePixel},
			operands{ast.TypePercentage, ast.TypePercentage},
			operands{ast.TypeScalar, ast.TypeScalar}:
			if op == ast.OpAdd {
				return literal(pair.l, a+b), nil
			}
			return literal(pair.l, a-b), nil
		}
	case ast.OpMultiply:
		switch pair {
		case operands{ast.TypePixel, ast.TypeScalar},
			operands{ast.TypePercentage, ast.TypeScalar},
			operands{ast.TypeScalar, ast.TypeScalar}:
			return literal(pair.l, a*b), nil
		case operands{ast.TypeScalar, ast.TypePixel},
			operands{ast.TypeScalar, ast.TypePercentage}:
			return literal(pair.r, a*b), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot fold %s %s %s", ErrInconsistent, pair.l, op, pair.r)
}

// number extracts the integer value of a numeric literal, 0 otherwise.
func number(lit ast.Literal) int {
	switch l := lit.(type) {
	case *ast.PixelLiteral:
		return l.Value
	case *ast.PercentageLiteral:
		return l.Value
	case *ast.ScalarLiteral:
		return l.Value
	}
	return 0
}

func literal(typ ast.ExpressionType, n int) ast.Literal {
	switch typ {
	case ast.TypePixel:
		return ast.Pixel(n)
	case ast.TypePercentage:
		return ast.Percentage(n)
	case ast.TypeScalar:
		return ast.Scalar(n)
	}
	panic(fmt.Sprintf("icss.transform: %s is not numeric", typ))
}

func clone(lit ast.Literal) ast.Literal {
	switch l := lit.(type) {
	case *ast.PixelLiteral:
		return ast.Pixel(l.Value)
	case *ast.PercentageLiteral:
		return ast.Percentage(l.Value)
	case *ast.ColorLiteral:
		return ast.Color(l.Value)
	case *ast.ScalarLiteral:
		return ast.Scalar(l.Value)
	case *ast.BoolLiteral:
		return ast.Bool(l.Value)
	}
	panic(fmt.Sprintf("icss.transform: unknown literal type %T", lit))
}
