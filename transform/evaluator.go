package transform

import (
	"errors"
	"fmt"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/scope"
)

// ErrInconsistent signals a tree which cannot be reduced although it should
// have been, i.e. a tree which has not been checked, or a gap in the
// checker's rules. Evaluation stops at the first such fault.
var ErrInconsistent = errors.New("inconsistent syntax tree")

// ValueScopes is a chain of scopes binding variable names to literal values.
type ValueScopes = scope.Chain[ast.Literal]

// Evaluate reduces a checked tree in place.
//
// The tree must have passed package checker without errors. If Evaluate
// nevertheless meets a construct it cannot reduce, it returns an error
// wrapping ErrInconsistent and leaves the tree partially reduced.
func Evaluate(sheet *ast.Stylesheet) error {
	if sheet == nil {
		return fmt.Errorf("%w: no stylesheet", ErrInconsistent)
	}
	if ast.HasErrors(sheet) {
		return fmt.Errorf("%w: tree carries checking errors", ErrInconsistent)
	}
	ev := &evaluator{values: scope.NewChain[ast.Literal]()}
	ev.values.Push()
	body, err := ev.evalBody(sheet.Body)
	ev.values.Pop()
	if err != nil {
		return err
	}
	sheet.Body = body
	return nil
}

type evaluator struct {
	values *ValueScopes
}

// evalBody reduces a sequence of statements in order. It returns a new
// sequence: assignments are left out, if-clauses are replaced by the
// reduced statements of their active branch, everything else is kept in
// place. Later statements see the bindings of earlier ones.
func (ev *evaluator) evalBody(body []ast.Statement) ([]ast.Statement, error) {
	if len(body) == 0 {
		return body, nil
	}
	reduced := make([]ast.Statement, 0, len(body))
	for _, st := range body {
		switch st := st.(type) {
		case *ast.VariableAssignment:
			value, err := ev.fold(st.Expression)
			if err != nil {
				return nil, err
			}
			ev.values.Declare(st.Name, value)
		case *ast.Declaration:
			value, err := ev.fold(st.Expression)
			if err != nil {
				return nil, err
			}
			st.Expression = value
			reduced = append(reduced, st)
		case *ast.Stylerule:
			ev.values.Push()
			ruleBody, err := ev.evalBody(st.Body)
			ev.values.Pop()
			if err != nil {
				return nil, err
			}
			st.Body = ruleBody
			reduced = append(reduced, st)
		case *ast.IfClause:
			branch, err := ev.elaborate(st)
			if err != nil {
				return nil, err
			}
			tracer().Debugf("eval: splicing %d statements at position %d", len(branch), len(reduced))
			reduced = append(reduced, branch...)
		default:
			panic(fmt.Sprintf("icss.transform: unknown statement type %T", st))
		}
	}
	return reduced, nil
}

// elaborate selects the active branch of an if-clause and reduces it within
// a scope of its own. Nested if-clauses are elaborated on the way, so the
// returned statements are free of conditionals.
func (ev *evaluator) elaborate(clause *ast.IfClause) ([]ast.Statement, error) {
	cond, err := ev.fold(clause.Condition)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*ast.BoolLiteral)
	if !ok {
		err = fmt.Errorf("%w: condition %v is not a boolean", ErrInconsistent, cond)
		clause.SetErr(err)
		return nil, err
	}
	var active []ast.Statement
	if b.Value {
		active = clause.Body
	} else if clause.Else != nil {
		active = clause.Else.Body
	}
	tracer().Debugf("eval: condition is %t, %d statements active", b.Value, len(active))
	ev.values.Push()
	defer ev.values.Pop()
	return ev.evalBody(active)
}
