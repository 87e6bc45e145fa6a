package checker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/icss/ast"
)

// Kind classifies checking errors.
type Kind uint8

// Kinds of defects the checker reports.
const (
	UnknownProperty Kind = iota + 1
	UndeclaredVariable
	DuplicateDeclarationInScope
	TypeMismatchInOperation
	IllegalOperandType // color or bool operand in arithmetic
	MissingScalarInMultiply
	NonBooleanCondition
	NestedRule
)

var kindNames = map[Kind]string{
	UnknownProperty:             "UnknownProperty",
	UndeclaredVariable:          "UndeclaredVariable",
	DuplicateDeclarationInScope: "DuplicateDeclarationInScope",
	TypeMismatchInOperation:     "TypeMismatchInOperation",
	IllegalOperandType:          "IllegalOperandType",
	MissingScalarInMultiply:     "MissingScalarInMultiply",
	NonBooleanCondition:         "NonBooleanCondition",
	NestedRule:                  "NestedRule",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Error is a defect found by the checker. It is attached to the node it
// concerns. Errors of the same kind match with errors.Is, regardless of
// their message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrUnknownProperty             = &Error{Kind: UnknownProperty, Msg: "unknown property"}
	ErrUndeclaredVariable          = &Error{Kind: UndeclaredVariable, Msg: "variable not declared"}
	ErrDuplicateDeclarationInScope = &Error{Kind: DuplicateDeclarationInScope, Msg: "variable already declared within scope"}
	ErrTypeMismatchInOperation     = &Error{Kind: TypeMismatchInOperation, Msg: "operation between different types"}
	ErrIllegalOperandType          = &Error{Kind: IllegalOperandType, Msg: "illegal operand type"}
	ErrMissingScalarInMultiply     = &Error{Kind: MissingScalarInMultiply, Msg: "multiply operations should contain at least one scalar"}
	ErrNonBooleanCondition         = &Error{Kind: NonBooleanCondition, Msg: "conditional expression is not a boolean"}
	ErrNestedRule                  = &Error{Kind: NestedRule, Msg: "style rules cannot be nested"}
)

func errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Errors is the list of errors attached to the nodes of a checked tree, in
// document order.
type Errors []ast.NodeError

func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(errs))
	for _, e := range errs {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Has is true if any of errs matches target in the sense of errors.Is.
func (errs Errors) Has(target error) bool {
	for _, e := range errs {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}
