package ast

import "fmt"

// ExpressionType is the static type of an expression.
type ExpressionType uint8

// Expression types. TypeUndefined is used for expressions whose type could
// not be determined, e.g. references to undeclared variables.
const (
	TypeUndefined ExpressionType = iota
	TypePixel
	TypePercentage
	TypeColor
	TypeScalar
	TypeBool
)

var typeNames = [...]string{"undefined", "pixel", "percentage", "color", "scalar", "bool"}

func (t ExpressionType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("ExpressionType(%d)", t)
}

// --- Literals --------------------------------------------------------------

// PixelLiteral is a length in pixels, e.g. 10px.
type PixelLiteral struct {
	diagnostic
	Value int
}

// PercentageLiteral is a relative length, e.g. 50%.
type PercentageLiteral struct {
	diagnostic
	Value int
}

// ColorLiteral holds a color in its source notation, e.g. #ff0000.
type ColorLiteral struct {
	diagnostic
	Value string
}

// ScalarLiteral is a dimensionless integer.
type ScalarLiteral struct {
	diagnostic
	Value int
}

// BoolLiteral is TRUE or FALSE.
type BoolLiteral struct {
	diagnostic
	Value bool
}

// Pixel creates a pixel literal.
func Pixel(n int) *PixelLiteral { return &PixelLiteral{Value: n} }

// Percentage creates a percentage literal.
func Percentage(n int) *PercentageLiteral { return &PercentageLiteral{Value: n} }

// Color creates a color literal.
func Color(hex string) *ColorLiteral { return &ColorLiteral{Value: hex} }

// Scalar creates a scalar literal.
func Scalar(n int) *ScalarLiteral { return &ScalarLiteral{Value: n} }

// Bool creates a boolean literal.
func Bool(b bool) *BoolLiteral { return &BoolLiteral{Value: b} }

func (*PixelLiteral) Type() ExpressionType      { return TypePixel }
func (*PercentageLiteral) Type() ExpressionType { return TypePercentage }
func (*ColorLiteral) Type() ExpressionType      { return TypeColor }
func (*ScalarLiteral) Type() ExpressionType     { return TypeScalar }
func (*BoolLiteral) Type() ExpressionType       { return TypeBool }

func (*PixelLiteral) Children() []Node      { return nil }
func (*PercentageLiteral) Children() []Node { return nil }
func (*ColorLiteral) Children() []Node      { return nil }
func (*ScalarLiteral) Children() []Node     { return nil }
func (*BoolLiteral) Children() []Node       { return nil }

func (l *PixelLiteral) String() string      { return fmt.Sprintf("Pixel(%d)", l.Value) }
func (l *PercentageLiteral) String() string { return fmt.Sprintf("Percentage(%d)", l.Value) }
func (l *ColorLiteral) String() string      { return fmt.Sprintf("Color(%s)", l.Value) }
func (l *ScalarLiteral) String() string     { return fmt.Sprintf("Scalar(%d)", l.Value) }
func (l *BoolLiteral) String() string       { return fmt.Sprintf("Bool(%t)", l.Value) }

func (*PixelLiteral) expression()      {}
func (*PercentageLiteral) expression() {}
func (*ColorLiteral) expression()      {}
func (*ScalarLiteral) expression()     {}
func (*BoolLiteral) expression()       {}
func (*PixelLiteral) literal()         {}
func (*PercentageLiteral) literal()    {}
func (*ColorLiteral) literal()         {}
func (*ScalarLiteral) literal()        {}
func (*BoolLiteral) literal()          {}

// --- Operations ------------------------------------------------------------

// Operator is the kind of an arithmetic operation.
type Operator uint8

// Arithmetic operators.
const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	}
	return fmt.Sprintf("Operator(%d)", op)
}

// Operation is a binary arithmetic expression. It owns both operands.
type Operation struct {
	diagnostic
	Op  Operator
	Lhs Expression
	Rhs Expression
}

// Add creates an addition lhs + rhs.
func Add(lhs, rhs Expression) *Operation {
	return &Operation{Op: OpAdd, Lhs: lhs, Rhs: rhs}
}

// Subtract creates a subtraction lhs - rhs.
func Subtract(lhs, rhs Expression) *Operation {
	return &Operation{Op: OpSubtract, Lhs: lhs, Rhs: rhs}
}

// Multiply creates a multiplication lhs * rhs.
func Multiply(lhs, rhs Expression) *Operation {
	return &Operation{Op: OpMultiply, Lhs: lhs, Rhs: rhs}
}

func (o *Operation) Children() []Node { return []Node{o.Lhs, o.Rhs} }
func (o *Operation) String() string   { return fmt.Sprintf("Operation(%s)", o.Op) }
func (*Operation) expression()        {}

var (
	_ Literal = &PixelLiteral{}
	_ Literal = &PercentageLiteral{}
	_ Literal = &ColorLiteral{}
	_ Literal = &ScalarLiteral{}
	_ Literal = &BoolLiteral{}
)
