package transform

import (
	"errors"
	"testing"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertReduced fails if any node remains which cannot be rendered.
func assertReduced(t *testing.T, sheet *ast.Stylesheet) {
	t.Helper()
	ast.Inspect(sheet, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.VariableAssignment, *ast.VariableReference, *ast.IfClause,
			*ast.ElseClause, *ast.Operation:
			t.Errorf("expected %v to be reduced", n)
		}
		return true
	})
}

func evaluate(t *testing.T, sheet *ast.Stylesheet) {
	t.Helper()
	if err := Evaluate(sheet); err != nil {
		t.Logf("tree =\n%s", ast.Dump(sheet))
		t.Fatalf("evaluation failed: %v", err)
	}
	assertReduced(t, sheet)
}

func TestIfElseSelectsThenBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(ast.Rule(ast.Tag("p")).With(
		ast.If(ast.Bool(true),
			ast.Declare("width", ast.Pixel(10)),
		).Otherwise(
			// would not resolve if it were evaluated
			ast.Declare("width", ast.Ref("Undeclared")),
		),
	))
	evaluate(t, sheet)
	expected := ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.Declare("width", ast.Pixel(10))))
	assert.Equal(t, expected, sheet)
}

func TestIfElseSelectsElseBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(
		ast.Assign("Flag", ast.Bool(false)),
		ast.Rule(ast.Tag("p")).With(
			ast.If(ast.Ref("Flag"),
				ast.Declare("width", ast.Ref("Undeclared")),
			).Otherwise(
				ast.Declare("width", ast.Pixel(20)),
			),
			ast.If(ast.Ref("Flag"), ast.Declare("height", ast.Pixel(1))),
		),
	)
	evaluate(t, sheet)
	expected := ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.Declare("width", ast.Pixel(20))))
	assert.Equal(t, expected, sheet)
}

func TestMultiplyIsCommutative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(ast.Rule(ast.Tag("p")).With(
		ast.Declare("width", ast.Multiply(ast.Pixel(10), ast.Scalar(2))),
		ast.Declare("height", ast.Multiply(ast.Scalar(2), ast.Pixel(10))),
		ast.Declare("width", ast.Multiply(ast.Scalar(3), ast.Percentage(10))),
	))
	evaluate(t, sheet)
	expected := ast.Sheet(ast.Rule(ast.Tag("p")).With(
		ast.Declare("width", ast.Pixel(20)),
		ast.Declare("height", ast.Pixel(20)),
		ast.Declare("width", ast.Percentage(30)),
	))
	assert.Equal(t, expected, sheet)
}

func TestFoldNestedExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	values := &ValueScopes{}
	values.Push()
	values.Declare("w", ast.Pixel(100))
	values.Declare("n", ast.Scalar(3))
	var tests = []struct {
		expr     ast.Expression
		expected ast.Literal
	}{
		{ast.Add(ast.Ref("w"), ast.Pixel(5)), ast.Pixel(105)},
		{ast.Subtract(ast.Ref("w"), ast.Multiply(ast.Ref("n"), ast.Pixel(10))), ast.Pixel(70)},
		{ast.Multiply(ast.Add(ast.Ref("n"), ast.Scalar(1)), ast.Ref("n")), ast.Scalar(12)},
		{ast.Subtract(ast.Percentage(50), ast.Percentage(75)), ast.Percentage(-25)},
		{ast.Ref("n"), ast.Scalar(3)},
		{ast.Color("#00ff00"), ast.Color("#00ff00")},
	}
	for i, test := range tests {
		lit, err := Fold(test.expr, values)
		if err != nil {
			t.Errorf("%d: fold failed: %v", i, err)
			continue
		}
		assert.Equal(t, test.expected, lit, "test %d", i)
	}
}

func TestFoldRejectsIllTypedOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	values := &ValueScopes{}
	values.Push()
	for i, expr := range []ast.Expression{
		ast.Add(ast.Pixel(10), ast.Percentage(10)),
		ast.Multiply(ast.Pixel(10), ast.Pixel(10)),
		ast.Add(ast.Color("#fff"), ast.Scalar(1)),
		ast.Multiply(ast.Bool(true), ast.Scalar(1)),
		ast.Ref("undeclared"),
	} {
		if _, err := Fold(expr, values); !errors.Is(err, ErrInconsistent) {
			t.Errorf("%d: expected %v to be an inconsistency, got %v", i, expr, err)
		}
	}
}

func TestShadowedValueRestored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(
		ast.Assign("w", ast.Pixel(10)),
		ast.Rule(ast.Tag("p")).With(
			ast.Declare("width", ast.Ref("w")),
			ast.If(ast.Bool(true),
				ast.Assign("w", ast.Pixel(20)),
				ast.Declare("width", ast.Ref("w")),
			),
			ast.Declare("height", ast.Ref("w")),
		),
		ast.Rule(ast.Tag("a")).With(
			ast.Assign("w", ast.Add(ast.Ref("w"), ast.Pixel(5))),
			ast.Declare("width", ast.Ref("w")),
		),
		ast.Rule(ast.Tag("b")).With(
			ast.Declare("width", ast.Ref("w")),
		),
	)
	evaluate(t, sheet)
	expected := ast.Sheet(
		ast.Rule(ast.Tag("p")).With(
			ast.Declare("width", ast.Pixel(10)),
			ast.Declare("width", ast.Pixel(20)),
			ast.Declare("height", ast.Pixel(10)),
		),
		ast.Rule(ast.Tag("a")).With(ast.Declare("width", ast.Pixel(15))),
		ast.Rule(ast.Tag("b")).With(ast.Declare("width", ast.Pixel(10))),
	)
	assert.Equal(t, expected, sheet)
}

func TestSplicePreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(
		ast.Assign("On", ast.Bool(true)),
		ast.Rule(ast.Class("box")).With(
			ast.Declare("width", ast.Pixel(1)),
			ast.If(ast.Ref("On"),
				ast.Declare("height", ast.Pixel(2)),
				ast.If(ast.Bool(false),
					ast.Declare("color", ast.Color("#000000")),
				).Otherwise(
					ast.Assign("C", ast.Color("#ffffff")),
					ast.Declare("color", ast.Ref("C")),
					ast.If(ast.Ref("On"), ast.Declare("background-color", ast.Ref("C"))),
				),
				ast.Declare("width", ast.Percentage(3)),
			),
			ast.Declare("height", ast.Percentage(4)),
		),
	)
	evaluate(t, sheet)
	expected := ast.Sheet(ast.Rule(ast.Class("box")).With(
		ast.Declare("width", ast.Pixel(1)),
		ast.Declare("height", ast.Pixel(2)),
		ast.Declare("color", ast.Color("#ffffff")),
		ast.Declare("background-color", ast.Color("#ffffff")),
		ast.Declare("width", ast.Percentage(3)),
		ast.Declare("height", ast.Percentage(4)),
	))
	if !assert.Equal(t, expected, sheet) {
		t.Logf("tree =\n%s", ast.Dump(sheet))
	}
}

func TestTopLevelConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	sheet := ast.Sheet(
		ast.Rule(ast.Tag("a")),
		ast.If(ast.Bool(true),
			ast.Rule(ast.Tag("b")).With(ast.Declare("width", ast.Pixel(1))),
		),
		ast.Rule(ast.Tag("c")),
	)
	evaluate(t, sheet)
	require.Len(t, sheet.Body, 3)
	assert.Equal(t, "Stylerule(b)", sheet.Body[1].String())
}

func TestLiteralTreeIsUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	build := func() *ast.Stylesheet {
		return ast.Sheet(
			ast.Rule(ast.Tag("p"), ast.ID("main")).With(
				ast.Declare("width", ast.Pixel(10)),
				ast.Declare("color", ast.Color("#123456")),
			),
			ast.Rule(ast.Class("menu")).With(ast.Declare("height", ast.Percentage(50))),
		)
	}
	sheet := build()
	decl := sheet.Body[0].(*ast.Stylerule).Body[0].(*ast.Declaration)
	lit := decl.Expression
	evaluate(t, sheet)
	assert.Equal(t, build(), sheet)
	assert.Same(t, lit, decl.Expression)
}

func TestEvaluateRefusesTreesWithErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	decl := ast.Declare("width", ast.Pixel(1))
	decl.SetErr(errors.New("checked with errors"))
	sheet := ast.Sheet(ast.Rule(ast.Tag("p")).With(decl))
	if err := Evaluate(sheet); !errors.Is(err, ErrInconsistent) {
		t.Errorf("expected evaluation of erroneous tree to fail, got %v", err)
	}
}

func TestEvaluateFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.transform")
	defer teardown()
	//
	bad := ast.Add(ast.Pixel(1), ast.Percentage(1))
	sheet := ast.Sheet(ast.Rule(ast.Tag("p")).With(
		ast.Declare("width", bad),
		ast.If(ast.Scalar(1), ast.Declare("height", ast.Pixel(1))),
	))
	err := Evaluate(sheet)
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Error(t, bad.Err())
	//
	clause := ast.If(ast.Scalar(1), ast.Declare("height", ast.Pixel(1)))
	err = Evaluate(ast.Sheet(ast.Rule(ast.Tag("p")).With(clause)))
	require.ErrorIs(t, err, ErrInconsistent)
	assert.Error(t, clause.Err())
}
