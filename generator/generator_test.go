package generator

import (
	"errors"
	"testing"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.generator")
	defer teardown()
	//
	sheet := ast.Sheet(
		ast.Rule(ast.Tag("p"), ast.Class("menu"), ast.ID("main")).With(
			ast.Declare("width", ast.Pixel(500)),
			ast.Declare("height", ast.Percentage(50)),
			ast.Declare("color", ast.Color("#ff0000")),
		),
		ast.Rule(ast.Tag("a")),
		ast.Rule(ast.Tag("b")).With(ast.Declare("width", ast.Pixel(-2))),
	)
	css, err := String(sheet)
	if err != nil {
		t.Fatal(err)
	}
	expected := `p, .menu, #main {
  width: 500px;
  height: 50%;
  color: #ff0000;
}

a {
}

b {
  width: -2px;
}
`
	if css != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, css)
	}
}

func TestGenerateEmpty(t *testing.T) {
	css, err := String(ast.Sheet())
	if err != nil || css != "" {
		t.Errorf("expected empty output for empty sheet, got %q, %v", css, err)
	}
}

func TestNotRenderable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icss.generator")
	defer teardown()
	//
	for i, sheet := range []*ast.Stylesheet{
		ast.Sheet(ast.Assign("x", ast.Pixel(1))),
		ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.Declare("width", ast.Scalar(1)))),
		ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.Declare("width", ast.Bool(true)))),
		ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.Declare("width", ast.Ref("x")))),
		ast.Sheet(ast.Rule(ast.Tag("p")).With(ast.If(ast.Bool(true)))),
	} {
		if _, err := String(sheet); !errors.Is(err, ErrNotRenderable) {
			t.Errorf("%d: expected sheet not to be renderable, got %v", i, err)
		}
	}
}
