package icss

import (
	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/checker"
	"github.com/npillmayer/icss/cssom"
	"github.com/npillmayer/icss/generator"
	"github.com/npillmayer/icss/transform"
)

// Reduce checks a syntax tree and, if it is free of errors, evaluates it in
// place. If checking fails, the returned error is of type checker.Errors
// and holds every defect found; the tree is left unevaluated.
func Reduce(sheet *ast.Stylesheet) error {
	if err := checker.Check(sheet); err != nil {
		return err
	}
	tracer().Debugf("tree checked, evaluating")
	return transform.Evaluate(sheet)
}

// Compile reduces a syntax tree and renders it as CSS.
func Compile(sheet *ast.Stylesheet) (string, error) {
	if err := Reduce(sheet); err != nil {
		return "", err
	}
	return generator.String(sheet)
}

// Styles reduces a syntax tree and returns the resulting styles as a CSSOM.
func Styles(sheet *ast.Stylesheet) (cssom.StyleSheet, error) {
	if err := Reduce(sheet); err != nil {
		return nil, err
	}
	return cssom.FromAST(sheet)
}
