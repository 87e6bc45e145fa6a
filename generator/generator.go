/*
Package generator renders reduced ICSS syntax trees as CSS.

Generate expects a tree as produced by package transform: style rules at
top level, containing declarations with literal values only. Pixel values
render as "<n>px", percentages as "<n>%", colors in their source notation.
Scalars and booleans have no CSS rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generator

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.generator'.
func tracer() tracing.Trace {
	return tracing.Select("icss.generator")
}

// ErrNotRenderable is returned for nodes which have no CSS representation,
// i.e. nodes which should have been removed by evaluation.
var ErrNotRenderable = errors.New("node cannot be rendered")

// Indent is the indentation of declarations within a rule block.
const Indent = "  "

// Generate writes the CSS for a reduced stylesheet to w. Rules are separated
// by an empty line.
func Generate(w io.Writer, sheet *ast.Stylesheet) error {
	p := &printer{w: w}
	for i, st := range sheet.Body {
		rule, ok := st.(*ast.Stylerule)
		if !ok {
			return fmt.Errorf("%w: %v at top level", ErrNotRenderable, st)
		}
		if i > 0 {
			p.print("\n")
		}
		if err := p.rule(rule); err != nil {
			return err
		}
	}
	tracer().Debugf("generated %d rules", len(sheet.Body))
	return p.err
}

// String renders a reduced stylesheet to a string.
func String(sheet *ast.Stylesheet) (string, error) {
	var b strings.Builder
	if err := Generate(&b, sheet); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Literal returns the CSS notation of a literal value.
func Literal(lit ast.Literal) (string, error) {
	switch l := lit.(type) {
	case *ast.PixelLiteral:
		return strconv.Itoa(l.Value) + "px", nil
	case *ast.PercentageLiteral:
		return strconv.Itoa(l.Value) + "%", nil
	case *ast.ColorLiteral:
		return l.Value, nil
	}
	return "", fmt.Errorf("%w: %v is not a CSS value", ErrNotRenderable, lit)
}

// Selectors returns the selector list of a rule, separated by commas.
func Selectors(rule *ast.Stylerule) string {
	sels := make([]string, len(rule.Selectors))
	for i, sel := range rule.Selectors {
		sels[i] = ast.SelectorText(sel)
	}
	return strings.Join(sels, ", ")
}

// printer keeps the first write error and ignores subsequent writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) rule(rule *ast.Stylerule) error {
	p.print(Selectors(rule))
	p.print(" {\n")
	for _, st := range rule.Body {
		decl, ok := st.(*ast.Declaration)
		if !ok {
			return fmt.Errorf("%w: %v within %v", ErrNotRenderable, st, rule)
		}
		lit, ok := decl.Expression.(ast.Literal)
		if !ok {
			return fmt.Errorf("%w: unreduced value %v of %s", ErrNotRenderable,
				decl.Expression, decl.Property.Name)
		}
		value, err := Literal(lit)
		if err != nil {
			return err
		}
		p.print(Indent + decl.Property.Name + ": " + value + ";\n")
	}
	p.print("}\n")
	return p.err
}
