/*
Package astyaml decodes ICSS syntax trees from YAML.

Parsers outside of this module hand over trees in a small YAML format, one
mapping per node. A stylesheet is a sequence of statements:

    - var: ParWidth
      value: {px: 500}
    - rule: [p, .menu, "#main"]
      body:
        - decl: width
          value: {mul: [{scalar: 2}, {ref: ParWidth}]}
        - if: {ref: AdjustColor}
          then:
            - decl: color
              value: {color: "#124532"}
          else:
            - decl: color
              value: {color: "#000000"}

Expressions are single-key mappings: px, percent, scalar, color, bool and
ref for literals and variable references, add, sub and mul (with a sequence
of two operands) for operations. Selectors starting with '.' are class
selectors, with '#' id selectors, all others tag selectors.

The decoder drives an ast.Builder, so trees are assembled the same way a
parser's tree walk would assemble them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'icss.astyaml'.
func tracer() tracing.Trace {
	return tracing.Select("icss.astyaml")
}

// ErrSyntax is wrapped by all errors about the structure of the YAML input.
var ErrSyntax = errors.New("invalid tree description")

// Decode reads a YAML tree description and builds a syntax tree from it.
// An empty document yields an empty stylesheet.
func Decode(r io.Reader) (*ast.Stylesheet, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ast.Sheet(), nil
		}
		return nil, err
	}
	d := &decoder{b: ast.NewBuilder()}
	d.b.Enter(ast.Sheet())
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if !(root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		if err := d.statements(root); err != nil {
			return nil, err
		}
	}
	if err := d.b.Leave(); err != nil {
		return nil, err
	}
	return d.b.Stylesheet()
}

// Unmarshal builds a syntax tree from a YAML tree description.
func Unmarshal(data []byte) (*ast.Stylesheet, error) {
	return Decode(bytes.NewReader(data))
}

type decoder struct {
	b *ast.Builder
}

func syntaxError(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, n.Line, fmt.Sprintf(format, args...))
}

func (d *decoder) statements(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return syntaxError(n, "expected a sequence of statements")
	}
	for _, st := range n.Content {
		if err := d.statement(st); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) statement(n *yaml.Node) error {
	fields, err := mapping(n)
	if err != nil {
		return err
	}
	switch {
	case fields["rule"] != nil:
		return d.rule(n, fields)
	case fields["decl"] != nil:
		return d.declaration(n, fields)
	case fields["var"] != nil:
		return d.assignment(n, fields)
	case fields["if"] != nil:
		return d.ifClause(n, fields)
	}
	return syntaxError(n, "unknown statement with keys %s", keys(fields))
}

func (d *decoder) rule(n *yaml.Node, fields map[string]*yaml.Node) error {
	d.b.Enter(ast.Rule())
	sels := fields["rule"]
	if sels.Kind == yaml.ScalarNode {
		sels = &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{sels}}
	}
	if sels.Kind != yaml.SequenceNode || len(sels.Content) == 0 {
		return syntaxError(n, "rule needs a list of selectors")
	}
	for _, s := range sels.Content {
		if s.Kind != yaml.ScalarNode || s.Value == "" {
			return syntaxError(s, "selector must be a non-empty string")
		}
		if err := d.b.Add(selector(s.Value)); err != nil {
			return err
		}
	}
	if body := fields["body"]; body != nil {
		if err := d.statements(body); err != nil {
			return err
		}
	}
	return d.b.Leave()
}

func selector(s string) ast.Selector {
	switch {
	case strings.HasPrefix(s, "."):
		return ast.Class(s)
	case strings.HasPrefix(s, "#"):
		return ast.ID(s)
	}
	return ast.Tag(s)
}

func (d *decoder) declaration(n *yaml.Node, fields map[string]*yaml.Node) error {
	name, err := scalar(fields["decl"])
	if err != nil {
		return err
	}
	if fields["value"] == nil {
		return syntaxError(n, "declaration of %s without value", name)
	}
	d.b.Enter(&ast.Declaration{})
	if err = d.b.Add(&ast.PropertyName{Name: name}); err != nil {
		return err
	}
	if err = d.expression(fields["value"]); err != nil {
		return err
	}
	return d.b.Leave()
}

func (d *decoder) assignment(n *yaml.Node, fields map[string]*yaml.Node) error {
	name, err := scalar(fields["var"])
	if err != nil {
		return err
	}
	if name == "" || fields["value"] == nil {
		return syntaxError(n, "variable assignment needs a name and a value")
	}
	d.b.Enter(&ast.VariableAssignment{})
	if err = d.b.Add(ast.Ref(name)); err != nil {
		return err
	}
	if err = d.expression(fields["value"]); err != nil {
		return err
	}
	return d.b.Leave()
}

func (d *decoder) ifClause(n *yaml.Node, fields map[string]*yaml.Node) error {
	d.b.Enter(&ast.IfClause{})
	if err := d.expression(fields["if"]); err != nil {
		return err
	}
	if then := fields["then"]; then != nil {
		if err := d.statements(then); err != nil {
			return err
		}
	}
	if els := fields["else"]; els != nil {
		d.b.Enter(&ast.ElseClause{})
		if err := d.statements(els); err != nil {
			return err
		}
		if err := d.b.Leave(); err != nil {
			return err
		}
	}
	return d.b.Leave()
}

var operators = map[string]ast.Operator{
	"add": ast.OpAdd,
	"sub": ast.OpSubtract,
	"mul": ast.OpMultiply,
}

func (d *decoder) expression(n *yaml.Node) error {
	fields, err := mapping(n)
	if err != nil {
		return err
	}
	if len(fields) != 1 {
		return syntaxError(n, "expression must have exactly one key, has %s", keys(fields))
	}
	for key, v := range fields {
		if op, ok := operators[key]; ok {
			if v.Kind != yaml.SequenceNode || len(v.Content) != 2 {
				return syntaxError(v, "%s needs exactly two operands", key)
			}
			d.b.Enter(&ast.Operation{Op: op})
			for _, operand := range v.Content {
				if err = d.expression(operand); err != nil {
					return err
				}
			}
			return d.b.Leave()
		}
		lit, err := literal(key, v)
		if err != nil {
			return err
		}
		return d.b.Add(lit)
	}
	return nil // not reached
}

func literal(key string, v *yaml.Node) (ast.Expression, error) {
	var err error
	var n int
	var b bool
	var s string
	switch key {
	case "px":
		if err = v.Decode(&n); err == nil {
			return ast.Pixel(n), nil
		}
	case "percent":
		if err = v.Decode(&n); err == nil {
			return ast.Percentage(n), nil
		}
	case "scalar":
		if err = v.Decode(&n); err == nil {
			return ast.Scalar(n), nil
		}
	case "bool":
		if err = v.Decode(&b); err == nil {
			return ast.Bool(b), nil
		}
	case "color":
		if s, err = scalar(v); err == nil {
			return ast.Color(s), nil
		}
	case "ref":
		if s, err = scalar(v); err == nil {
			return ast.Ref(s), nil
		}
	default:
		return nil, syntaxError(v, "unknown expression %q", key)
	}
	tracer().Debugf("cannot decode %s literal: %v", key, err)
	return nil, syntaxError(v, "invalid %s value %q", key, v.Value)
}

func mapping(n *yaml.Node) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, syntaxError(n, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = n.Content[i+1]
	}
	return fields, nil
}

func scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", syntaxError(n, "expected a string")
	}
	return n.Value, nil
}

func keys(fields map[string]*yaml.Node) string {
	ks := make([]string, 0, len(fields))
	for k := range fields {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return "[" + strings.Join(ks, " ") + "]"
}
