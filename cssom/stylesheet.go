package cssom

import (
	"fmt"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/icss/generator"
	"github.com/npillmayer/icss/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "width"
	Value(string) style.Property // property value for key, e.g. "15px"
}

// FromAST wraps a reduced syntax tree, as produced by package transform,
// into a StyleSheet. Values are rendered the way package generator renders
// them.
func FromAST(sheet *ast.Stylesheet) (StyleSheet, error) {
	s := &astSheet{}
	for _, st := range sheet.Body {
		rule, ok := st.(*ast.Stylerule)
		if !ok {
			return nil, fmt.Errorf("%w: %v at top level", generator.ErrNotRenderable, st)
		}
		r := astRule{selector: generator.Selectors(rule)}
		for _, bst := range rule.Body {
			decl, ok := bst.(*ast.Declaration)
			if !ok {
				return nil, fmt.Errorf("%w: %v within %v", generator.ErrNotRenderable, bst, rule)
			}
			lit, ok := decl.Expression.(ast.Literal)
			if !ok {
				return nil, fmt.Errorf("%w: unreduced value of %s", generator.ErrNotRenderable, decl.Property.Name)
			}
			value, err := generator.Literal(lit)
			if err != nil {
				return nil, err
			}
			r.props.Set(decl.Property.Name, style.Property(value))
		}
		s.rules = append(s.rules, r)
	}
	tracer().Debugf("cssom: wrapped %d rules", len(s.rules))
	return s, nil
}

type astSheet struct {
	rules []astRule
}

func (s *astSheet) Empty() bool {
	return len(s.rules) == 0
}

func (s *astSheet) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	for i := range s.rules {
		rules[i] = &s.rules[i]
	}
	return rules
}

type astRule struct {
	selector string
	props    style.PropertyMap
}

func (r *astRule) Selector() string     { return r.selector }
func (r *astRule) Properties() []string { return r.props.Keys() }

func (r *astRule) Value(key string) style.Property {
	p, _ := r.props.Get(key)
	return p
}

var _ StyleSheet = &astSheet{}
var _ Rule = &astRule{}

// Dimension returns the value of a property of a rule as a dimension.
func Dimension(r Rule, key string) (style.DimenT, error) {
	p := r.Value(key)
	if p.IsEmpty() {
		return style.DimenT{}, fmt.Errorf("property %s not set for %s", key, r.Selector())
	}
	return style.ParseDimen(p)
}

// Equal is true if two stylesheets contain the same rules with the same
// properties, in the same order.
func Equal(a, b StyleSheet) bool {
	ra, rb := a.Rules(), b.Rules()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i].Selector() != rb[i].Selector() {
			return false
		}
		pa, pb := ra[i].Properties(), rb[i].Properties()
		if len(pa) != len(pb) {
			return false
		}
		for j, key := range pa {
			if pb[j] != key || ra[i].Value(key) != rb[i].Value(key) {
				return false
			}
		}
	}
	return true
}
