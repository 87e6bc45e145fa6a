/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by github.com/aymerick/douceur, which lets
clients inspect CSS text, e.g. the output of package generator, through
the same interfaces as reduced ICSS trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/icss/cssom"
	"github.com/npillmayer/icss/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("icss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text with douceur and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("douceur cannot parse stylesheet: %v", err)
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Rules returns all the qualified rules of a stylesheet. At-rules are
// skipped, as ICSS does not produce them.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rule := &Rule{selector: r.Prelude}
		if len(r.Selectors) > 0 {
			rule.selector = strings.Join(r.Selectors, ", ")
		}
		for _, d := range r.Declarations {
			rule.props.Set(d.Property, style.Property(d.Value))
		}
		rules = append(rules, rule)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule. Properties declared more
// than once within a rule report their last value.
type Rule struct {
	selector string
	props    style.PropertyMap
}

// Selector returns the prelude / selectors of the rule.
func (r *Rule) Selector() string {
	return r.selector
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r *Rule) Properties() []string {
	return r.props.Keys()
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r *Rule) Value(key string) style.Property {
	p, _ := r.props.Get(key)
	return p
}

var _ cssom.Rule = &Rule{}
