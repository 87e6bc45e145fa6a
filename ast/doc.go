/*
Package ast implements the syntax tree of ICSS, a small CSS-like styling
language with variables, arithmetic expressions and if/else rule bodies.

Trees are built by an external parser (see type Builder for the boundary),
then annotated by package checker and reduced in place by package transform.
After reduction, only stylesheets, style rules, selectors, declarations,
property names and literals remain.

Node kinds form a closed set. Every pass switches over the concrete node
types exhaustively and panics on a kind it does not know.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.ast'.
func tracer() tracing.Trace {
	return tracing.Select("icss.ast")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("icss.ast: "+msg, msgargs...)
		panic(msg)
	}
}
