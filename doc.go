/*
Package icss compiles ICSS, a CSS-like styling language with variables,
arithmetic and conditional rule bodies, to plain CSS.

ICSS adds to CSS

  - variables, assigned at stylesheet level or within rule bodies and
    if/else branches, with lexical scoping,
  - arithmetic on pixels, percentages and scalars (+, -, *),
  - if/else clauses within rule bodies, conditioned on booleans.

Compiling is a pipeline of passes over a syntax tree built by an external
parser (see package ast):

  1. package checker validates the tree and reports every defect at once,
  2. package transform folds expressions and elaborates conditionals,
  3. package generator renders the remaining plain CSS tree.

Compile runs all of them. Evaluation is only attempted on trees the checker
accepts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package icss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss'.
func tracer() tracing.Trace {
	return tracing.Select("icss")
}
