/*
Package transform reduces checked ICSS syntax trees to plain CSS trees.

Evaluate folds every expression to a literal, substituting variables with
the values bound in the innermost declaring scope, and elaborates
if-clauses: an if-clause is replaced, at its position within the parent
body, by the reduced statements of the branch its condition selects. The
other branch is dropped without being evaluated. Variable assignments are
removed once their value is bound.

The result contains only stylesheets, style rules, selectors, declarations,
property names and literals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package transform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.transform'.
func tracer() tracing.Trace {
	return tracing.Select("icss.transform")
}
