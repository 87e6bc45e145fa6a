/*
Package checker implements static checking of ICSS syntax trees.

Check walks a tree depth-first, keeping a chain of scopes which bind
variable names to static types. Stylesheets, style rules, if-clauses and
else-clauses open a scope each. Defects are attached to the offending node
and checking continues, so one run reports every independent defect of a
tree. A tree without errors is safe to hand to package transform.

ResolveType computes the static type of an expression for a given chain
of scopes and is shared by the checking rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package checker

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.checker'.
func tracer() tracing.Trace {
	return tracing.Select("icss.checker")
}
