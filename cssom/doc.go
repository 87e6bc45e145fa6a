/*
Package cssom provides a uniform view of generated stylesheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Clients of
ICSS may want to inspect the styles a stylesheet compiles to, either from
the reduced syntax tree directly or from CSS text parsed by some other
library. Both are de-coupled by interfaces StyleSheet and Rule.
FromAST wraps a reduced ICSS tree; package douceuradapter wraps CSS parsed
with github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'icss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("icss.cssom")
}
