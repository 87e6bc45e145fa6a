/*
Package style provides typed access to the values of generated CSS.

Evaluated ICSS contains three kinds of values: pixel lengths, percentages
and colors. Consumers of the generated styles receive raw property values
(type Property) and convert them with the helpers of this package:
dimensions become DimenT option values built on tyse's dimen.DU and
percent.Percent, colors become image/color values.

Status

Only the value kinds ICSS produces are supported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'icss.style'.
func tracer() tracing.Trace {
	return tracing.Select("icss.style")
}
