package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/icss/ast"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenPercent  uint32 = 0x0900
)

// DimenT is an option type for CSS dimensions: either a fixed length or a
// percentage relative to some enclosing length.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= None
	| JustDimen dimen
	| Percentage Percent
*/

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// Pixels converts a length in CSS pixels to design units.
// CSS defines 1px as 3/4 of a point.
func Pixels(n int) dimen.DU {
	return dimen.DU(n) * 3 * dimen.PT / 4
}

// IsNone is true for the zero value, which is neither a length nor a
// percentage.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.flags&dimenPercent == dimenPercent:
		return fmt.Sprintf("%v", d.percent)
	case d.flags&dimenAbsolute > 0:
		return fmt.Sprintf("%v", d.d)
	}
	return "none"
}

// DimenFromLiteral converts a pixel or percentage literal to a dimension.
// Other literals yield false.
func DimenFromLiteral(lit ast.Literal) (DimenT, bool) {
	switch l := lit.(type) {
	case *ast.PixelLiteral:
		return JustDimen(Pixels(l.Value)), true
	case *ast.PercentageLiteral:
		return Percentage(percent.FromInt(l.Value)), true
	}
	return DimenT{}, false
}

// ParseDimen converts a property value of the form "<n>px" or "<n>%" to a
// dimension.
func ParseDimen(p Property) (DimenT, error) {
	s := strings.TrimSpace(string(p))
	var unit string
	switch {
	case strings.HasSuffix(s, "px"):
		unit = "px"
	case strings.HasSuffix(s, "%"):
		unit = "%"
	default:
		return DimenT{}, fmt.Errorf("not a dimension: %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, unit))
	if err != nil {
		return DimenT{}, fmt.Errorf("not a dimension: %q", s)
	}
	tracer().Debugf("dimension %q = %d%s", s, n, unit)
	if unit == "%" {
		return Percentage(percent.FromInt(n)), nil
	}
	return JustDimen(Pixels(n)), nil
}

// ---------------------------------------------------------------------------

// Match returns a matcher for use in a switch statement:
//
//     var du dimen.DU
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     case m.Percentage(nil):
//         …
//     }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches the cases of a DimenT.
type Matcher struct {
	dimen DimenT
}

// Just matches fixed lengths and extracts the length into du, if non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts the value into p, if non-nil.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
