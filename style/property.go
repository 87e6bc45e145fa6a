package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: #ff0000
//
// a property value of "#ff0000" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Color converts a hex color notation (#rgb or #rrggbb) to a color value.
func (p Property) Color() (color.Color, error) {
	s := strings.TrimPrefix(strings.ToLower(string(p)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 || !strings.HasPrefix(string(p), "#") {
		return nil, fmt.Errorf("not a hex color: %q", string(p))
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("not a hex color: %q", string(p))
	}
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}, nil
}

// --- Property maps ---------------------------------------------------------

// PropertyMap holds the properties of a style rule in declaration order.
// Setting a property again replaces its value but keeps its position, as a
// later CSS declaration overrides an earlier one.
type PropertyMap struct {
	keys   []string
	values map[string]Property
}

// Set a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, p Property) {
	if pmap.values == nil {
		pmap.values = make(map[string]Property)
	}
	if _, exists := pmap.values[key]; !exists {
		pmap.keys = append(pmap.keys, key)
	}
	pmap.values[key] = p
}

// Get a property's value.
func (pmap *PropertyMap) Get(key string) (Property, bool) {
	if pmap == nil || pmap.values == nil {
		return NullStyle, false
	}
	p, ok := pmap.values[key]
	return p, ok
}

// Keys returns the property keys in order of their first declaration.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	return append([]string(nil), pmap.keys...)
}

// Properties returns all properties in order of their first declaration.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap == nil {
		return nil
	}
	r := make([]KeyValue, len(pmap.keys))
	for i, k := range pmap.keys {
		r[i] = KeyValue{k, pmap.values[k]}
	}
	return r
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	for _, kv := range pmap.Properties() {
		fmt.Fprintf(&b, "%s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}
