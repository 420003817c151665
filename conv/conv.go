// File: conv/conv.go

// Package conv turns raw tag values into display values using the
// value mappings carried by the tag tables. Conversion runs after
// storage and has no part in traversal or precedence.
package conv

import (
	"strconv"

	"greg-hacke/go-ifd/tags"
)

// Apply maps a raw value through the tag's enum value map. Values
// without a mapping (or non-enumerable types) pass through unchanged.
func Apply(def tags.TagDef, value interface{}) interface{} {
	if len(def.Values) == 0 {
		return value
	}

	key := ""
	switch v := value.(type) {
	case int:
		key = strconv.Itoa(v)
	case string:
		key = v
	default:
		return value
	}

	if mapped, ok := def.Values[key]; ok {
		return mapped
	}
	return value
}

// Display resolves the display value for a stored tag id in a
// namespace: the enum-mapped form when the table defines one, the raw
// value otherwise.
func Display(namespace string, id uint16, value interface{}) interface{} {
	def, ok := tags.Lookup(namespace, id)
	if !ok {
		return value
	}
	return Apply(def, value)
}
