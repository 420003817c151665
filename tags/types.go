// File: tags/types.go

package tags

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TagTable represents tags from a single ExifTool module/table
type TagTable struct {
	Namespace  string            // Owning namespace, e.g. "EXIF", "GPS", "Canon"
	ModuleName string            // Source module, e.g. "Exif", "GPS", "Canon"
	Tags       map[string]TagDef // Tag ID (hex string) -> definition
}

// TagDef represents a single tag definition
type TagDef struct {
	ID          string            // Tag ID (hex or name)
	Name        string            // Human-readable name
	Description string            // Tag description
	Format      string            // Data format (e.g. "int16u", "string")
	Groups      map[string]string // Group memberships
	Values      map[string]string // Value mappings (enums)
	SubIFD      string            // For subdirectory pointer tags
}

// AllTags consolidates all registered tag tables by table name
var AllTags = make(map[string]*TagTable)

// tablesByNamespace indexes tables by owning namespace
var tablesByNamespace = make(map[string][]*TagTable)

// RegisterTagTable registers a tag table under its table name
func RegisterTagTable(tableName string, table *TagTable) {
	AllTags[tableName] = table
	tablesByNamespace[table.Namespace] = append(tablesByNamespace[table.Namespace], table)
}

// Lookup retrieves a tag definition by namespace and numeric ID.
// Generated tables key tags as hex strings ("0x010E"); some hand-written
// tables use decimal keys, so both are tried.
func Lookup(namespace string, id uint16) (TagDef, bool) {
	hexKey := fmt.Sprintf("0x%04X", id)
	decKey := strconv.Itoa(int(id))

	for _, table := range tablesByNamespace[namespace] {
		if tag, ok := table.Tags[hexKey]; ok {
			return tag, true
		}
		if tag, ok := table.Tags[decKey]; ok {
			return tag, true
		}
	}
	return TagDef{}, false
}

// NameToID resolves a tag name to its numeric ID within a namespace.
// Matching is case-insensitive, as with ExifTool queries. Keys are
// scanned in sorted order so duplicate names resolve the same way on
// every run.
func NameToID(namespace, name string) (uint16, bool) {
	for _, table := range tablesByNamespace[namespace] {
		for _, key := range sortedKeys(table.Tags) {
			if strings.EqualFold(table.Tags[key].Name, name) {
				if id, ok := ParseTagKey(key); ok {
					return id, true
				}
			}
		}
	}
	return 0, false
}

// PointerTag is one subdirectory pointer declared by a tag table
type PointerTag struct {
	ID     uint16
	SubIFD string
}

// PointerTags lists the subdirectory pointer tags registered under a
// namespace, sorted by id. Dispatch tables are built from this instead
// of hardcoding tag ids.
func PointerTags(namespace string) []PointerTag {
	var out []PointerTag
	for _, table := range tablesByNamespace[namespace] {
		for _, key := range sortedKeys(table.Tags) {
			def := table.Tags[key]
			if def.SubIFD == "" {
				continue
			}
			if id, ok := ParseTagKey(key); ok {
				out = append(out, PointerTag{ID: id, SubIFD: def.SubIFD})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedKeys(m map[string]TagDef) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParseTagKey parses a table key in "0x010E" or decimal form
func ParseTagKey(key string) (uint16, bool) {
	base := 10
	digits := key
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		base = 16
		digits = key[2:]
	}
	id, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, false
	}
	return uint16(id), true
}
