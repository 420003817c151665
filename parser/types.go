// File: parser/types.go

package parser

// ParsedData holds everything extracted from the ExifTool PM sources
type ParsedData struct {
	TagTables map[string]*TagTable // "Canon::Main" -> table
}

// TagTable represents tags from a single PM module/table
type TagTable struct {
	ModuleName string // e.g. "Exif", "GPS", "Canon"
	Namespace  string // owning namespace the table registers under
	Tags       map[string]TagDef
}

// TagDef represents a single tag definition
type TagDef struct {
	ID          string            // Tag ID (hex or name)
	Name        string            // Human-readable name
	Description string            // Tag description
	Format      string            // Data format
	Groups      map[string]string // Group memberships
	Values      map[string]string // Value mappings (enums)
	SubIFD      string            // For subdirectory pointer tags
}
