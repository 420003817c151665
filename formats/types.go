// File: formats/types.go

package formats

// Format identifies a container file format
type Format string

// Supported container formats
const (
	FormatJPEG    Format = "JPEG"
	FormatTIFF    Format = "TIFF"
	FormatPNG     Format = "PNG"
	FormatUnknown Format = ""
)
