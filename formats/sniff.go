// File: formats/sniff.go

package formats

import "bytes"

// Sniff determines the container format from magic numbers
func Sniff(data []byte) Format {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return FormatJPEG

	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG

	case len(data) >= 4 && (data[0] == 'I' && data[1] == 'I' && data[2] == 42 && data[3] == 0 ||
		data[0] == 'M' && data[1] == 'M' && data[2] == 0 && data[3] == 42):
		return FormatTIFF

	default:
		return FormatUnknown
	}
}
