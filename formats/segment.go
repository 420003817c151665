// File: formats/segment.go

package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// exifHeader prefixes the TIFF data inside a JPEG APP1 segment
var exifHeader = []byte("Exif\x00\x00")

// FindExifSegment locates the TIFF-structured metadata segment inside
// a container and returns it. For TIFF files the whole buffer is the
// segment; for JPEG it is the APP1 payload past the "Exif\x00\x00"
// marker; for PNG the eXIf chunk. Offsets inside the returned slice
// are relative to its own start, so callers parse it with base 0.
func FindExifSegment(data []byte) ([]byte, error) {
	switch Sniff(data) {
	case FormatTIFF:
		return data, nil
	case FormatJPEG:
		return findJPEGExif(data)
	case FormatPNG:
		return findPNGExif(data)
	default:
		return nil, fmt.Errorf("no EXIF segment: unrecognized container")
	}
}

// findJPEGExif walks JPEG segments looking for the APP1/EXIF payload
func findJPEGExif(data []byte) ([]byte, error) {
	offset := 2 // skip SOI

	for offset+4 <= len(data) {
		if data[offset] != 0xFF {
			offset++
			continue
		}

		marker := data[offset+1]
		offset += 2

		// Stuffing bytes and standalone markers carry no length
		if marker == 0xFF || marker == 0x00 || marker == 0x01 ||
			(marker >= 0xD0 && marker <= 0xD8) {
			continue
		}

		if marker == 0xDA {
			break // start of scan, image data follows
		}

		if offset+2 > len(data) {
			break
		}
		segLen := int(binary.BigEndian.Uint16(data[offset : offset+2]))
		if segLen < 2 || offset+segLen > len(data) {
			break
		}

		segData := data[offset+2 : offset+segLen]
		if marker == 0xE1 && bytes.HasPrefix(segData, exifHeader) {
			return segData[len(exifHeader):], nil
		}

		offset += segLen
	}

	return nil, fmt.Errorf("no EXIF segment in JPEG")
}

// findPNGExif scans PNG chunks for an eXIf chunk
func findPNGExif(data []byte) ([]byte, error) {
	offset := 8 // skip PNG signature

	for offset+12 <= len(data) {
		chunkLen := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		if offset+8+chunkLen+4 > len(data) {
			break
		}

		chunkType := string(data[offset+4 : offset+8])
		if chunkType == "eXIf" {
			return data[offset+8 : offset+8+chunkLen], nil
		}

		offset += 8 + chunkLen + 4 // length + type + data + CRC
	}

	return nil, fmt.Errorf("no eXIf chunk in PNG")
}
