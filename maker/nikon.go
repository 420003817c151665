// File: maker/nikon.go

package maker

import (
	"bytes"
	"encoding/binary"
)

// nikonSignature prefixes format-2 and format-3 Nikon notes
var nikonSignature = []byte("Nikon\x00")

// nikonLayout recognizes Nikon notes by their signature header.
// Format-3 notes ("Nikon\x00\x02...") embed a complete TIFF header at
// offset 10: the note carries its own byte order, and value offsets
// are relative to that embedded header, not the outer container.
// Format-1 notes ("Nikon\x00\x01...") put a bare IFD at offset 8 in
// the container's byte order.
func nikonLayout(buf []byte, noteOffset uint32, note []byte, base uint32) (Layout, bool) {
	if !bytes.HasPrefix(note, nikonSignature) {
		return Layout{}, false
	}

	if len(note) > 6 && note[6] == 0x02 {
		// Embedded TIFF header at +10
		tiffStart := noteOffset + 10
		if int(tiffStart)+8 > len(buf) {
			return Layout{}, false
		}
		header := buf[tiffStart:]

		var order binary.ByteOrder
		switch {
		case header[0] == 'I' && header[1] == 'I':
			order = binary.LittleEndian
		case header[0] == 'M' && header[1] == 'M':
			order = binary.BigEndian
		default:
			return Layout{}, false
		}
		if order.Uint16(header[2:4]) != 42 {
			return Layout{}, false
		}

		ifdOffset := order.Uint32(header[4:8])
		return Layout{
			Namespace: string(Nikon),
			Group1:    string(Nikon),
			IFDOffset: tiffStart + ifdOffset,
			Base:      tiffStart,
			Order:     order,
		}, true
	}

	// Format 1: bare IFD at +8, container byte order
	return Layout{
		Namespace: string(Nikon),
		Group1:    string(Nikon),
		IFDOffset: noteOffset + 8,
		Base:      base,
	}, true
}
