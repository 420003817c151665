// File: maker/maker.go

// Package maker identifies manufacturer-specific maker note layouts.
// Each camera maker stores its own format behind the MakerNote tag
// (0x927C): some prefix the IFD with a signature header, some embed a
// whole TIFF header, some start with a bare IFD. Identification is a
// pure function of the note bytes and the already-decoded Make tag, so
// dispatch results are reproducible.
package maker

import (
	"encoding/binary"
	"strings"
)

// Manufacturer names a maker note namespace
type Manufacturer string

// Known manufacturers. The value doubles as the tag namespace.
const (
	Apple      Manufacturer = "Apple"
	Canon      Manufacturer = "Canon"
	Casio      Manufacturer = "Casio"
	DJI        Manufacturer = "DJI"
	Fujifilm   Manufacturer = "Fujifilm"
	GoPro      Manufacturer = "GoPro"
	Hasselblad Manufacturer = "Hasselblad"
	Kodak      Manufacturer = "Kodak"
	Leica      Manufacturer = "Leica"
	Minolta    Manufacturer = "Minolta"
	Nikon      Manufacturer = "Nikon"
	Olympus    Manufacturer = "Olympus"
	Panasonic  Manufacturer = "Panasonic"
	Pentax     Manufacturer = "Pentax"
	Ricoh      Manufacturer = "Ricoh"
	Samsung    Manufacturer = "Samsung"
	Sigma      Manufacturer = "Sigma"
	Sony       Manufacturer = "Sony"
	Unknown    Manufacturer = ""
)

// makeSignatures maps case-folded substrings of the Make tag to a
// manufacturer, in match order. Substring matching handles the noisy
// real-world Make values ("NIKON CORPORATION", "Canon EOS 5D", ...).
var makeSignatures = []struct {
	substr string
	maker  Manufacturer
}{
	{"apple", Apple},
	{"canon", Canon},
	{"casio", Casio},
	{"dji", DJI},
	{"fujifilm", Fujifilm},
	{"fuji", Fujifilm},
	{"gopro", GoPro},
	{"hasselblad", Hasselblad},
	{"kodak", Kodak},
	{"leica", Leica},
	{"minolta", Minolta},
	{"nikon", Nikon},
	{"olympus", Olympus},
	{"panasonic", Panasonic},
	{"pentax", Pentax},
	{"asahi", Pentax},
	{"ricoh", Ricoh},
	{"samsung", Samsung},
	{"sigma", Sigma},
	{"sony", Sony},
}

// FromMake detects the manufacturer from the Make tag value
func FromMake(make string) Manufacturer {
	makeLower := strings.ToLower(make)
	for _, sig := range makeSignatures {
		if strings.Contains(makeLower, sig.substr) {
			return sig.maker
		}
	}
	return Unknown
}

// Layout describes how to traverse one maker note: where its IFD
// starts, which byte order it uses, and which base resolves its
// out-of-line value offsets.
type Layout struct {
	// Namespace owns every tag decoded in this note. It is fixed here
	// at dispatch time and must survive nested subdirectories.
	Namespace string
	// Group1 is the directory display label
	Group1 string
	// IFDOffset is the absolute offset of the note's first IFD
	IFDOffset uint32
	// Base is the offset base for the note's out-of-line values
	Base uint32
	// Order overrides the container byte order; nil inherits it
	Order binary.ByteOrder
}

// Identify resolves the layout of the maker note at noteOffset within
// buf. base is the container's offset base and cameraMake the decoded
// IFD0 Make tag. Signature headers in the note itself are decisive;
// the Make tag decides among header-less formats. Returns false for
// unrecognized manufacturers, in which case the caller keeps the note
// opaque.
func Identify(buf []byte, noteOffset, noteLen, base uint32, cameraMake string, order binary.ByteOrder) (Layout, bool) {
	note := noteSlice(buf, noteOffset, noteLen)

	if layout, ok := nikonLayout(buf, noteOffset, note, base); ok {
		return layout, true
	}
	if layout, ok := sonyLayout(noteOffset, note, base); ok {
		return layout, true
	}

	m := FromMake(cameraMake)
	switch m {
	case Unknown:
		return Layout{}, false
	case Canon:
		return canonLayout(noteOffset, base), true
	default:
		// Header-less makers parse as a bare IFD in the container's
		// byte order, offsets relative to the container base
		return Layout{
			Namespace: string(m),
			Group1:    string(m),
			IFDOffset: noteOffset,
			Base:      base,
		}, true
	}
}

// noteSlice bounds the note data against the buffer
func noteSlice(buf []byte, offset, length uint32) []byte {
	if uint64(offset) >= uint64(len(buf)) {
		return nil
	}
	end := uint64(offset) + uint64(length)
	if end > uint64(len(buf)) {
		end = uint64(len(buf))
	}
	return buf[offset:end]
}
