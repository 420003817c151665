// File: maker/sony.go

package maker

import "bytes"

// sonySignatures prefix Sony notes: a 12-byte header, then a bare IFD
// whose value offsets stay relative to the outer container base
var sonySignatures = [][]byte{
	[]byte("SONY DSC \x00\x00\x00"),
	[]byte("SONY CAM \x00\x00\x00"),
	[]byte("SONY MOBILE\x00"),
}

// sonyLayout recognizes Sony notes by their signature header. The
// namespace is pinned to "Sony" here for the whole descent; nested
// sections must never reset it to a generic label, or priority
// resolution loses every Sony tag.
func sonyLayout(noteOffset uint32, note []byte, base uint32) (Layout, bool) {
	for _, sig := range sonySignatures {
		if bytes.HasPrefix(note, sig) {
			return Layout{
				Namespace: string(Sony),
				Group1:    string(Sony),
				IFDOffset: noteOffset + 12,
				Base:      base,
			}, true
		}
	}
	return Layout{}, false
}
