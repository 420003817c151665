// File: tiff/cursor.go

package tiff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMalformed marks entries that could not be decoded: inconsistent
// counts, out-of-range offsets, or unrecognized format codes. The
// offending entry is skipped and the rest of the directory continues.
var ErrMalformed = errors.New("malformed entry")

// MaxDirEntries is the sanity ceiling on a directory's declared entry
// count. A 12-byte-per-entry directory claiming more than this in a
// metadata segment is treated as garbage before anything is allocated.
const MaxDirEntries = 512

// Entry is a single decoded 12-byte IFD entry
type Entry struct {
	Tag    uint16
	Format Format
	Count  uint32

	// ValueOffset is the raw 4-byte value/offset field
	ValueOffset uint32
	// Offset is the resolved absolute offset of out-of-line data
	Offset uint32
	// Inline is true when count*size fits in the 4-byte field
	Inline bool
}

// TotalSize returns count * element size in bytes
func (e Entry) TotalSize() uint64 {
	return uint64(e.Format.Size()) * uint64(e.Count)
}

// Directory is one decoded IFD: its usable entries and the offset of
// the next chained IFD (0 when none)
type Directory struct {
	Entries []Entry
	NextIFD uint32
}

// DecodeDirectory decodes the IFD at offset within data. base is added
// to stored value offsets when resolving out-of-line data, per the
// container's offset origin. The returned error is non-nil only when
// the directory header itself is unreadable; per-entry problems are
// returned as diagnostics and the remaining entries still decode.
func DecodeDirectory(data []byte, offset uint32, order binary.ByteOrder, base uint32) (*Directory, []error, error) {
	if uint64(offset)+2 > uint64(len(data)) {
		return nil, nil, fmt.Errorf("directory offset %#x beyond data bounds (%d bytes)", offset, len(data))
	}

	numEntries := uint32(order.Uint16(data[offset : offset+2]))
	if numEntries > MaxDirEntries {
		return nil, nil, fmt.Errorf("implausible entry count %d at offset %#x", numEntries, offset)
	}

	dir := &Directory{Entries: make([]Entry, 0, numEntries)}
	var diags []error

	pos := offset + 2
	for i := uint32(0); i < numEntries; i++ {
		if uint64(pos)+12 > uint64(len(data)) {
			diags = append(diags, fmt.Errorf("%w: entry %d at %#x beyond data bounds", ErrMalformed, i, pos))
			break
		}

		entry := Entry{
			Tag:         order.Uint16(data[pos : pos+2]),
			Format:      Format(order.Uint16(data[pos+2 : pos+4])),
			Count:       order.Uint32(data[pos+4 : pos+8]),
			ValueOffset: order.Uint32(data[pos+8 : pos+12]),
		}
		pos += 12

		size := entry.Format.Size()
		if size == 0 {
			diags = append(diags, fmt.Errorf("%w: tag %#04x has unrecognized format %d", ErrMalformed, entry.Tag, uint16(entry.Format)))
			continue
		}

		total := uint64(size) * uint64(entry.Count)
		if total <= 4 {
			entry.Inline = true
		} else {
			abs := uint64(base) + uint64(entry.ValueOffset)
			if abs+total > uint64(len(data)) {
				diags = append(diags, fmt.Errorf("%w: tag %#04x value at %#x (%d bytes) out of range", ErrMalformed, entry.Tag, abs, total))
				continue
			}
			entry.Offset = uint32(abs)
		}

		dir.Entries = append(dir.Entries, entry)
	}

	// Offset of the next chained IFD follows the entry records
	if uint64(pos)+4 <= uint64(len(data)) {
		dir.NextIFD = order.Uint32(data[pos : pos+4])
	}

	return dir, diags, nil
}
