// File: tiff/cursor_test.go

package tiff

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendU16 and appendU32 build little-endian test buffers
func appendU16(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}

func appendU32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// appendEntry appends one 12-byte IFD entry
func appendEntry(buf []byte, tag uint16, format Format, count, value uint32) []byte {
	buf = appendU16(buf, tag)
	buf = appendU16(buf, uint16(format))
	buf = appendU32(buf, count)
	buf = appendU32(buf, value)
	return buf
}

func TestDecodeDirectoryInlineAndOffset(t *testing.T) {
	// Directory at offset 0: one inline short, one out-of-line ascii
	var buf []byte
	buf = appendU16(buf, 2)
	buf = appendEntry(buf, 0x0112, FormatShort, 1, 6)     // Orientation = 6, inline
	buf = appendEntry(buf, 0x010F, FormatAscii, 6, 30)    // Make at offset 30
	buf = appendU32(buf, 0)                               // next IFD
	buf = append(buf, make([]byte, 30-len(buf))...)       // pad to 30
	buf = append(buf, []byte("Canon\x00")...)

	dir, diags, err := DecodeDirectory(buf, 0, binary.LittleEndian, 0)
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, dir.Entries, 2)

	assert.True(t, dir.Entries[0].Inline)
	assert.Equal(t, uint16(0x0112), dir.Entries[0].Tag)

	assert.False(t, dir.Entries[1].Inline)
	assert.Equal(t, uint32(30), dir.Entries[1].Offset)
	assert.Equal(t, uint32(0), dir.NextIFD)
}

func TestDecodeDirectoryBaseOffset(t *testing.T) {
	// Stored offsets are relative to base, not to the buffer start
	var buf []byte
	buf = appendU16(buf, 1)
	buf = appendEntry(buf, 0x010F, FormatAscii, 6, 10) // base 20 -> absolute 30
	buf = appendU32(buf, 0)
	buf = append(buf, make([]byte, 30-len(buf))...)
	buf = append(buf, []byte("Nikon\x00")...)

	dir, diags, err := DecodeDirectory(buf, 0, binary.LittleEndian, 20)
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, dir.Entries, 1)
	assert.Equal(t, uint32(30), dir.Entries[0].Offset)
}

func TestDecodeDirectoryHeaderOutOfBounds(t *testing.T) {
	_, _, err := DecodeDirectory([]byte{0x01}, 0, binary.LittleEndian, 0)
	require.Error(t, err)
}

func TestDecodeDirectoryImplausibleCount(t *testing.T) {
	var buf []byte
	buf = appendU16(buf, MaxDirEntries+1)

	_, _, err := DecodeDirectory(buf, 0, binary.LittleEndian, 0)
	require.Error(t, err)
}

func TestDecodeDirectoryCountOverrunsBuffer(t *testing.T) {
	// Declares 4 entries but only one fits: the overflow is Malformed,
	// the decodable prefix survives
	var buf []byte
	buf = appendU16(buf, 4)
	buf = appendEntry(buf, 0x0112, FormatShort, 1, 1)

	dir, diags, err := DecodeDirectory(buf, 0, binary.LittleEndian, 0)
	require.NoError(t, err)
	require.Len(t, dir.Entries, 1)
	require.NotEmpty(t, diags)
	assert.True(t, errors.Is(diags[0], ErrMalformed))
}

func TestDecodeDirectorySkipsBadEntries(t *testing.T) {
	// Unrecognized format and out-of-range offset are skipped with
	// diagnostics; the good sibling still decodes
	var buf []byte
	buf = appendU16(buf, 3)
	buf = appendEntry(buf, 0x0001, Format(200), 1, 0)          // unknown format
	buf = appendEntry(buf, 0x0002, FormatAscii, 64, 0xFFFF00)  // offset out of range
	buf = appendEntry(buf, 0x0112, FormatShort, 1, 3)          // good
	buf = appendU32(buf, 0)

	dir, diags, err := DecodeDirectory(buf, 0, binary.LittleEndian, 0)
	require.NoError(t, err)
	require.Len(t, dir.Entries, 1)
	assert.Equal(t, uint16(0x0112), dir.Entries[0].Tag)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.True(t, errors.Is(d, ErrMalformed))
	}
}

func TestDecodeDirectoryBigEndian(t *testing.T) {
	var buf []byte
	buf = binary.BigEndian.AppendUint16(buf, 1)
	buf = binary.BigEndian.AppendUint16(buf, 0x0112)
	buf = binary.BigEndian.AppendUint16(buf, uint16(FormatShort))
	buf = binary.BigEndian.AppendUint32(buf, 1)
	buf = binary.BigEndian.AppendUint32(buf, 6<<16) // short 6 in the field's first two bytes
	buf = binary.BigEndian.AppendUint32(buf, 0)

	dir, diags, err := DecodeDirectory(buf, 0, binary.BigEndian, 0)
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, dir.Entries, 1)

	v, err := Value(buf, dir.Entries[0], binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}
