// File: tiff/format.go

package tiff

import "fmt"

// Format is a TIFF entry data type code
type Format uint16

// TIFF data type codes
const (
	FormatByte      Format = 1
	FormatAscii     Format = 2
	FormatShort     Format = 3
	FormatLong      Format = 4
	FormatRational  Format = 5
	FormatSByte     Format = 6
	FormatUndef     Format = 7
	FormatSShort    Format = 8
	FormatSLong     Format = 9
	FormatSRational Format = 10
	FormatFloat     Format = 11
	FormatDouble    Format = 12
	FormatIFD       Format = 13
)

// formatSizes maps type codes to their element size in bytes
var formatSizes = map[Format]uint32{
	FormatByte:      1,
	FormatAscii:     1,
	FormatShort:     2,
	FormatLong:      4,
	FormatRational:  8,
	FormatSByte:     1,
	FormatUndef:     1,
	FormatSShort:    2,
	FormatSLong:     4,
	FormatSRational: 8,
	FormatFloat:     4,
	FormatDouble:    8,
	FormatIFD:       4,
}

var formatNames = map[Format]string{
	FormatByte:      "BYTE",
	FormatAscii:     "ASCII",
	FormatShort:     "SHORT",
	FormatLong:      "LONG",
	FormatRational:  "RATIONAL",
	FormatSByte:     "SBYTE",
	FormatUndef:     "UNDEF",
	FormatSShort:    "SSHORT",
	FormatSLong:     "SLONG",
	FormatSRational: "SRATIONAL",
	FormatFloat:     "FLOAT",
	FormatDouble:    "DOUBLE",
	FormatIFD:       "IFD",
}

// Size returns the element size for the format, 0 if unrecognized
func (f Format) Size() uint32 {
	return formatSizes[f]
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(f))
}
