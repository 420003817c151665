// File: tiff/value.go

package tiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Value decodes an entry's data into a Go value based on its TIFF
// format. Pure decode: single-element entries yield scalars, multi-
// element entries yield slices; rationals render as reduced strings.
func Value(data []byte, entry Entry, order binary.ByteOrder) (interface{}, error) {
	size := entry.Format.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: unrecognized format %d", ErrMalformed, uint16(entry.Format))
	}

	total := entry.TotalSize()
	var valueData []byte

	if entry.Inline {
		// Inline values live in the 4-byte value/offset field itself;
		// re-encode it with the container's byte order
		buf := make([]byte, 4)
		order.PutUint32(buf, entry.ValueOffset)
		valueData = buf[:total]
	} else {
		if uint64(entry.Offset)+total > uint64(len(data)) {
			return nil, fmt.Errorf("%w: value at %#x out of range", ErrMalformed, entry.Offset)
		}
		valueData = data[entry.Offset : uint64(entry.Offset)+total]
	}

	count := entry.Count

	switch entry.Format {
	case FormatByte:
		if count == 1 {
			return int(valueData[0]), nil
		}
		return append([]byte(nil), valueData...), nil

	case FormatAscii:
		if end := bytes.IndexByte(valueData, 0); end >= 0 {
			return string(valueData[:end]), nil
		}
		return string(valueData), nil

	case FormatShort:
		if count == 1 {
			return int(order.Uint16(valueData)), nil
		}
		vals := make([]int, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = int(order.Uint16(valueData[i*2:]))
		}
		return vals, nil

	case FormatLong, FormatIFD:
		if count == 1 {
			return int(order.Uint32(valueData)), nil
		}
		vals := make([]int, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = int(order.Uint32(valueData[i*4:]))
		}
		return vals, nil

	case FormatRational:
		if count == 1 {
			return formatRational(int64(order.Uint32(valueData[0:4])), int64(order.Uint32(valueData[4:8]))), nil
		}
		vals := make([]interface{}, count)
		for i := uint32(0); i < count; i++ {
			num := int64(order.Uint32(valueData[i*8 : i*8+4]))
			den := int64(order.Uint32(valueData[i*8+4 : i*8+8]))
			vals[i] = formatRational(num, den)
		}
		return vals, nil

	case FormatSByte:
		if count == 1 {
			return int(int8(valueData[0])), nil
		}
		vals := make([]int, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = int(int8(valueData[i]))
		}
		return vals, nil

	case FormatUndef:
		return append([]byte(nil), valueData...), nil

	case FormatSShort:
		if count == 1 {
			return int(int16(order.Uint16(valueData))), nil
		}
		vals := make([]int, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = int(int16(order.Uint16(valueData[i*2:])))
		}
		return vals, nil

	case FormatSLong:
		if count == 1 {
			return int(int32(order.Uint32(valueData))), nil
		}
		vals := make([]int, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = int(int32(order.Uint32(valueData[i*4:])))
		}
		return vals, nil

	case FormatSRational:
		if count == 1 {
			return formatRational(int64(int32(order.Uint32(valueData[0:4]))), int64(int32(order.Uint32(valueData[4:8])))), nil
		}
		vals := make([]interface{}, count)
		for i := uint32(0); i < count; i++ {
			num := int64(int32(order.Uint32(valueData[i*8 : i*8+4])))
			den := int64(int32(order.Uint32(valueData[i*8+4 : i*8+8])))
			vals[i] = formatRational(num, den)
		}
		return vals, nil

	case FormatFloat:
		if count == 1 {
			return math.Float32frombits(order.Uint32(valueData)), nil
		}
		vals := make([]float32, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = math.Float32frombits(order.Uint32(valueData[i*4:]))
		}
		return vals, nil

	case FormatDouble:
		if count == 1 {
			return math.Float64frombits(order.Uint64(valueData)), nil
		}
		vals := make([]float64, count)
		for i := uint32(0); i < count; i++ {
			vals[i] = math.Float64frombits(order.Uint64(valueData[i*8:]))
		}
		return vals, nil

	default:
		return fmt.Sprintf("[%s x%d]", entry.Format, count), nil
	}
}

// formatRational reduces a rational to an int when it divides evenly,
// otherwise keeps the "num/den" form
func formatRational(num, den int64) interface{} {
	if den == 0 {
		return "inf"
	}
	if num%den == 0 {
		return int(num / den)
	}
	return fmt.Sprintf("%d/%d", num, den)
}
