// File: meta/reader.go

package meta

import (
	"fmt"
	"io"
	"os"

	"greg-hacke/go-ifd/conv"
	"greg-hacke/go-ifd/exif"
	"greg-hacke/go-ifd/formats"
)

// maxReadSize caps how much of a file is loaded for metadata scanning
const maxReadSize = 50 * 1024 * 1024

// ReadMetadata extracts metadata from a file
func ReadMetadata(filename string) (*Metadata, error) {
	return ReadMetadataOpts(filename, exif.Options{})
}

// ReadMetadataOpts extracts metadata from a file with parse options
func ReadMetadataOpts(filename string, opts exif.Options) (*Metadata, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadMetadataFrom(file, opts)
}

// ReadMetadataFrom extracts metadata from a reader
func ReadMetadataFrom(r io.Reader, opts exif.Options) (*Metadata, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxReadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	return Read(data, opts)
}

// Read extracts metadata from an in-memory container buffer: sniff the
// format, locate the TIFF-structured segment, parse it, then run the
// conversion pass over the stored tags.
func Read(data []byte, opts exif.Options) (*Metadata, error) {
	format := formats.Sniff(data)
	if format == formats.FormatUnknown {
		return nil, fmt.Errorf("unrecognized container format")
	}

	segment, err := formats.FindExifSegment(data)
	if err != nil {
		return nil, err
	}

	result, err := exif.Parse(segment, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata segment: %w", err)
	}

	// Conversion runs after storage; it never affects traversal
	for _, t := range result.Tags() {
		t.Print = conv.Display(t.Namespace, t.ID, t.Value)
	}

	return &Metadata{FileType: format, Result: result}, nil
}
