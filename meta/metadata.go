// File: meta/metadata.go

package meta

import (
	"encoding/json"

	"greg-hacke/go-ifd/exif"
	"greg-hacke/go-ifd/formats"
)

// Metadata is the extraction result for one file: the container format
// and the parsed tag set with its diagnostics
type Metadata struct {
	FileType formats.Format
	Result   *exif.Result
}

// Tags returns all extracted tags in decode order
func (m *Metadata) Tags() []*exif.StoredTag {
	return m.Result.Tags()
}

// Get answers a "Namespace:Name" or bare-name query
func (m *Metadata) Get(query string) (*exif.StoredTag, error) {
	return m.Result.Get(query)
}

// tagRecord is the JSON shape of one extracted tag
type tagRecord struct {
	Tag    string      `json:"tag"`
	Group1 string      `json:"group1"`
	Value  interface{} `json:"value"`
}

// ToJSON renders the tags as an ordered JSON array, preserving decode
// order. Display values are used where conversion produced one.
func (m *Metadata) ToJSON() (string, error) {
	records := make([]tagRecord, 0, m.Result.Len())
	for _, t := range m.Tags() {
		value := t.Print
		if value == nil {
			value = t.Value
		}
		records = append(records, tagRecord{
			Tag:    t.Key(),
			Group1: t.Group1,
			Value:  value,
		})
	}

	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "[]", err
	}
	return string(jsonBytes), nil
}
