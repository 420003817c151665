// File: parser/parse_pm_test.go

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePM = `# Sample module fragment
%Image::ExifTool::Exif::Main = (
    0x010e => 'ImageDescription',
    0x8769 => {
        Name => 'ExifOffset',
        SubDirectory => { TagTable => 'Image::ExifTool::Exif::Main' },
    },
    0xa001 => {
        Name => 'ColorSpace',
        Format => 'int16u',
        PrintConv => {
            1 => 'sRGB',
            2 => 'Adobe RGB',
        },
    },
);

%Image::ExifTool::Canon::Main = (
    0xb4 => {
        Name => 'ColorSpace',
        Format => 'int16s',
    },
);
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sample.pm"), []byte(samplePM), 0o644))
	return dir
}

func TestParsePMFiles(t *testing.T) {
	data, err := ParsePMFiles(writeSample(t))
	require.NoError(t, err)
	require.Len(t, data.TagTables, 2)

	exifTable := data.TagTables["Exif::Main"]
	require.NotNil(t, exifTable)
	assert.Equal(t, "EXIF", exifTable.Namespace)
	assert.Equal(t, "Exif", exifTable.ModuleName)

	desc, ok := exifTable.Tags["0x010E"]
	require.True(t, ok)
	assert.Equal(t, "ImageDescription", desc.Name)

	ptr, ok := exifTable.Tags["0x8769"]
	require.True(t, ok)
	assert.Equal(t, "ExifOffset", ptr.Name)
	assert.Equal(t, "ExifOffset", ptr.SubIFD)

	cs, ok := exifTable.Tags["0xA001"]
	require.True(t, ok)
	assert.Equal(t, "ColorSpace", cs.Name)
	assert.Equal(t, "int16u", cs.Format)
	assert.Equal(t, "sRGB", cs.Values["1"])
	assert.Equal(t, "Adobe RGB", cs.Values["2"])

	canonTable := data.TagTables["Canon::Main"]
	require.NotNil(t, canonTable)
	assert.Equal(t, "Canon", canonTable.Namespace)
	_, ok = canonTable.Tags["0xB4"]
	assert.True(t, ok)
}

func TestGenerateGoFiles(t *testing.T) {
	data, err := ParsePMFiles(writeSample(t))
	require.NoError(t, err)

	outDir := t.TempDir()
	require.NoError(t, GenerateGoFiles(data, outDir))

	exifSrc, err := os.ReadFile(filepath.Join(outDir, "exif_main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(exifSrc), "var ExifMain = TagTable{")
	assert.Contains(t, string(exifSrc), `Namespace:  "EXIF",`)
	assert.Contains(t, string(exifSrc), `"ColorSpace"`)

	initSrc, err := os.ReadFile(filepath.Join(outDir, "init.go"))
	require.NoError(t, err)
	assert.Contains(t, string(initSrc), `RegisterTagTable("Canon::Main", &CanonMain)`)
	assert.Contains(t, string(initSrc), `RegisterTagTable("Exif::Main", &ExifMain)`)
}
