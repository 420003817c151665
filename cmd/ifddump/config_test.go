// File: cmd/ifddump/config_test.go

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsMaxDepth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("max_depth: 3\n"), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, v.GetInt(cfgKeyMaxDepth))
}

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, v.GetInt(cfgKeyMaxDepth))
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("max_depth: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	require.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("max_depth: 3\n"), 0o644))
	t.Setenv("IFDDUMP_MAX_DEPTH", "7")

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, v.GetInt(cfgKeyMaxDepth))
}

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv("IFDDUMP_CONFIG_DIR", "/from-env")

	flagConfigDir = "/from-flag"
	assert.Equal(t, "/from-flag", resolveConfigDir())

	flagConfigDir = ""
	assert.Equal(t, "/from-env", resolveConfigDir())
}

func TestResolveConfigDirDefault(t *testing.T) {
	flagConfigDir = ""
	t.Setenv("IFDDUMP_CONFIG_DIR", "")
	assert.Equal(t, ".", resolveConfigDir())
}
