package imgpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindCounterpart(t *testing.T) {
	root := t.TempDir()

	pcPath := filepath.Join(root, "images", "widget", "pc", "hero", "banner.jpg")
	spPath := filepath.Join(root, "images", "widget", "sp", "hero", "banner.jpg")
	writeFile(t, pcPath)
	writeFile(t, spPath)

	found, ok := FindCounterpart(pcPath)
	require.True(t, ok)
	assert.Equal(t, filepath.ToSlash(spPath), found)
}

func TestFindCounterpartFallsBackToPNG(t *testing.T) {
	root := t.TempDir()

	pcPath := filepath.Join(root, "images", "pc", "banner.jpg")
	spPNG := filepath.Join(root, "images", "sp", "banner.png")
	writeFile(t, pcPath)
	writeFile(t, spPNG)

	found, ok := FindCounterpart(pcPath)
	require.True(t, ok)
	assert.Equal(t, filepath.ToSlash(spPNG), found)
}

func TestFindCounterpartMissing(t *testing.T) {
	root := t.TempDir()

	pcPath := filepath.Join(root, "images", "pc", "banner.jpg")
	writeFile(t, pcPath)

	_, ok := FindCounterpart(pcPath)
	assert.False(t, ok)
}

func TestFindCounterpartWithoutPCSegment(t *testing.T) {
	root := t.TempDir()

	path := filepath.Join(root, "images", "banner.jpg")
	writeFile(t, path)

	_, ok := FindCounterpart(path)
	assert.False(t, ok)
}

func TestFindCounterpartNoPNGFallbackForPNGSource(t *testing.T) {
	root := t.TempDir()

	// A .png PC source probes only the exact sp candidate, no extension swap.
	pcPath := filepath.Join(root, "images", "pc", "banner.png")
	spJPG := filepath.Join(root, "images", "sp", "banner.jpg")
	writeFile(t, pcPath)
	writeFile(t, spJPG)

	_, ok := FindCounterpart(pcPath)
	assert.False(t, ok)
}
