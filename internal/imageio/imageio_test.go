package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePNGLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	require.NoError(t, SavePNG(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Bounds().Dx())
	assert.Equal(t, 3, got.Bounds().Dy())

	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(100), g>>8)
	assert.Equal(t, uint32(50), b>>8)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestCollectInputs_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portrait.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	got, err := CollectInputs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestCollectInputs_DirectoryFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.txt", "d.JPEG", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	got, err := CollectInputs(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "d.JPEG"),
	}, got)
}

func TestCollectInputs_MissingPath(t *testing.T) {
	_, err := CollectInputs(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
