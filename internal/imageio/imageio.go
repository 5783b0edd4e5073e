// Package imageio is the filesystem collaborator: decoding input photos,
// encoding results, and enumerating batch inputs. The pipeline itself never
// touches the filesystem.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// inputExts lists the extensions picked up when enumerating a directory.
var inputExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Load decodes the image at path using any registered format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// SavePNG writes img to path as PNG, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// CollectInputs resolves a path to the list of images to process: the path
// itself when it is a file, otherwise the directory's image files sorted by
// name.
func CollectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var inputs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if inputExts[strings.ToLower(filepath.Ext(e.Name()))] {
			inputs = append(inputs, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(inputs)
	return inputs, nil
}
