package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/prism/engine/renderer"
)

// DecodeImage decodes any registered format into tightly packed RGBA8.
// With flip set the rows are reversed so the first row is the bottom of the
// picture, the order OpenGL samples from.
func DecodeImage(r io.Reader, flip bool) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAsset, err)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if flip {
		flipVertical(dst)
	}
	return dst, nil
}

func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func LoadImage(path string, flip bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := DecodeImage(file, flip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// TextureFromImage uploads img through device.
func TextureFromImage(device renderer.Device, name string, img *image.RGBA) (renderer.Texture, error) {
	b := img.Bounds()
	return device.CreateTexture(name, uint32(b.Dx()), uint32(b.Dy()), img.Pix)
}

// LoadTexture decodes the image at path and creates a texture named after
// the file.
func LoadTexture(device renderer.Device, path string) (renderer.Texture, error) {
	img, err := LoadImage(path, true)
	if err != nil {
		return nil, err
	}
	return TextureFromImage(device, assetName(path), img)
}

func assetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
