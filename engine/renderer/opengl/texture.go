package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Texture struct {
	name   string
	id     uint32
	width  uint32
	height uint32
}

func newTexture(name string, width, height uint32, pixels []uint8) (*Texture, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("texture %q: invalid dimensions %dx%d", name, width, height)
	}
	if want := int(width * height * 4); len(pixels) != want {
		return nil, fmt.Errorf("texture %q: got %d bytes of pixel data, want %d", name, len(pixels), want)
	}

	t := &Texture{name: name, width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *Texture) Name() string { return t.name }
func (t *Texture) Width() uint32 { return t.width }
func (t *Texture) Height() uint32 { return t.height }

func (t *Texture) BindToUnit(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.id)
}
