package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/prism/engine/math"
	"github.com/spaghettifunk/prism/engine/renderer"
)

type Glyph struct {
	Region   renderer.SubTexture
	Page     int
	Width    int
	Height   int
	XOffset  int
	YOffset  int
	XAdvance int
}

type kerningPair struct {
	first, second rune
}

// FontAtlas is a bitmap font whose glyphs are regions of its page textures.
type FontAtlas struct {
	Face       string
	Size       int
	LineHeight int
	Base       int
	Pages      []renderer.Texture

	glyphs  map[rune]Glyph
	kerning map[kerningPair]int
}

// LoadFontAtlas reads an AngelCode .fnt descriptor and uploads its pages.
// Page images are kept top row first so glyph regions read upright in the
// y-down 2D projection.
func LoadFontAtlas(device renderer.Device, path string) (*FontAtlas, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	desc := font.Descriptor

	atlas := &FontAtlas{
		Face:       desc.Info.Face,
		Size:       int(desc.Info.Size),
		LineHeight: int(desc.Common.LineHeight),
		Base:       int(desc.Common.Base),
		glyphs:     make(map[rune]Glyph, len(desc.Chars)),
		kerning:    make(map[kerningPair]int, len(desc.Kerning)),
	}

	pages := make(map[int]renderer.Texture, len(desc.Pages))
	for _, p := range desc.Pages {
		img, err := LoadImage(filepath.Join(filepath.Dir(path), p.File), false)
		if err != nil {
			atlas.destroyPages(pages)
			return nil, err
		}
		tex, err := TextureFromImage(device, fmt.Sprintf("%s_page%d", assetName(path), int(p.ID)), img)
		if err != nil {
			atlas.destroyPages(pages)
			return nil, err
		}
		pages[int(p.ID)] = tex
	}
	for id := 0; id < len(pages); id++ {
		tex, ok := pages[id]
		if !ok {
			atlas.destroyPages(pages)
			return nil, fmt.Errorf("%s: page ids are not contiguous, missing %d", path, id)
		}
		atlas.Pages = append(atlas.Pages, tex)
	}

	for _, g := range desc.Chars {
		page := int(g.Page)
		if page < 0 || page >= len(atlas.Pages) {
			atlas.Destroy()
			return nil, fmt.Errorf("%s: glyph %d refers to missing page %d", path, int(g.ID), page)
		}
		tex := atlas.Pages[page]
		w, h := float32(tex.Width()), float32(tex.Height())
		x, y := float32(g.X), float32(g.Y)
		region, err := renderer.NewSubTexture(tex,
			math.NewVec2(x/w, y/h),
			math.NewVec2((x+float32(g.Width))/w, (y+float32(g.Height))/h),
		)
		if err != nil {
			atlas.Destroy()
			return nil, fmt.Errorf("%s: glyph %d: %w", path, int(g.ID), err)
		}
		atlas.glyphs[rune(g.ID)] = Glyph{
			Region:   region,
			Page:     page,
			Width:    int(g.Width),
			Height:   int(g.Height),
			XOffset:  int(g.XOffset),
			YOffset:  int(g.YOffset),
			XAdvance: int(g.XAdvance),
		}
	}
	for pair, k := range desc.Kerning {
		atlas.kerning[kerningPair{rune(pair.First), rune(pair.Second)}] = int(k.Amount)
	}
	return atlas, nil
}

func (f *FontAtlas) destroyPages(pages map[int]renderer.Texture) {
	for _, tex := range pages {
		tex.Destroy()
	}
}

func (f *FontAtlas) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

func (f *FontAtlas) Kerning(first, second rune) int {
	return f.kerning[kerningPair{first, second}]
}

// GlyphQuad is one positioned glyph of a laid out string.
type GlyphQuad struct {
	Rune   rune
	Quad   renderer.Quad
	Region renderer.SubTexture
}

// Layout places text on a single line starting at origin, the top-left
// corner of the line in y-down pixel space. Runes without a glyph are
// skipped; whitespace only advances the pen.
func (f *FontAtlas) Layout(text string, origin math.Vec2, scale float32) []GlyphQuad {
	var out []GlyphQuad
	pen := origin.X
	prev := rune(-1)
	for _, r := range text {
		g, ok := f.glyphs[r]
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			pen += float32(f.Kerning(prev, r)) * scale
		}
		if g.Width > 0 && g.Height > 0 {
			min := math.NewVec2(pen+float32(g.XOffset)*scale, origin.Y+float32(g.YOffset)*scale)
			max := math.NewVec2(min.X+float32(g.Width)*scale, min.Y+float32(g.Height)*scale)
			out = append(out, GlyphQuad{Rune: r, Quad: renderer.NewQuadMinMax(min, max), Region: g.Region})
		}
		pen += float32(g.XAdvance) * scale
		prev = r
	}
	return out
}

// Measure returns the advance width of text at scale 1.
func (f *FontAtlas) Measure(text string) int {
	width := 0
	prev := rune(-1)
	for _, r := range text {
		g, ok := f.glyphs[r]
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			width += f.Kerning(prev, r)
		}
		width += g.XAdvance
		prev = r
	}
	return width
}

// DrawText submits one tinted quad per visible glyph. r must be recording.
func (f *FontAtlas) DrawText(r *renderer.Renderer2D, text string, origin math.Vec2, scale float32, tint math.Vec4) error {
	var errs []error
	for _, gq := range f.Layout(text, origin, scale) {
		region := gq.Region
		if err := r.Submit(gq.Quad, renderer.QuadDraw{Tint: &tint, SubTexture: &region}); err != nil {
			if errors.Is(err, renderer.ErrNotRecording) {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *FontAtlas) Destroy() {
	for _, tex := range f.Pages {
		tex.Destroy()
	}
	f.Pages = nil
}
