// Package composite renders the three-panel diff image for a differing pair:
// image A, image B, and a highlighted difference overlay, under a label bar.
package composite

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/ports"
)

type Renderer struct {
	highlight color.RGBA
	labelBar  int
	labelA    string
	labelB    string
	labelDiff string
	face      font.Face
}

type Option func(*Renderer)

// WithFace overrides the label font face.
func WithFace(face font.Face) Option {
	return func(r *Renderer) { r.face = face }
}

func New(cfg domain.RenderConfig, opts ...Option) *Renderer {
	def := domain.DefaultConfig().Render

	r := &Renderer{
		highlight: cfg.Highlight,
		labelBar:  cfg.LabelBarHeight,
		labelA:    cfg.LabelA,
		labelB:    cfg.LabelB,
		labelDiff: cfg.LabelDiff,
		face:      basicfont.Face7x13,
	}
	if r.highlight == (color.RGBA{}) {
		r.highlight = def.Highlight
	}
	if r.labelBar <= 0 {
		r.labelBar = def.LabelBarHeight
	}
	if r.labelA == "" {
		r.labelA = def.LabelA
	}
	if r.labelB == "" {
		r.labelB = def.LabelB
	}
	if r.labelDiff == "" {
		r.labelDiff = def.LabelDiff
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.DiffRenderer = (*Renderer)(nil)

// Render lays out a, b and the overlay left-to-right on a white canvas with
// a captioned label bar on top. Both images and the mask must share the same
// dimensions.
func (r *Renderer) Render(a, b image.Image, mask *domain.Mask) image.Image {
	size := a.Bounds().Size()
	w, h := size.X, size.Y

	dc := gg.NewContext(3*w, h+r.labelBar)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.DrawImage(a, 0, r.labelBar)
	dc.DrawImage(b, w, r.labelBar)
	dc.DrawImage(r.overlay(a, mask), 2*w, r.labelBar)

	dc.SetFontFace(r.face)
	dc.SetRGB(0, 0, 0)
	for i, label := range []string{r.labelA, r.labelB, r.labelDiff} {
		cx := float64(i*w) + float64(w)/2
		dc.DrawStringAnchored(label, cx, float64(r.labelBar)/2, 0.5, 0.5)
	}

	return dc.Image()
}

// overlay desaturates src to grayscale and paints masked positions in the
// highlight color.
func (r *Renderer) overlay(src image.Image, mask *domain.Mask) image.Image {
	size := src.Bounds().Size()
	min := src.Bounds().Min
	out := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))

	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if mask.At(x, y) {
				out.SetRGBA(x, y, r.highlight)
				continue
			}
			cr, cg, cb, _ := src.At(min.X+x, min.Y+y).RGBA()
			gray := luminance(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
			out.SetRGBA(x, y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
		}
	}
	return out
}

// luminance uses the Rec. 601 weights the original visualization used.
func luminance(r, g, b uint8) uint8 {
	return uint8(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}
