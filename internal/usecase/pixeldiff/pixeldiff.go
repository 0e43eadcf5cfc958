// Package pixeldiff compares two decoded images pixel by pixel and produces
// the boolean difference mask consumed by the composite renderer.
package pixeldiff

import (
	"image"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

// Result is the outcome of comparing two images.
type Result struct {
	// Identical is true when no pixel exceeds the threshold.
	Identical bool
	// SizeMismatch is true when the images have different dimensions. The
	// pair counts as different and Mask is nil; no alignment is attempted.
	SizeMismatch bool
	// DiffPixels is the number of positions where the mask is set.
	DiffPixels uint64
	// MaxDelta is the largest per-channel delta observed across all pixels.
	MaxDelta uint8
	// Mask marks the differing positions. nil on size mismatch.
	Mask *domain.Mask
}

// Compare computes the per-pixel absolute channel delta between a and b.
// A pixel is considered different when any of its R, G, B or A deltas
// exceeds threshold; threshold 0 means exact comparison.
func Compare(a, b image.Image, threshold uint8) Result {
	asz := a.Bounds().Size()
	bsz := b.Bounds().Size()
	if asz != bsz {
		return Result{SizeMismatch: true}
	}

	amin := a.Bounds().Min
	bmin := b.Bounds().Min

	res := Result{Mask: domain.NewMask(asz.X, asz.Y)}
	for y := 0; y < asz.Y; y++ {
		for x := 0; x < asz.X; x++ {
			ar, ag, ab, aa := a.At(amin.X+x, amin.Y+y).RGBA()
			br, bg, bb, ba := b.At(bmin.X+x, bmin.Y+y).RGBA()

			d := delta8(ar, br)
			if v := delta8(ag, bg); v > d {
				d = v
			}
			if v := delta8(ab, bb); v > d {
				d = v
			}
			if v := delta8(aa, ba); v > d {
				d = v
			}

			if d > res.MaxDelta {
				res.MaxDelta = d
			}
			if d > threshold {
				res.Mask.Set(x, y, true)
				res.DiffPixels++
			}
		}
	}

	res.Identical = res.DiffPixels == 0
	return res
}

// delta8 reduces the 16-bit channel values returned by RGBA to 8 bits and
// takes their absolute difference.
func delta8(x, y uint32) uint8 {
	a := uint8(x >> 8)
	b := uint8(y >> 8)
	if a > b {
		return a - b
	}
	return b - a
}
