package ports

import (
	"image"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

// DiffRenderer builds the side-by-side composite for a differing pair.
// Both images and the mask must share the same dimensions.
type DiffRenderer interface {
	Render(a, b image.Image, mask *domain.Mask) image.Image
}
