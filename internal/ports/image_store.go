package ports

import "image"

// ImageStore loads and saves images on some backing store (e.g., filesystem).
type ImageStore interface {
	Load(path string) (image.Image, error)
	Save(path string, img image.Image) error
}
