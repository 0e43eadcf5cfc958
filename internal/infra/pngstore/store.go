// Package pngstore implements ports.ImageStore over PNG files on disk.
package pngstore

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/ports"
)

type Store struct{}

func New() *Store {
	return &Store{}
}

var _ ports.ImageStore = (*Store)(nil)

// Load decodes a PNG and normalizes it to an RGBA image anchored at the
// origin, so downstream pixel work does not deal with exotic color models
// or offset bounds.
func (s *Store) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pngstore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pngstore.load",
			Kind: domain.KindDecode,
			Path: path,
			Err:  err,
		}
	}

	size := img.Bounds().Size()
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	xdraw.Copy(rgba, image.Point{}, img, img.Bounds(), xdraw.Src, nil)
	return rgba, nil
}

// Save encodes img as PNG at path, truncating any existing file.
func (s *Store) Save(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &domain.OpError{
			Op:   "pngstore.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &domain.OpError{
			Op:   "pngstore.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := f.Close(); err != nil {
		return &domain.OpError{
			Op:   "pngstore.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
