package service

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// jpegQuality is the encoder quality for JPEG variants.
const jpegQuality = 80

// Resizer scales images to a target width.
type Resizer interface {
	// Resize decodes src, scales it to width keeping the aspect ratio and
	// encodes it in format. Images narrower than width are re-encoded at
	// their own size.
	Resize(src io.Reader, width int, format imaging.Format) ([]byte, error)
}

// imagingResizer implements Resizer using the imaging library.
type imagingResizer struct{}

// NewImagingResizer creates a Resizer backed by disintegration/imaging.
func NewImagingResizer() Resizer {
	return imagingResizer{}
}

func (imagingResizer) Resize(src io.Reader, width int, format imaging.Format) ([]byte, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Never upscale.
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
