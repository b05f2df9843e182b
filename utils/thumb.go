package utils

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

type ImageDims struct {
	NewX int
	NewY int
	OldX int
	OldY int
}

// CreateThumb decodes the image and returns a jpeg thumbnail bounded by
// size in both dimensions, along with the original and thumb
// dimensions.
func CreateThumb(size uint, reader io.Reader) ([]byte, ImageDims, error) {
	var dims ImageDims
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, dims, err
	}
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return nil, dims, err
	}
	rect := thumb.Bounds().Size()
	dims.NewX = rect.X
	dims.NewY = rect.Y
	rect = img.Bounds().Size()
	dims.OldX = rect.X
	dims.OldY = rect.Y
	return buf.Bytes(), dims, nil
}
