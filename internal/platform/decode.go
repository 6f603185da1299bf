package platform

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelBuffer is a decoded image in 8-bit RGBA with unmultiplied alpha
type PixelBuffer struct {
	Image  *image.NRGBA
	Width  int
	Height int
}

// Loader decodes the image file at path
type Loader func(path string) (*PixelBuffer, error)

// Load reads and decodes an image file. Any failure is a *DecodeError.
func Load(path string) (*PixelBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Kind: DecodeUnreadable, Err: err}
	}
	defer file.Close()

	src, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, &DecodeError{Path: path, Kind: DecodeUnsupported, Err: err}
		}
		return nil, &DecodeError{Path: path, Kind: DecodeCorrupt, Err: err}
	}

	return toPixelBuffer(path, src)
}

// toPixelBuffer converts any decoded image to an origin-anchored NRGBA buffer
func toPixelBuffer(path string, src image.Image) (*PixelBuffer, error) {
	bounds := src.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, &DecodeError{
			Path: path,
			Kind: DecodeCorrupt,
			Err:  fmt.Errorf("image has no pixels (%dx%d)", bounds.Dx(), bounds.Dy()),
		}
	}

	dst, ok := src.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		dst = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	}

	return &PixelBuffer{
		Image:  dst,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
