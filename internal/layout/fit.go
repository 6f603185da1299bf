package layout

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is returned when a container or image has no area
var ErrDegenerateInput = errors.New("degenerate layout input")

// FitResult describes where a scaled image is drawn inside its container
type FitResult struct {
	Content Rect   // relative to the container origin
	Padding Insets // space left around Content
}

// Size returns the drawn image size
func (fr FitResult) Size() Size {
	return fr.Content.Size
}

// Fit scales native to the largest size that fits inside container without
// cropping or distortion and centres it. When the image is relatively wider
// than the box the width is constrained; otherwise, ties included, the height is.
func Fit(container, native Size) (FitResult, error) {
	if !container.IsPositive() {
		return FitResult{}, fmt.Errorf("container %vx%v: %w", container.Width, container.Height, ErrDegenerateInput)
	}
	if !native.IsPositive() {
		return FitResult{}, fmt.Errorf("image %vx%v: %w", native.Width, native.Height, ErrDegenerateInput)
	}

	cw, ch := float64(container.Width), float64(container.Height)
	imageRatio := native.Ratio()
	boxRatio := container.Ratio()

	var w, h float64
	if imageRatio > boxRatio {
		w, h = cw, cw/imageRatio
	} else {
		w, h = ch*imageRatio, ch
	}
	// Rounding must never push the content past the container.
	if w > cw {
		w = cw
	}
	if h > ch {
		h = ch
	}

	padX := (cw - w) / 2
	padY := (ch - h) / 2

	return FitResult{
		Content: NewRect(float32(padX), float32(padY), float32(w), float32(h)),
		Padding: Insets{
			Top:    float32(padY),
			Bottom: float32(padY),
			Left:   float32(padX),
			Right:  float32(padX),
		},
	}, nil
}

// FitIn is Fit with the content rect expressed in the coordinates of box
func FitIn(box Rect, native Size) (Rect, error) {
	res, err := Fit(box.Size, native)
	if err != nil {
		return Rect{}, err
	}
	return res.Content.Translate(box.Min), nil
}
