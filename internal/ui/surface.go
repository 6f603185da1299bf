package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/layout"
)

// fyneSurface answers the render pass's input and text queries from the
// pointer state collected by GalleryView.
type fyneSurface struct {
	pointer *layout.Point
	taps    []layout.Point
}

func (s *fyneSurface) PointerOver(r layout.Rect) bool {
	return s.pointer != nil && r.Contains(*s.pointer)
}

func (s *fyneSurface) Activated(r layout.Rect) bool {
	for _, tap := range s.taps {
		if r.Contains(tap) {
			return true
		}
	}
	return false
}

func (s *fyneSurface) MeasureText(text string, style gallery.TextStyle) layout.Size {
	size := fyne.MeasureText(text, textSize(style), textStyle(style))
	return layout.NewSize(size.Width, size.Height)
}

func textSize(style gallery.TextStyle) float32 {
	switch style {
	case gallery.TextStyleSmall, gallery.TextStyleButton:
		return theme.CaptionTextSize()
	default:
		return theme.TextSize()
	}
}

func textStyle(style gallery.TextStyle) fyne.TextStyle {
	return fyne.TextStyle{Bold: style == gallery.TextStyleButton}
}

func toPoint(pos fyne.Position) layout.Point {
	return layout.Point{X: pos.X, Y: pos.Y}
}

func toPosition(p layout.Point) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

func toSize(s layout.Size) fyne.Size {
	return fyne.NewSize(s.Width, s.Height)
}

func place(obj fyne.CanvasObject, pos layout.Point, size layout.Size) {
	obj.Move(toPosition(pos))
	obj.Resize(toSize(size))
}
