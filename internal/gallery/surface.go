package gallery

import (
	"github.com/ytget/cloudshot/internal/layout"
	"github.com/ytget/cloudshot/internal/texture"
)

// TextStyle selects the font treatment of a text run
type TextStyle int

const (
	TextStyleBody TextStyle = iota
	TextStyleSmall
	TextStyleButton
)

// Surface is what a render pass needs from the host toolkit. Rectangles are
// in the gallery's own coordinate space.
type Surface interface {
	// PointerOver reports whether the pointer is inside r
	PointerOver(r layout.Rect) bool
	// Activated reports whether a primary press landed inside r since the previous pass
	Activated(r layout.Rect) bool
	// MeasureText returns the size text occupies when drawn in style
	MeasureText(text string, style TextStyle) layout.Size
}

// Lookuper resolves a display name to its texture
type Lookuper interface {
	Lookup(key string) (*texture.Handle, bool)
}
