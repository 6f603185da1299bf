package gallery

import (
	"github.com/ytget/cloudshot/internal/layout"
	"github.com/ytget/cloudshot/internal/model"
	"github.com/ytget/cloudshot/internal/texture"
)

// TextRun is a positioned line of caption text
type TextRun struct {
	Text  string
	Style TextStyle
	Rect  layout.Rect
}

// Button is a positioned overlay affordance
type Button struct {
	Action Action
	Label  string
	Rect   layout.Rect
}

// Overlay is the action strip shown on a hovered card
type Overlay struct {
	Rect    layout.Rect
	Buttons []Button
}

// Card holds the draw commands for one gallery item
type Card struct {
	Record  model.CaptureRecord
	Handle  *texture.Handle
	Bounds  layout.Rect // whole card, the hover region
	Box     layout.Rect // fixed-aspect image container
	Image   layout.Rect // fitted image inside Box
	Caption []TextRun
	Hovered bool
	Overlay *Overlay // nil unless Hovered
	Height  float32  // desired height, gap excluded
}

// Frame is the output of one render pass
type Frame struct {
	Cards   []Card
	Height  float32 // total desired height including gaps
	Intents []Intent
}
