package gallery

import (
	"github.com/ytget/cloudshot/internal/hover"
	"github.com/ytget/cloudshot/internal/layout"
	"github.com/ytget/cloudshot/internal/model"
)

// Card geometry defaults
const (
	DefaultMargin        float32 = 5
	DefaultGap           float32 = 10
	DefaultAspectRatio           = 3.0 / 2.0
	DefaultIconSize      float32 = 12
	DefaultButtonPadX    float32 = 6
	DefaultButtonPadY    float32 = 2
	DefaultButtonSpacing float32 = 4
)

// Options tune card geometry and labels. Zero values take the defaults.
type Options struct {
	Margin        float32 // inner margin of the card frame
	Gap           float32 // vertical space after each card
	AspectRatio   float64 // width/height of the image box
	IconSize      float32
	ButtonPadX    float32
	ButtonPadY    float32
	ButtonSpacing float32

	ProvenanceLabel func(model.StorageKind) string
	ActionLabel     func(Action) string
}

// Renderer lays out the gallery for one frame at a time
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer, filling unset options with defaults
func NewRenderer(opts Options) *Renderer {
	if opts.Margin <= 0 {
		opts.Margin = DefaultMargin
	}
	if opts.Gap <= 0 {
		opts.Gap = DefaultGap
	}
	if opts.AspectRatio <= 0 {
		opts.AspectRatio = DefaultAspectRatio
	}
	if opts.IconSize <= 0 {
		opts.IconSize = DefaultIconSize
	}
	if opts.ButtonPadX <= 0 {
		opts.ButtonPadX = DefaultButtonPadX
	}
	if opts.ButtonPadY <= 0 {
		opts.ButtonPadY = DefaultButtonPadY
	}
	if opts.ButtonSpacing <= 0 {
		opts.ButtonSpacing = DefaultButtonSpacing
	}
	if opts.ProvenanceLabel == nil {
		opts.ProvenanceLabel = model.StorageKind.Label
	}
	if opts.ActionLabel == nil {
		opts.ActionLabel = Action.String
	}
	return &Renderer{opts: opts}
}

// Options returns the effective options
func (r *Renderer) Options() Options {
	return r.opts
}

// Render runs one frame pass over items in order. Items without a texture, or
// whose geometry is degenerate, are skipped. The hover tracker is updated for
// every card drawn and pruned of everything else.
func (r *Renderer) Render(items []model.CaptureRecord, cache Lookuper, tracker *hover.Tracker, width float32, s Surface) Frame {
	var frame Frame
	var queue Queue

	tracker.Begin()
	y := float32(0)
	for _, record := range items {
		card, ok := r.layoutCard(record, cache, width, y, s)
		if !ok {
			continue
		}

		card.Hovered = tracker.Update(record.DisplayName, s.PointerOver(card.Bounds))
		if card.Hovered {
			card.Overlay = r.layoutOverlay(card, s)
			for _, button := range card.Overlay.Buttons {
				if s.Activated(button.Rect) {
					queue.Add(IntentFor(button.Action, record))
				}
			}
		}

		frame.Cards = append(frame.Cards, card)
		y += card.Height + r.opts.Gap
	}
	tracker.End()

	frame.Height = y
	frame.Intents = queue.Drain()
	return frame
}

// Measure returns the total height Render would declare for the same input,
// without touching hover state.
func (r *Renderer) Measure(items []model.CaptureRecord, cache Lookuper, width float32, s Surface) float32 {
	y := float32(0)
	for _, record := range items {
		card, ok := r.layoutCard(record, cache, width, y, s)
		if !ok {
			continue
		}
		y += card.Height + r.opts.Gap
	}
	return y
}

// layoutCard places a card's frame, image box, fitted image and caption with
// its top edge at y.
func (r *Renderer) layoutCard(record model.CaptureRecord, cache Lookuper, width, y float32, s Surface) (Card, bool) {
	handle, ok := cache.Lookup(record.DisplayName)
	if !ok {
		return Card{}, false
	}

	m := r.opts.Margin
	boxSize := layout.AspectBox(width-2*m, r.opts.AspectRatio)
	box := layout.Rect{Min: layout.Point{X: m, Y: y + m}, Size: boxSize}

	img, err := layout.FitIn(box, handle.Size)
	if err != nil {
		return Card{}, false
	}

	name := record.DisplayName
	provenance := r.opts.ProvenanceLabel(record.Storage)
	nameSize := s.MeasureText(name, TextStyleBody)
	provSize := s.MeasureText(provenance, TextStyleSmall)

	top := box.Max().Y
	caption := []TextRun{
		{Text: name, Style: TextStyleBody, Rect: layout.NewRect(box.Min.X, top, minf(nameSize.Width, boxSize.Width), nameSize.Height)},
		{Text: provenance, Style: TextStyleSmall, Rect: layout.NewRect(box.Min.X, top+nameSize.Height, minf(provSize.Width, boxSize.Width), provSize.Height)},
	}

	height := 2*m + boxSize.Height + nameSize.Height + provSize.Height
	return Card{
		Record:  record,
		Handle:  handle,
		Bounds:  layout.NewRect(0, y, width, height),
		Box:     box,
		Image:   img,
		Caption: caption,
		Height:  height,
	}, true
}

// layoutOverlay builds the action strip: it starts at the bottom of the image
// box, is as tall as the measured caption, and stacks buttons right to left.
func (r *Renderer) layoutOverlay(card Card, s Surface) *Overlay {
	var captionHeight float32
	for _, run := range card.Caption {
		captionHeight += run.Rect.Size.Height
	}
	strip := layout.NewRect(card.Box.Min.X, card.Box.Max().Y, card.Box.Size.Width, captionHeight)

	overlay := &Overlay{Rect: strip}
	right := strip.Max().X
	for _, action := range OverlayActions() {
		label := r.opts.ActionLabel(action)

		var content layout.Size
		if action.IsIcon() {
			content = layout.NewSize(r.opts.IconSize, r.opts.IconSize)
		} else {
			content = s.MeasureText(label, TextStyleButton)
		}
		size := layout.NewSize(content.Width+2*r.opts.ButtonPadX, content.Height+2*r.opts.ButtonPadY)

		right -= size.Width
		rect := layout.NewRect(right, strip.Min.Y+(strip.Size.Height-size.Height)/2, size.Width, size.Height)
		overlay.Buttons = append(overlay.Buttons, Button{Action: action, Label: label, Rect: rect})
		right -= r.opts.ButtonSpacing
	}
	return overlay
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
