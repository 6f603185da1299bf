package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/hover"
	"github.com/ytget/cloudshot/internal/layout"
	"github.com/ytget/cloudshot/internal/model"
)

// GalleryView hosts the gallery render pass in a Fyne widget. Every layout or
// refresh runs one pass; pointer and tap events are collected for the next one.
type GalleryView struct {
	widget.BaseWidget

	items    []model.CaptureRecord
	cache    gallery.Lookuper
	renderer *gallery.Renderer
	tracker  *hover.Tracker

	pointer *fyne.Position
	taps    []fyne.Position
	pending gallery.Queue
	frame   gallery.Frame

	// OnIntents receives everything queued during a pass, after the pass
	OnIntents func([]gallery.Intent)
}

// Compile-time checks
var (
	_ desktop.Hoverable = (*GalleryView)(nil)
	_ fyne.Tappable     = (*GalleryView)(nil)
)

// NewGalleryView creates a gallery over items whose textures live in cache
func NewGalleryView(items []model.CaptureRecord, cache gallery.Lookuper, renderer *gallery.Renderer) *GalleryView {
	v := &GalleryView{
		items:    items,
		cache:    cache,
		renderer: renderer,
		tracker:  hover.NewTracker(),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetRenderer swaps the pass configuration, e.g. after a language change
func (v *GalleryView) SetRenderer(renderer *gallery.Renderer) {
	v.renderer = renderer
	v.Refresh()
}

// Enqueue adds an intent from outside the gallery to the next pass's output
func (v *GalleryView) Enqueue(intent gallery.Intent) {
	v.pending.Add(intent)
	v.Refresh()
}

// Frame returns the result of the most recent pass
func (v *GalleryView) Frame() gallery.Frame {
	return v.frame
}

// Hovered returns the keys of currently hovered captures
func (v *GalleryView) Hovered() []string {
	return v.tracker.Keys()
}

// MouseIn implements desktop.Hoverable
func (v *GalleryView) MouseIn(e *desktop.MouseEvent) {
	v.setPointer(e.Position)
}

// MouseMoved implements desktop.Hoverable
func (v *GalleryView) MouseMoved(e *desktop.MouseEvent) {
	v.setPointer(e.Position)
}

// MouseOut implements desktop.Hoverable
func (v *GalleryView) MouseOut() {
	v.clearPointer()
}

// Tapped records a primary press for the next pass
func (v *GalleryView) Tapped(e *fyne.PointEvent) {
	v.taps = append(v.taps, e.Position)
	v.Refresh()
}

func (v *GalleryView) setPointer(pos fyne.Position) {
	v.pointer = &pos
	v.Refresh()
}

func (v *GalleryView) clearPointer() {
	v.pointer = nil
	v.Refresh()
}

// pass renders one frame at width and hands the queued intents to OnIntents
func (v *GalleryView) pass(width float32) gallery.Frame {
	surface := &fyneSurface{}
	if v.pointer != nil {
		p := toPoint(*v.pointer)
		surface.pointer = &p
	}
	for _, tap := range v.taps {
		surface.taps = append(surface.taps, toPoint(tap))
	}
	v.taps = nil

	frame := v.renderer.Render(v.items, v.cache, v.tracker, width, surface)
	v.frame = frame

	intents := append(v.pending.Drain(), frame.Intents...)
	if len(intents) > 0 && v.OnIntents != nil {
		v.OnIntents(intents)
	}
	return frame
}

// CreateRenderer creates the widget renderer
func (v *GalleryView) CreateRenderer() fyne.WidgetRenderer {
	return &galleryViewRenderer{
		view:   v,
		images: make(map[uuid.UUID]*canvas.Image),
	}
}

// galleryViewRenderer turns frames into canvas objects
type galleryViewRenderer struct {
	view    *GalleryView
	images  map[uuid.UUID]*canvas.Image
	objects []fyne.CanvasObject
}

// Layout runs a pass for the new width
func (r *galleryViewRenderer) Layout(size fyne.Size) {
	r.draw(r.view.pass(size.Width))
}

// MinSize reports the measured height of all cards at the current width
func (r *galleryViewRenderer) MinSize() fyne.Size {
	width := r.view.Size().Width
	if width < GalleryMinWidth {
		width = GalleryMinWidth
	}
	height := r.view.renderer.Measure(r.view.items, r.view.cache, width, &fyneSurface{})
	return fyne.NewSize(GalleryMinWidth, height)
}

// Refresh runs a pass at the current size and repaints
func (r *galleryViewRenderer) Refresh() {
	r.draw(r.view.pass(r.view.Size().Width))
	canvas.Refresh(r.view)
}

// Objects returns the canvas objects of the last frame
func (r *galleryViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *galleryViewRenderer) Destroy() {}

func (r *galleryViewRenderer) draw(frame gallery.Frame) {
	fg := themeColor(theme.ColorNameForeground)
	muted := themeColor(theme.ColorNameDisabled)
	stroke := themeColor(theme.ColorNameSeparator)

	objects := make([]fyne.CanvasObject, 0, len(frame.Cards)*6)
	for _, card := range frame.Cards {
		border := canvas.NewRectangle(color.Transparent)
		border.StrokeWidth = CardStrokeWidth
		border.StrokeColor = stroke
		if card.Hovered {
			border.StrokeColor = BrandYellow
		}
		border.CornerRadius = CardCornerRadius
		place(border, card.Bounds.Min, card.Bounds.Size)
		objects = append(objects, border)

		img := r.image(card.Handle.ID, card)
		place(img, card.Image.Min, card.Image.Size)
		objects = append(objects, img)

		for i, run := range card.Caption {
			text := canvas.NewText(run.Text, fg)
			text.TextSize = textSize(run.Style)
			text.TextStyle = textStyle(run.Style)
			if i > 0 {
				text.Color = muted
			}
			place(text, run.Rect.Min, run.Rect.Size)
			objects = append(objects, text)
		}

		if card.Overlay != nil {
			objects = append(objects, r.overlay(card.Overlay)...)
		}
	}
	r.objects = objects
}

// image returns the canvas image for a texture, reusing it across frames
func (r *galleryViewRenderer) image(id uuid.UUID, card gallery.Card) *canvas.Image {
	if img, ok := r.images[id]; ok {
		return img
	}
	img := canvas.NewImageFromImage(card.Handle.Image)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth
	r.images[id] = img
	return img
}

func (r *galleryViewRenderer) overlay(o *gallery.Overlay) []fyne.CanvasObject {
	shade := canvas.NewRectangle(OverlayShade)
	place(shade, o.Rect.Min, o.Rect.Size)
	objects := []fyne.CanvasObject{shade}

	for _, button := range o.Buttons {
		bg := canvas.NewRectangle(ButtonShade)
		bg.CornerRadius = ButtonRadius
		place(bg, button.Rect.Min, button.Rect.Size)
		objects = append(objects, bg)

		opts := r.view.renderer.Options()
		inner := layout.NewRect(
			button.Rect.Min.X+opts.ButtonPadX,
			button.Rect.Min.Y+opts.ButtonPadY,
			button.Rect.Size.Width-2*opts.ButtonPadX,
			button.Rect.Size.Height-2*opts.ButtonPadY,
		)

		if button.Action.IsIcon() {
			icon := canvas.NewImageFromResource(theme.MoreHorizontalIcon())
			icon.FillMode = canvas.ImageFillContain
			place(icon, inner.Min, inner.Size)
			objects = append(objects, icon)
			continue
		}

		label := canvas.NewText(button.Label, color.White)
		label.TextSize = textSize(gallery.TextStyleButton)
		label.TextStyle = textStyle(gallery.TextStyleButton)
		place(label, inner.Min, inner.Size)
		objects = append(objects, label)
	}
	return objects
}

func themeColor(name fyne.ThemeColorName) color.Color {
	settings := fyne.CurrentApp().Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}
