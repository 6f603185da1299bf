package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
)

// Touch devices have no hover, so a touch stands in for the pointer: the
// touched card shows its overlay until the touch is cancelled or another card
// is touched.

var _ mobile.Touchable = (*GalleryView)(nil)

// TouchDown moves the emulated pointer to the touch position
func (v *GalleryView) TouchDown(event *mobile.TouchEvent) {
	v.setPointer(event.Position)
}

// TouchUp keeps the emulated pointer so the overlay stays reachable
func (v *GalleryView) TouchUp(event *mobile.TouchEvent) {}

// TouchCancel clears the emulated pointer
func (v *GalleryView) TouchCancel(event *mobile.TouchEvent) {
	v.clearPointer()
}
