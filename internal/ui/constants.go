package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconMore     = "…"
)

// Logo text, drawn as two runs
const (
	LogoCloud = "CLOUD"
	LogoShot  = "SHOT"
)

// Brand colours
var (
	BrandYellow  = color.NRGBA{R: 0xff, G: 0xc4, B: 0x00, A: 0xff}
	OverlayShade = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb4}
	ButtonShade  = color.NRGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff}
)

// Card frame styling
const (
	CardStrokeWidth  float32 = 0.5
	CardCornerRadius float32 = 5
	ButtonRadius     float32 = 3
)

// Layout sizing
const (
	GalleryMinWidth float32 = 240
	WindowWidth     float32 = 340
	WindowHeight    float32 = 640
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 260
	ToastMargin   float32 = 12
	ToastAutoHide         = 3 * time.Second
)
