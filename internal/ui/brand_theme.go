package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BrandTheme is a compact dark-leaning theme with the CloudShot yellow as primary colour
type BrandTheme struct{}

// NewBrandTheme creates a new brand theme
func NewBrandTheme() fyne.Theme {
	return &BrandTheme{}
}

// Color returns theme colors
func (t *BrandTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return BrandYellow
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 27, G: 27, B: 27, A: 255}
		}
		return color.RGBA{R: 248, G: 248, B: 248, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 230, G: 230, B: 230, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	case theme.ColorNameSeparator:
		if variant == theme.VariantDark {
			return color.RGBA{R: 70, G: 70, B: 70, A: 255}
		}
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BrandTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BrandTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *BrandTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
