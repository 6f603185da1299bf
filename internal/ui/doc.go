// Package ui contains the Fyne-based desktop user interface for the application.
// It hosts the gallery render pass inside a custom widget, draws the header and
// footer chrome, and applies the intents a pass emits. All UI strings are
// localized via Localization.
package ui
