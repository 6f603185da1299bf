package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cloudshot/internal/config"
	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	actions      *Actions

	items   []model.CaptureRecord
	cache   gallery.Lookuper
	gallery *GalleryView

	closeBtn   *widget.Button
	captureBtn *widget.Button
	recordBtn  *widget.Button
	emptyLabel *widget.Label
}

// NewRootUI creates and initializes the main UI over an already populated texture cache
func NewRootUI(window fyne.Window, app fyne.App, items []model.CaptureRecord, cache gallery.Lookuper) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		items:        items,
		cache:        cache,
	}
	ui.actions = NewActions(app, localization, ui.showNotification)

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadAppIcon(); err == nil {
		window.SetIcon(icon)
	}

	ui.gallery = NewGalleryView(items, cache, ui.newRenderer())
	ui.gallery.OnIntents = ui.actions.Apply

	ui.setupUI()
	log.Printf("RootUI initialized with %d capture records", len(items))
	return ui
}

// Gallery returns the gallery widget
func (ui *RootUI) Gallery() *GalleryView {
	return ui.gallery
}

// Actions returns the intent handlers
func (ui *RootUI) Actions() *Actions {
	return ui.actions
}

func (ui *RootUI) newRenderer() *gallery.Renderer {
	return gallery.NewRenderer(gallery.Options{
		ProvenanceLabel: ui.localization.ProvenanceLabel,
		ActionLabel:     ui.localization.ActionLabel,
	})
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	content := container.NewBorder(
		ui.createHeader(),
		ui.createFooter(),
		nil,
		nil,
		ui.createCenter(),
	)

	ui.window.SetContent(content)
}

// createHeader builds the logo and the close button
func (ui *RootUI) createHeader() fyne.CanvasObject {
	cloud := canvas.NewText(LogoCloud, themeColor(theme.ColorNameForeground))
	cloud.TextStyle = fyne.TextStyle{Bold: true}
	cloud.TextSize = theme.TextHeadingSize()

	shot := canvas.NewText(LogoShot, BrandYellow)
	shot.TextStyle = fyne.TextStyle{Bold: true}
	shot.TextSize = theme.TextHeadingSize()

	logo := container.New(&tightRow{}, cloud, shot)

	ui.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		ui.gallery.Enqueue(gallery.QuitIntent())
	})
	ui.closeBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, widget.NewSeparator(), logo, ui.closeBtn)
}

// createCenter wraps the gallery in a vertical scroll area
func (ui *RootUI) createCenter() fyne.CanvasObject {
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoCaptures))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	if ui.loadedCount() > 0 {
		ui.emptyLabel.Hide()
	}

	return container.NewStack(container.NewVScroll(ui.gallery), ui.emptyLabel)
}

// loadedCount returns how many items have a texture to show
func (ui *RootUI) loadedCount() int {
	n := 0
	for _, item := range ui.items {
		if _, ok := ui.cache.Lookup(item.DisplayName); ok {
			n++
		}
	}
	return n
}

// createFooter builds the capture and record buttons. Capturing is not
// available in this build, so both stay disabled.
func (ui *RootUI) createFooter() fyne.CanvasObject {
	ui.captureBtn = widget.NewButton(ui.localization.GetText(KeyCapture), nil)
	ui.captureBtn.Disable()
	ui.recordBtn = widget.NewButton(ui.localization.GetText(KeyRecord), nil)
	ui.recordBtn.Disable()

	return container.NewBorder(widget.NewSeparator(), nil, nil, nil,
		container.NewGridWithColumns(2, ui.captureBtn, ui.recordBtn))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.captureBtn.SetText(ui.localization.GetText(KeyCapture))
	ui.recordBtn.SetText(ui.localization.GetText(KeyRecord))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoCaptures))

	// Captions and button labels are baked into the renderer options
	ui.gallery.SetRenderer(ui.newRenderer())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(reload bool) {
		ui.onLanguageChange(ui.settings.GetLanguage())
		if reload {
			ui.showNotification(ui.localization.GetText(KeyRestartRequired))
			return
		}
		ui.showNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

// showNotification shows a short-lived message at the bottom of the window
func (ui *RootUI) showNotification(message string) {
	c := ui.window.Canvas()
	if c == nil {
		log.Printf("Notification without canvas: %s", message)
		return
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	popup := widget.NewPopUp(label, c)

	size := fyne.NewSize(ToastWidth, label.MinSize().Height)
	popup.Resize(size)
	canvasSize := c.Size()
	popup.Move(fyne.NewPos((canvasSize.Width-size.Width)/2, canvasSize.Height-size.Height-ToastMargin))
	popup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

// tightRow lays objects out left to right with no padding, vertically centred
type tightRow struct{}

func (r *tightRow) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	x := float32(0)
	for _, o := range objects {
		ms := o.MinSize()
		o.Resize(ms)
		o.Move(fyne.NewPos(x, (size.Height-ms.Height)/2))
		x += ms.Width
	}
}

func (r *tightRow) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range objects {
		ms := o.MinSize()
		w += ms.Width
		if ms.Height > h {
			h = ms.Height
		}
	}
	return fyne.NewSize(w, h)
}
