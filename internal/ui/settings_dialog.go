package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cloudshot/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(reload bool)

	// UI components
	capturesDirEntry *widget.Entry
	historyEntry     *widget.Entry
	languageSelect   *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved is told
// whether the saved values need the capture list reloaded.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(reload bool)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.capturesDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	capturesDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.capturesDirEntry)

	sd.historyEntry = widget.NewEntry()
	sd.historyEntry.SetPlaceHolder("history.toml")
	browseFileBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseHistory)
	historyRow := container.NewBorder(nil, nil, nil, browseFileBtn, sd.historyEntry)

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyCapturesDirectory)+":"),
		capturesDirRow,

		widget.NewLabel(l.GetText(KeyHistoryFile)+":"),
		historyRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.capturesDirEntry.SetText(sd.settings.GetCapturesDirectory())
	sd.historyEntry.SetText(sd.settings.GetHistoryFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.capturesDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onBrowseHistory() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.historyEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	reload := sd.apply()
	if sd.onSaved != nil {
		sd.onSaved(reload)
	}
}

// apply stores the form values and reports whether captures must be reloaded
func (sd *SettingsDialog) apply() bool {
	oldDir := sd.settings.GetCapturesDirectory()
	oldHistory := sd.settings.GetHistoryFile()

	sd.settings.SetCapturesDirectory(sd.capturesDirEntry.Text)
	sd.settings.SetHistoryFile(sd.historyEntry.Text)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	return sd.settings.GetCapturesDirectory() != oldDir || sd.settings.GetHistoryFile() != oldHistory
}
