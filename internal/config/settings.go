package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/cloudshot/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyCapturesDir = "captures_directory"
	KeyHistoryFile = "history_file"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultLanguage     = "system"
	FallbackCapturesDir = "/tmp/cloudshot"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCapturesDirectory returns the directory capture images are read from
func (s *Settings) GetCapturesDirectory() string {
	dir := s.app.Preferences().String(KeyCapturesDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeCapturesDir()
		if err != nil {
			defaultDir = FallbackCapturesDir
		}
		s.SetCapturesDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetCapturesDirectory sets the captures directory. Empty values are ignored.
func (s *Settings) SetCapturesDirectory(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	s.app.Preferences().SetString(KeyCapturesDir, filepath.Clean(dir))
}

// GetHistoryFile returns the capture-history file, or "" for the built-in samples
func (s *Settings) GetHistoryFile() string {
	return s.app.Preferences().String(KeyHistoryFile)
}

// SetHistoryFile sets the capture-history file. An empty value clears it.
func (s *Settings) SetHistoryFile(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		path = filepath.Clean(path)
	}
	s.app.Preferences().SetString(KeyHistoryFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes fall back to the default.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
