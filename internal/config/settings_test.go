package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCapturesDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetCapturesDirectory()
	if dir == "" {
		t.Error("Captures directory should not be empty")
	}
	if app.Preferences().String(KeyCapturesDir) != dir {
		t.Error("Default captures directory should be persisted")
	}

	// Test setting custom value
	customDir := filepath.Join("custom", "captures")
	settings.SetCapturesDirectory(customDir)

	if got := settings.GetCapturesDirectory(); got != customDir {
		t.Errorf("Expected captures directory %s, got %s", customDir, got)
	}

	// Blank values keep the previous directory
	settings.SetCapturesDirectory("  ")
	if got := settings.GetCapturesDirectory(); got != customDir {
		t.Errorf("Blank directory should be ignored, got %s", got)
	}
}

func TestHistoryFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetHistoryFile(); got != "" {
		t.Errorf("Expected no history file by default, got %s", got)
	}

	settings.SetHistoryFile(" history.toml ")
	if got := settings.GetHistoryFile(); got != "history.toml" {
		t.Errorf("Expected history.toml, got %s", got)
	}

	settings.SetHistoryFile("")
	if got := settings.GetHistoryFile(); got != "" {
		t.Errorf("Expected cleared history file, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
	}

	// Unknown codes fall back
	settings.SetLanguage("xx")
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected fallback to %s, got %s", DefaultLanguage, got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
