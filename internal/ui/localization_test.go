package ui

import (
	"testing"

	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/model"
)

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"},
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if got := l.GetCurrentLanguage(); got != test.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", test.lang, test.expected, got)
		}
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Language %s has no texts", lang)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown key should fall back to itself, got %s", got)
	}
}

func TestLocalization_Labels(t *testing.T) {
	l := NewLocalization()

	if got := l.ProvenanceLabel(model.StorageLocal); got != "Local" {
		t.Errorf("Expected Local, got %s", got)
	}
	if got := l.ProvenanceLabel(model.StorageClipboard); got != "Clipboard" {
		t.Errorf("Expected Clipboard, got %s", got)
	}
	for _, action := range gallery.OverlayActions() {
		if got := l.ActionLabel(action); got != action.String() {
			t.Errorf("English label for %v: expected %s, got %s", action, action.String(), got)
		}
	}

	l.SetLanguage("ru")
	if got := l.ActionLabel(gallery.ActionOpen); got != "Открыть" {
		t.Errorf("Expected Открыть, got %s", got)
	}
	if got := l.ProvenanceLabel(model.StorageClipboard); got != "Буфер обмена" {
		t.Errorf("Expected Буфер обмена, got %s", got)
	}
}
