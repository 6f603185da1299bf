package ui

import (
	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyCapture           = "capture"
	KeyRecord            = "record"
	KeyClose             = "close"
	KeyOpen              = "open"
	KeyCopyPath          = "copy_path"
	KeyReveal            = "reveal"
	KeyStorageLocal      = "storage_local"
	KeyStorageClipboard  = "storage_clipboard"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyCapturesDirectory = "captures_directory"
	KeyHistoryFile       = "history_file"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyPathCopied        = "path_copied"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorRevealing    = "error_revealing_file"
	KeyNoCaptures        = "no_captures"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// ProvenanceLabel returns the caption line for a storage kind
func (l *Localization) ProvenanceLabel(kind model.StorageKind) string {
	switch kind {
	case model.StorageLocal:
		return l.GetText(KeyStorageLocal)
	case model.StorageClipboard:
		return l.GetText(KeyStorageClipboard)
	default:
		return kind.Label()
	}
}

// ActionLabel returns the overlay button text for an action
func (l *Localization) ActionLabel(action gallery.Action) string {
	switch action {
	case gallery.ActionOpen:
		return l.GetText(KeyOpen)
	case gallery.ActionCopyPath:
		return l.GetText(KeyCopyPath)
	case gallery.ActionReveal:
		return l.GetText(KeyReveal)
	default:
		return action.String()
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "CloudShot",
		KeyCapture:           "CAPTURE",
		KeyRecord:            "RECORD",
		KeyClose:             "Close",
		KeyOpen:              "Open",
		KeyCopyPath:          "Copy Path",
		KeyReveal:            "more",
		KeyStorageLocal:      "Local",
		KeyStorageClipboard:  "Clipboard",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyCapturesDirectory: "Captures Directory",
		KeyHistoryFile:       "History File",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved",
		KeyRestartRequired:   "Restart CloudShot to reload captures",
		KeyPathCopied:        "Path copied to clipboard",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorRevealing:    "Error revealing file",
		KeyNoCaptures:        "No captures to show",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "CloudShot",
		KeyCapture:           "СНИМОК",
		KeyRecord:            "ЗАПИСЬ",
		KeyClose:             "Закрыть",
		KeyOpen:              "Открыть",
		KeyCopyPath:          "Копировать путь",
		KeyReveal:            "ещё",
		KeyStorageLocal:      "Локально",
		KeyStorageClipboard:  "Буфер обмена",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyCapturesDirectory: "Папка снимков",
		KeyHistoryFile:       "Файл истории",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки сохранены",
		KeyRestartRequired:   "Перезапустите CloudShot, чтобы перечитать снимки",
		KeyPathCopied:        "Путь скопирован в буфер обмена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorRevealing:    "Ошибка показа файла",
		KeyNoCaptures:        "Нет снимков",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "CloudShot",
		KeyCapture:           "CAPTURAR",
		KeyRecord:            "GRAVAR",
		KeyClose:             "Fechar",
		KeyOpen:              "Abrir",
		KeyCopyPath:          "Copiar Caminho",
		KeyReveal:            "mais",
		KeyStorageLocal:      "Local",
		KeyStorageClipboard:  "Área de Transferência",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyCapturesDirectory: "Diretório de Capturas",
		KeyHistoryFile:       "Arquivo de Histórico",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas",
		KeyRestartRequired:   "Reinicie o CloudShot para recarregar as capturas",
		KeyPathCopied:        "Caminho copiado",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorRevealing:    "Erro ao mostrar arquivo",
		KeyNoCaptures:        "Nenhuma captura",
	}
}
