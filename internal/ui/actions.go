package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/cloudshot/internal/gallery"
	"github.com/ytget/cloudshot/internal/platform"
)

// ErrNoPath is returned for file intents that carry no path
var ErrNoPath = errors.New("no file path provided")

// Actions applies the intents of a render pass. Each side effect is a
// replaceable function so the shell can be exercised without a desktop.
type Actions struct {
	Quit     func()
	Open     func(path string) error
	Reveal   func(path string) error
	CopyPath func(path string)

	// Notify shows a short message to the user
	Notify func(message string)

	localization *Localization
}

// NewActions wires intents to the app, the platform helpers and the clipboard
func NewActions(app fyne.App, localization *Localization, notify func(string)) *Actions {
	return &Actions{
		Quit:         app.Quit,
		Open:         platform.OpenFileWithDefaultApp,
		Reveal:       platform.OpenFileInManager,
		CopyPath:     func(path string) { app.Clipboard().SetContent(path) },
		Notify:       notify,
		localization: localization,
	}
}

// Apply runs intents in order. Failures are reported and never stop later intents.
func (a *Actions) Apply(intents []gallery.Intent) {
	for _, intent := range intents {
		if err := a.apply(intent); err != nil {
			log.Printf("Intent %s for %q failed: %v", intent.Kind, intent.Key, err)
			a.notify(a.failureText(intent) + ": " + err.Error())
		}
	}
}

func (a *Actions) apply(intent gallery.Intent) error {
	log.Printf("Applying intent %s for %q", intent.Kind, intent.Key)

	if intent.Kind == gallery.IntentQuit {
		if a.Quit != nil {
			a.Quit()
		}
		return nil
	}

	if intent.Path == "" {
		return ErrNoPath
	}

	switch intent.Kind {
	case gallery.IntentOpen:
		return a.Open(intent.Path)
	case gallery.IntentReveal:
		return a.Reveal(intent.Path)
	case gallery.IntentCopyPath:
		a.CopyPath(intent.Path)
		a.notify(a.localization.GetText(KeyPathCopied))
		return nil
	default:
		return fmt.Errorf("unsupported intent %s", intent.Kind)
	}
}

func (a *Actions) failureText(intent gallery.Intent) string {
	if intent.Kind == gallery.IntentReveal {
		return a.localization.GetText(KeyErrorRevealing)
	}
	return a.localization.GetText(KeyErrorOpeningFile)
}

func (a *Actions) notify(message string) {
	if a.Notify != nil {
		a.Notify(message)
	}
}
