package gallery

import "github.com/ytget/cloudshot/internal/model"

// Action is an affordance on a card's hover overlay
type Action int

const (
	ActionReveal Action = iota
	ActionCopyPath
	ActionOpen
)

// OverlayActions lists overlay actions from right to left
func OverlayActions() []Action {
	return []Action{ActionReveal, ActionCopyPath, ActionOpen}
}

// String returns the default button label
func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "more"
	case ActionCopyPath:
		return "Copy Path"
	case ActionOpen:
		return "Open"
	default:
		return "unknown"
	}
}

// IsIcon reports whether the action is drawn as an icon instead of text
func (a Action) IsIcon() bool {
	return a == ActionReveal
}

// IntentKind enumerates the side effects a render pass can request
type IntentKind int

const (
	IntentQuit IntentKind = iota
	IntentOpen
	IntentReveal
	IntentCopyPath
)

// String returns the intent name used in logs
func (k IntentKind) String() string {
	switch k {
	case IntentQuit:
		return "quit"
	case IntentOpen:
		return "open"
	case IntentReveal:
		return "reveal"
	case IntentCopyPath:
		return "copy-path"
	default:
		return "unknown"
	}
}

// Intent is a side effect requested during a pass and applied after it
type Intent struct {
	Kind IntentKind
	Key  string // display name of the capture, empty for Quit
	Path string // backing file of the capture, empty for Quit
}

// QuitIntent asks the host shell to exit the application
func QuitIntent() Intent {
	return Intent{Kind: IntentQuit}
}

// IntentFor maps an overlay action on record to its intent
func IntentFor(action Action, record model.CaptureRecord) Intent {
	var kind IntentKind
	switch action {
	case ActionReveal:
		kind = IntentReveal
	case ActionCopyPath:
		kind = IntentCopyPath
	case ActionOpen:
		kind = IntentOpen
	}
	return Intent{Kind: kind, Key: record.DisplayName, Path: record.SourcePath}
}

// Queue collects intents during a pass
type Queue struct {
	intents []Intent
}

// Add appends an intent
func (q *Queue) Add(intent Intent) {
	q.intents = append(q.intents, intent)
}

// Drain returns the queued intents in order and empties the queue
func (q *Queue) Drain() []Intent {
	intents := q.intents
	q.intents = nil
	return intents
}

// Len returns the number of queued intents
func (q *Queue) Len() int {
	return len(q.intents)
}
