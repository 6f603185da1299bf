package model

import (
	"fmt"
	"strings"
)

// StorageKind represents where a capture was stored when it was taken
type StorageKind int

const (
	// StorageLocal means the capture was written to the local disk
	StorageLocal StorageKind = iota

	// StorageClipboard means the capture was placed on the clipboard
	StorageClipboard
)

// Label returns the human-readable provenance label shown under a card
func (sk StorageKind) Label() string {
	switch sk {
	case StorageLocal:
		return "Local"
	case StorageClipboard:
		return "Clipboard"
	default:
		return "Unknown"
	}
}

// String returns the form used in capture history files
func (sk StorageKind) String() string {
	switch sk {
	case StorageLocal:
		return "local"
	case StorageClipboard:
		return "clipboard"
	default:
		return fmt.Sprintf("StorageKind(%d)", int(sk))
	}
}

// StorageKinds returns every known provenance kind in declaration order
func StorageKinds() []StorageKind {
	return []StorageKind{StorageLocal, StorageClipboard}
}

// ParseStorageKind converts a history file value into a StorageKind
func ParseStorageKind(value string) (StorageKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, kind := range StorageKinds() {
		if kind.String() == normalized {
			return kind, nil
		}
	}
	return StorageLocal, fmt.Errorf("unknown storage kind %q", value)
}
