// Package hover tracks which gallery items are under the pointer. State is
// recomputed every frame: Begin, one Update per rendered item, End.
package hover

import "sort"

// Tracker holds the hover set for the current frame
type Tracker struct {
	hovered map[string]struct{}
	touched map[string]uint64 // key -> frame of its last Update
	frame   uint64
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		hovered: make(map[string]struct{}),
		touched: make(map[string]uint64),
	}
}

// Begin starts a new frame pass
func (t *Tracker) Begin() {
	t.frame++
}

// Update records whether the pointer is over the item's rendered region this
// frame and returns the resulting membership.
func (t *Tracker) Update(key string, over bool) bool {
	t.touched[key] = t.frame
	if over {
		t.hovered[key] = struct{}{}
	} else {
		delete(t.hovered, key)
	}
	return over
}

// End finishes the frame pass, dropping every key that was not updated since Begin
func (t *Tracker) End() {
	for key, frame := range t.touched {
		if frame != t.frame {
			delete(t.touched, key)
			delete(t.hovered, key)
		}
	}
}

// Contains reports whether key is currently hovered
func (t *Tracker) Contains(key string) bool {
	_, ok := t.hovered[key]
	return ok
}

// Keys returns the hovered keys in sorted order
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.hovered))
	for key := range t.hovered {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of hovered keys
func (t *Tracker) Len() int {
	return len(t.hovered)
}
