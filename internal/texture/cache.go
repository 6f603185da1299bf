// Package texture owns decoded capture images keyed by display name. The
// cache is filled once at startup and read-only during rendering.
package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/ytget/cloudshot/internal/layout"
	"github.com/ytget/cloudshot/internal/platform"
)

// Registration errors
var (
	ErrDuplicateKey = errors.New("texture key already registered")
	ErrFrozen       = errors.New("texture cache is frozen")
	ErrInvalidEntry = errors.New("invalid texture entry")
)

// Handle is an opaque reference to a decoded image resource
type Handle struct {
	ID    uuid.UUID
	Key   string
	Image *image.NRGBA
	Size  layout.Size // native size in pixels
}

// Cache maps display names to handles
type Cache struct {
	entries map[string]*Handle
	frozen  bool
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]*Handle),
	}
}

// Register wraps buf into a handle stored under key. A key may be registered
// only once and only before Freeze.
func (c *Cache) Register(key string, buf *platform.PixelBuffer) (*Handle, error) {
	if c.frozen {
		return nil, fmt.Errorf("register %q: %w", key, ErrFrozen)
	}
	if key == "" {
		return nil, fmt.Errorf("empty key: %w", ErrInvalidEntry)
	}
	if buf == nil || buf.Image == nil || buf.Width < 1 || buf.Height < 1 {
		return nil, fmt.Errorf("register %q: no pixels: %w", key, ErrInvalidEntry)
	}
	if _, exists := c.entries[key]; exists {
		return nil, fmt.Errorf("register %q: %w", key, ErrDuplicateKey)
	}

	handle := &Handle{
		ID:    uuid.New(),
		Key:   key,
		Image: buf.Image,
		Size:  layout.NewSize(float32(buf.Width), float32(buf.Height)),
	}
	c.entries[key] = handle
	return handle, nil
}

// Lookup returns the handle registered under key
func (c *Cache) Lookup(key string) (*Handle, bool) {
	handle, ok := c.entries[key]
	return handle, ok
}

// Freeze ends the population phase. Later Register calls fail.
func (c *Cache) Freeze() {
	c.frozen = true
}

// Frozen reports whether Freeze has been called
func (c *Cache) Frozen() bool {
	return c.frozen
}

// Len returns the number of registered entries
func (c *Cache) Len() int {
	return len(c.entries)
}
