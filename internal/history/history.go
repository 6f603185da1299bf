// Package history reads and writes the capture-history file that seeds the
// gallery at startup.
//
// The file is TOML with one [[capture]] table per entry:
//
//	[[capture]]
//	name = "Screenshot 2023-01-31 at 10.16.00 PM.png"
//	storage = "clipboard"
//	age = "1m"
//	path = "/optional/absolute/path.png"
//
// Entries keep file order. When path is empty the image is expected in the
// captures directory under its display name.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/cloudshot/internal/model"
)

// ErrInvalidEntry is returned for entries that cannot become a capture record
var ErrInvalidEntry = errors.New("invalid capture entry")

type file struct {
	Captures []entry `toml:"capture"`
}

type entry struct {
	Name    string `toml:"name"`
	Storage string `toml:"storage"`
	Age     string `toml:"age"`
	Path    string `toml:"path,omitempty"`
}

// Load returns the records listed in the history file at path. An empty path
// yields the built-in sample records.
func Load(path, dir string, now time.Time) ([]model.CaptureRecord, error) {
	if path == "" {
		return model.SampleRecords(dir, now), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return Parse(data, dir, now)
}

// Parse decodes history file contents
func Parse(data []byte, dir string, now time.Time) ([]model.CaptureRecord, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Captures))
	records := make([]model.CaptureRecord, 0, len(f.Captures))
	for i, e := range f.Captures {
		record, err := e.record(dir, now)
		if err != nil {
			return nil, fmt.Errorf("capture #%d: %w", i+1, err)
		}
		if _, dup := seen[record.DisplayName]; dup {
			return nil, fmt.Errorf("capture #%d: duplicate name %q: %w", i+1, record.DisplayName, ErrInvalidEntry)
		}
		seen[record.DisplayName] = struct{}{}
		records = append(records, record)
	}
	return records, nil
}

func (e entry) record(dir string, now time.Time) (model.CaptureRecord, error) {
	if e.Name == "" {
		return model.CaptureRecord{}, fmt.Errorf("missing name: %w", ErrInvalidEntry)
	}

	kind, err := model.ParseStorageKind(e.Storage)
	if err != nil {
		return model.CaptureRecord{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	var age time.Duration
	if e.Age != "" {
		age, err = time.ParseDuration(e.Age)
		if err != nil || age < 0 {
			return model.CaptureRecord{}, fmt.Errorf("bad age %q: %w", e.Age, ErrInvalidEntry)
		}
	}

	record := model.NewCaptureRecord(now.Add(-age), e.Name, kind, dir)
	if e.Path != "" {
		record.SourcePath = e.Path
	}
	return record, nil
}

// Save writes records to path, storing each capture time as an age relative
// to now. Paths inside dir are written without the path field.
func Save(path, dir string, records []model.CaptureRecord, now time.Time) error {
	f := file{Captures: make([]entry, 0, len(records))}
	for _, record := range records {
		e := entry{
			Name:    record.DisplayName,
			Storage: record.Storage.String(),
			Age:     record.Age(now).Round(time.Second).String(),
		}
		if record.SourcePath != filepath.Join(dir, record.DisplayName) {
			e.Path = record.SourcePath
		}
		f.Captures = append(f.Captures, e)
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
