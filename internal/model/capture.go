package model

import (
	"path/filepath"
	"time"
)

// Sample capture names shipped with the app for first runs
const (
	SampleShotA = "Screenshot 2023-01-31 at 10.16.00 PM.png"
	SampleShotB = "Screenshot 2023-01-31 at 10.16.04 PM.png"
	SampleShotC = "Screenshot 2023-01-31 at 10.16.11 PM.png"
)

// CaptureRecord describes one screenshot or recording entry
type CaptureRecord struct {
	CapturedAt  time.Time   // when the capture was taken
	DisplayName string      // unique within the visible set, used as the texture key
	Storage     StorageKind // provenance of the capture
	SourcePath  string      // resolved path of the backing image file
}

// NewCaptureRecord creates a record whose backing file lives in dir
func NewCaptureRecord(capturedAt time.Time, name string, storage StorageKind, dir string) CaptureRecord {
	return CaptureRecord{
		CapturedAt:  capturedAt,
		DisplayName: name,
		Storage:     storage,
		SourcePath:  filepath.Join(dir, name),
	}
}

// Age returns how long ago the capture was taken relative to now
func (cr CaptureRecord) Age(now time.Time) time.Duration {
	if cr.CapturedAt.IsZero() {
		return 0
	}
	return now.Sub(cr.CapturedAt)
}

// SampleRecords returns the built-in capture list used when no history is supplied
func SampleRecords(dir string, now time.Time) []CaptureRecord {
	return []CaptureRecord{
		NewCaptureRecord(now.Add(-60*time.Second), SampleShotA, StorageClipboard, dir),
		NewCaptureRecord(now.Add(-6000*time.Second), SampleShotB, StorageLocal, dir),
		NewCaptureRecord(now.Add(-360*time.Second), SampleShotC, StorageClipboard, dir),
	}
}
