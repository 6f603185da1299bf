package model

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewCaptureRecord(t *testing.T) {
	now := time.Now()
	record := NewCaptureRecord(now, "shot.png", StorageLocal, "/captures")

	if record.DisplayName != "shot.png" {
		t.Errorf("Expected DisplayName to be 'shot.png', got '%s'", record.DisplayName)
	}

	expectedPath := filepath.Join("/captures", "shot.png")
	if record.SourcePath != expectedPath {
		t.Errorf("Expected SourcePath %s, got %s", expectedPath, record.SourcePath)
	}

	if record.Storage != StorageLocal {
		t.Errorf("Expected storage to be StorageLocal, got %s", record.Storage)
	}

	if !record.CapturedAt.Equal(now) {
		t.Errorf("Expected CapturedAt to be %v, got %v", now, record.CapturedAt)
	}
}

func TestCaptureRecord_Age(t *testing.T) {
	now := time.Now()
	record := NewCaptureRecord(now.Add(-90*time.Second), "a.png", StorageLocal, "")

	if age := record.Age(now); age != 90*time.Second {
		t.Errorf("Age() = %v, expected 90s", age)
	}

	var zero CaptureRecord
	if age := zero.Age(now); age != 0 {
		t.Errorf("Age() of zero record = %v, expected 0", age)
	}
}

func TestSampleRecords(t *testing.T) {
	now := time.Now()
	records := SampleRecords("assets", now)

	if len(records) != 3 {
		t.Fatalf("Expected 3 sample records, got %d", len(records))
	}

	expected := []struct {
		name    string
		storage StorageKind
		age     time.Duration
	}{
		{SampleShotA, StorageClipboard, 60 * time.Second},
		{SampleShotB, StorageLocal, 6000 * time.Second},
		{SampleShotC, StorageClipboard, 360 * time.Second},
	}

	seen := make(map[string]bool)
	for i, exp := range expected {
		record := records[i]
		if record.DisplayName != exp.name {
			t.Errorf("record %d: expected name %s, got %s", i, exp.name, record.DisplayName)
		}
		if record.Storage != exp.storage {
			t.Errorf("record %d: expected storage %s, got %s", i, exp.storage, record.Storage)
		}
		if record.Age(now) != exp.age {
			t.Errorf("record %d: expected age %v, got %v", i, exp.age, record.Age(now))
		}
		if seen[record.DisplayName] {
			t.Errorf("duplicate display name %s", record.DisplayName)
		}
		seen[record.DisplayName] = true
	}
}
