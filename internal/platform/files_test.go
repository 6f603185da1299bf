package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "captures", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeCapturesDir(t *testing.T) {
	capturesDir, err := GetHomeCapturesDir()
	if err != nil {
		t.Fatalf("Failed to get captures directory: %v", err)
	}

	if filepath.Base(capturesDir) != CapturesDirName {
		t.Errorf("Expected directory to end with %q, got: %s", CapturesDirName, capturesDir)
	}
	if filepath.Base(filepath.Dir(capturesDir)) != PicturesDirName {
		t.Errorf("Expected parent directory %q, got: %s", PicturesDirName, capturesDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func stubCommandRunner(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string
	original := commandRunner
	commandRunner = func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	}
	t.Cleanup(func() { commandRunner = original })
	return &calls
}

func TestOpenFileWithDefaultApp_RunsPlatformCommand(t *testing.T) {
	if runtime.GOOS != OSDarwin && runtime.GOOS != OSLinux && runtime.GOOS != OSWindows {
		t.Skipf("no open command on %s", runtime.GOOS)
	}
	calls := stubCommandRunner(t)

	file := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := OpenFileWithDefaultApp(file); err != nil {
		t.Fatalf("OpenFileWithDefaultApp() returned error: %v", err)
	}

	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	call := (*calls)[0]
	if call[len(call)-1] != file {
		t.Errorf("Expected command to target %s, got %v", file, call)
	}
}

func TestOpenFileInManager_RunsPlatformCommand(t *testing.T) {
	if runtime.GOOS != OSDarwin && runtime.GOOS != OSLinux && runtime.GOOS != OSWindows {
		t.Skipf("no file manager command on %s", runtime.GOOS)
	}
	calls := stubCommandRunner(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := OpenFileInManager(file); err != nil {
		t.Fatalf("OpenFileInManager() returned error: %v", err)
	}

	if len(*calls) != 1 {
		t.Fatalf("Expected one command, got %v", *calls)
	}
	joined := strings.Join((*calls)[0], " ")
	if !strings.Contains(joined, dir) {
		t.Errorf("Expected command to reference %s, got %s", dir, joined)
	}
}
