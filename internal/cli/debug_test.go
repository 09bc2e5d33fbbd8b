package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateDebugLogPath(t *testing.T) {
	path, err := generateDebugLogPath()
	if err != nil {
		t.Fatalf("generateDebugLogPath() failed: %v", err)
	}

	if !strings.Contains(path, filepath.Join(".selectdemo", "logs")) {
		t.Errorf("Expected path to contain '.selectdemo/logs', got: %s", path)
	}

	if !strings.Contains(path, "selectdemo-debug-") {
		t.Errorf("Expected path to contain 'selectdemo-debug-', got: %s", path)
	}

	if !strings.HasSuffix(path, ".log") {
		t.Errorf("Expected path to end with '.log', got: %s", path)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got: %s", path)
	}
}

func TestCreateDebugLogFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	file, err := createDebugLogFile()
	if err != nil {
		t.Fatalf("createDebugLogFile() failed: %v", err)
	}
	defer file.Close()

	if _, err := file.Stat(); err != nil {
		t.Fatalf("Failed to stat debug log file: %v", err)
	}

	logsDir := filepath.Join(tempDir, ".selectdemo", "logs")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		t.Errorf("Expected logs directory to be created at: %s", logsDir)
	}
}

func TestCreateDebugLogFilePermissionError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	tempDir := t.TempDir()

	readOnlyDir := filepath.Join(tempDir, "readonly")
	if err := os.MkdirAll(readOnlyDir, 0555); err != nil {
		t.Fatalf("Failed to create read-only dir: %v", err)
	}
	t.Setenv("HOME", readOnlyDir)

	file, err := createDebugLogFile()
	if err == nil {
		file.Close()
		t.Fatal("Expected createDebugLogFile() to fail with permission error")
	}

	if !strings.Contains(err.Error(), "failed to create logs directory") {
		t.Errorf("Expected error to mention logs directory creation, got: %v", err)
	}
}
