package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// createDebugLogFile creates a debug log file in ~/.selectdemo/logs directory
// Returns the file handle and any error encountered
func createDebugLogFile() (*os.File, error) {
	logPath, err := generateDebugLogPath()
	if err != nil {
		return nil, fmt.Errorf("failed to generate debug log path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory %s: %w", logDir, err)
	}

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file %s: %w", logPath, err)
	}

	return file, nil
}

// generateDebugLogPath generates the path for a debug log file
// Format: ~/.selectdemo/logs/selectdemo-debug-YYYY-MM-DD-HH-MM-SS.log
func generateDebugLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-15-04-05")
	filename := fmt.Sprintf("selectdemo-debug-%s.log", timestamp)

	return filepath.Join(homeDir, ".selectdemo", "logs", filename), nil
}
