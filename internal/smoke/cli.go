package smoke

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "smoke_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Activities Roster Smoke Tool
============================

Exercises a running activities service end to end: lists the roster,
signs up synthetic students, probes duplicate rejection, unregisters
everyone it added, and verifies the roster is restored.

Usage:
  go run cmd/roster-smoke/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -students int
        Number of synthetic students to sign up (default 20)
  -workers int
        Number of concurrent signup workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for test output (default: smoke_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/roster-smoke/main.go

  # Test against a non-default port with more students
  go run cmd/roster-smoke/main.go -url http://localhost:9090 -students 100

  # Test with verbose output and a custom log file
  go run cmd/roster-smoke/main.go -verbose -log my_smoke.log
`)
}
