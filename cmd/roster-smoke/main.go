package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/mergington/activities/internal/smoke"
)

// Default configuration constants.
const (
	defaultStudents    = 20
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "Base URL of the service")
		students = flag.Int("students", defaultStudents, "Number of synthetic students to sign up")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent signup workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile  = flag.String("log", "", "Log file for test output (default: smoke_log_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	// Setup logging
	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &smoke.Config{
		BaseURL:  *baseURL,
		Students: *students,
		Workers:  *workers,
		Timeout:  *timeout,
		LogFile:  *logFile,
		Verbose:  *verbose,
	}

	// Run the test
	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke test failed: " + err.Error() + "\n")
		return
	}
}
