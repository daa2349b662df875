package smoke

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/logger"
)

// Run executes the complete roster smoke test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roster smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.Students),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the roster
	before, err := fetchRoster(ctx, client, config)
	if err != nil {
		return fmt.Errorf("roster fetch failed: %w", err)
	}
	stats.ActivitiesListed = len(before)
	if len(before) == 0 {
		return fmt.Errorf("roster is empty; nothing to exercise")
	}

	// Step 3: Sign up synthetic students round-robin across activities
	assignments, err := signupStudents(ctx, client, config, before, stats)
	if err != nil {
		return fmt.Errorf("signup round failed: %w", err)
	}

	// Step 4: Probe duplicate rejection
	if err := probeDuplicate(ctx, client, config, assignments, stats); err != nil {
		return fmt.Errorf("duplicate probe failed: %w", err)
	}

	// Step 5: Verify every signup is visible in the roster
	after, err := fetchRoster(ctx, client, config)
	if err != nil {
		return fmt.Errorf("roster refetch failed: %w", err)
	}
	if err := verifySignups(after, assignments); err != nil {
		return fmt.Errorf("signup verification failed: %w", err)
	}
	log.Println("signups verified in roster")

	// Step 6: Unregister everyone the test added
	if err := unregisterStudents(ctx, client, config, assignments, stats); err != nil {
		return fmt.Errorf("unregister round failed: %w", err)
	}

	// Step 7: Verify the roster is back to its initial state
	restored, err := fetchRoster(ctx, client, config)
	if err != nil {
		return fmt.Errorf("final roster fetch failed: %w", err)
	}
	if err := verifyRestored(before, restored); err != nil {
		return fmt.Errorf("restore verification failed: %w", err)
	}
	log.Println("roster restored to initial state")

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// assignment records which activity a synthetic student was signed up for.
type assignment struct {
	Activity string
	Email    string
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// fetchRoster retrieves the activity registry.
func fetchRoster(ctx context.Context, client *HTTPClient, config *Config) (map[string]Activity, error) {
	resp, err := client.Get(ctx, config.BaseURL+"/activities")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster body: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("roster fetch returned status %d", resp.StatusCode)
	}

	var roster map[string]Activity
	if err := unmarshalJSON(body, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return roster, nil
}

// signupResult is one worker's outcome for a planned signup.
type signupResult struct {
	assignment assignment
	status     int
	detail     string
	err        error
}

// signupStudents distributes synthetic students across activities using a
// concurrent worker pool.
func signupStudents(ctx context.Context, client *HTTPClient, config *Config, roster map[string]Activity, stats *Stats) ([]assignment, error) {
	log.Printf("signing up %d synthetic students across %d activities with %d workers...",
		config.Students, len(roster), config.Workers)

	// Per-run id so a crashed run's leftovers never collide with a rerun
	runID := uuid.NewString()[:8]

	// Stable order so reruns hit the same activities
	names := make([]string, 0, len(roster))
	for name := range roster {
		names = append(names, name)
	}
	sort.Strings(names)

	planned := make([]assignment, config.Students)
	for i := range planned {
		planned[i] = assignment{
			Activity: names[i%len(names)],
			Email:    fmt.Sprintf("smoke-%s-%03d@mergington.edu", runID, i+1),
		}
	}

	assignmentChan := make(chan assignment, config.Workers*WorkerChannelMultiplier)
	resultChan := make(chan signupResult, len(planned))

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range assignmentChan {
				select {
				case <-ctx.Done():
					return
				default:
					resultChan <- submitSignup(ctx, client, config, a)
				}
			}
		}()
	}

	go func() {
		defer close(assignmentChan)
		for _, a := range planned {
			select {
			case <-ctx.Done():
				return
			case assignmentChan <- a:
			}
		}
	}()

	wg.Wait()
	close(resultChan)

	assignments := make([]assignment, 0, len(planned))
	for res := range resultChan {
		stats.SignupsAttempted++
		switch {
		case res.err != nil:
			return nil, fmt.Errorf("signup request failed: %w", res.err)
		case res.status == StatusOK:
			stats.SignupsSucceeded++
			assignments = append(assignments, res.assignment)
		case res.status == StatusBadRequest:
			// Capacity rejection on a full activity is a valid outcome.
			stats.SignupsRejected++
			if config.Verbose {
				log.Printf("  signup rejected for %s: %s", res.assignment.Activity, res.detail)
			}
		default:
			return nil, fmt.Errorf("signup of %s for %q returned status %d",
				res.assignment.Email, res.assignment.Activity, res.status)
		}
	}

	log.Printf("signup round completed: %d succeeded, %d rejected", stats.SignupsSucceeded, stats.SignupsRejected)
	return assignments, nil
}

// submitSignup posts a single signup and captures the outcome.
func submitSignup(ctx context.Context, client *HTTPClient, config *Config, a assignment) signupResult {
	resp, err := client.Post(ctx, signupURL(config.BaseURL, a.Activity, a.Email))
	if err != nil {
		return signupResult{assignment: a, err: err}
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return signupResult{assignment: a, err: err}
	}

	var detail DetailResponse
	_ = unmarshalJSON(body, &detail)
	return signupResult{assignment: a, status: resp.StatusCode, detail: detail.Detail}
}

// probeDuplicate re-submits the first successful signup and expects a rejection.
func probeDuplicate(ctx context.Context, client *HTTPClient, config *Config, assignments []assignment, stats *Stats) error {
	if len(assignments) == 0 {
		log.Println("no successful signups; skipping duplicate probe")
		return nil
	}

	a := assignments[0]
	resp, err := client.Post(ctx, signupURL(config.BaseURL, a.Activity, a.Email))
	if err != nil {
		return fmt.Errorf("duplicate signup request failed: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read duplicate response: %w", err)
	}

	if resp.StatusCode != StatusBadRequest {
		return fmt.Errorf("duplicate signup returned status %d, want %d", resp.StatusCode, StatusBadRequest)
	}

	var detail DetailResponse
	if err := unmarshalJSON(body, &detail); err != nil {
		return fmt.Errorf("failed to decode duplicate response: %w", err)
	}

	stats.DuplicatesDetected++
	log.Printf("duplicate signup correctly rejected: %s", detail.Detail)
	return nil
}

// unregisterStudents removes every synthetic student the test signed up.
func unregisterStudents(ctx context.Context, client *HTTPClient, config *Config, assignments []assignment, stats *Stats) error {
	log.Printf("unregistering %d synthetic students...", len(assignments))

	for _, a := range assignments {
		stats.UnregistersAttempted++
		resp, err := client.Delete(ctx, unregisterURL(config.BaseURL, a.Activity, a.Email))
		if err != nil {
			return fmt.Errorf("unregister request failed: %w", err)
		}
		if _, err := readResponseBody(resp); err != nil {
			return fmt.Errorf("failed to read unregister response: %w", err)
		}

		if resp.StatusCode == StatusOK {
			stats.UnregistersSucceeded++
		} else {
			stats.UnregistersFailed++
			log.Printf("  unregister of %s from %q returned status %d", a.Email, a.Activity, resp.StatusCode)
		}
	}

	if stats.UnregistersFailed > 0 {
		return fmt.Errorf("%d of %d unregistrations failed", stats.UnregistersFailed, stats.UnregistersAttempted)
	}

	log.Printf("unregister round completed: %d succeeded", stats.UnregistersSucceeded)
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate float64
	if stats.SignupsAttempted > 0 {
		successRate = float64(stats.SignupsSucceeded) / float64(stats.SignupsAttempted) * PercentageMultiplier
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("activitiesListed", stats.ActivitiesListed),
		logger.Int("signupsAttempted", stats.SignupsAttempted),
		logger.Int("signupsSucceeded", stats.SignupsSucceeded),
		logger.Int("signupsRejected", stats.SignupsRejected),
		logger.Int("duplicatesDetected", stats.DuplicatesDetected),
		logger.Int("unregistersAttempted", stats.UnregistersAttempted),
		logger.Int("unregistersSucceeded", stats.UnregistersSucceeded),
		logger.Int("unregistersFailed", stats.UnregistersFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Any("signupSuccessRate", successRate))
}
