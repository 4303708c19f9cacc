package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalMetrics      = 8000 // Total number of metric records to send
	totalEvents       = 4000 // Total number of analytics events to send
	totalErrors       = 400  // Total number of unique error reports to send
	errorRedeliveries = 400  // Total number of redelivered error reports (same eventId)
)

var (
	metricNames  = []string{"api_call_users", "api_call_tasks", "screen_load_home", "app_start"}
	platforms    = []string{"ios", "android", "web"}
	funnelEvents = []string{"sign_up", "family_created", "task_completed", "session_ended"}
)

// ### End - fixed configs

type metricPayload struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Platform string  `json:"platform"`
}

type eventPayload struct {
	Event      string  `json:"event"`
	Platform   string  `json:"platform"`
	UserID     string  `json:"userId"`
	SessionID  string  `json:"sessionId,omitempty"`
	DurationMs float64 `json:"durationMs,omitempty"`
}

type errorPayload struct {
	Message  string `json:"message"`
	Stack    string `json:"stack"`
	EventID  string `json:"eventId"`
	Platform string `json:"platform"`
}

type requestToSend struct {
	path     string
	jsonData []byte
}

// main runs the e2e scenario: 001_ingest_and_error_replay
//
// This scenario exercises the three ingestion endpoints with deterministic
// telemetry, including redelivered error reports, and relies on the running
// server's scheduled jobs for aggregation.
//
// What it tests:
//   - Metric, event, and error ingestion via POST /v1/metrics, /v1/events, /v1/errors
//   - Batch submissions alongside single-object submissions
//   - Replay guard: every error report is delivered twice with the same eventId;
//     error summary counts must equal the number of unique reports
//   - Threshold breaches: a deterministic slice of metric values exceeds the
//     default api_call threshold
//
// Expected results:
//   - Every request returns 200 with success=true and the submitted record count
//   - No 4xx/5xx responses
//   - After the next metric aggregation tick, one rollup per metric name exists
//     for the covered window
//   - Error summaries show totalErrors occurrences, not totalErrors + errorRedeliveries
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the telemetry analytics API server
	parallel := 4                      // Number of concurrent requests to send
	batchSize := 100                   // Records per batch request

	fmt.Println("Starting e2e scenario: 001_ingest_and_error_replay")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("BATCH_SIZE: %d\n", batchSize)
	fmt.Printf("TOTAL_METRICS: %d\n", totalMetrics)
	fmt.Printf("TOTAL_EVENTS: %d\n", totalEvents)
	fmt.Printf("TOTAL_ERRORS: %d (+%d redeliveries)\n", totalErrors, errorRedeliveries)
	fmt.Println()

	requests := make([]requestToSend, 0)

	// Metric batches. Every 40th api_call value lands above the default
	// 5000ms threshold so breach recording is exercised.
	for start := 0; start < totalMetrics; start += batchSize {
		batch := make([]metricPayload, 0, batchSize)
		for i := start; i < start+batchSize && i < totalMetrics; i++ {
			value := float64(50 + i%400)
			if i%40 == 0 {
				value = 5001 + float64(i%100)
			}
			batch = append(batch, metricPayload{
				Name:     metricNames[i%len(metricNames)],
				Value:    value,
				Unit:     "ms",
				Platform: platforms[i%len(platforms)],
			})
		}
		jsonData, err := json.Marshal(batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal metric batch: %v\n", err)
			os.Exit(1)
		}
		requests = append(requests, requestToSend{path: "/v1/metrics", jsonData: jsonData})
	}

	// Event batches. Every fourth event is session_ended with a duration so
	// engagement statistics have sessions to read.
	for start := 0; start < totalEvents; start += batchSize {
		batch := make([]eventPayload, 0, batchSize)
		for i := start; i < start+batchSize && i < totalEvents; i++ {
			event := eventPayload{
				Event:    funnelEvents[i%len(funnelEvents)],
				Platform: platforms[i%len(platforms)],
				UserID:   fmt.Sprintf("user-%03d", i%200),
			}
			if event.Event == "session_ended" {
				event.SessionID = fmt.Sprintf("session-%05d", i)
				event.DurationMs = float64(30000 + (i%10)*15000)
			}
			batch = append(batch, event)
		}
		jsonData, err := json.Marshal(batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal event batch: %v\n", err)
			os.Exit(1)
		}
		requests = append(requests, requestToSend{path: "/v1/events", jsonData: jsonData})
	}

	// Error reports as single-object submissions, each delivered twice with
	// the same eventId. 40 distinct fingerprints; messages cycle through
	// severity keywords so every severity class appears.
	errorMessages := []string{
		"App crash on startup",
		"payment declined by gateway",
		"network timeout during sync",
		"unexpected nil in task list",
	}
	for i := 0; i < totalErrors; i++ {
		payload := errorPayload{
			Message:  errorMessages[i%len(errorMessages)],
			Stack:    fmt.Sprintf("at module%02d.go:%d\nat main.go:12", i%40, 10+i%40),
			EventID:  fmt.Sprintf("err-event-%06d", i),
			Platform: platforms[i%len(platforms)],
		}
		jsonData, err := json.Marshal(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal error report: %v\n", err)
			os.Exit(1)
		}
		// Original delivery and one redelivery with the identical body.
		requests = append(requests, requestToSend{path: "/v1/errors", jsonData: jsonData})
		requests = append(requests, requestToSend{path: "/v1/errors", jsonData: jsonData})
	}

	fmt.Printf("Generated %d requests to send\n", len(requests))
	fmt.Println()

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	var okRequest int64
	var invalidRequest int64
	var internalRequest int64

	for i, request := range requests {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(index int, r requestToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendRequest(baseURL, r)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("request %d (%s): %w", index, r.path, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Request %d (%s) failed: %v\n", index, r.path, err)
				return
			}

			switch statusCode {
			case http.StatusOK:
				atomic.AddInt64(&okRequest, 1)
			case http.StatusBadRequest:
				atomic.AddInt64(&invalidRequest, 1)
			case http.StatusInternalServerError:
				atomic.AddInt64(&internalRequest, 1)
			}
		}(i, request)
	}

	wg.Wait()

	fmt.Println()
	if len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests failed\n", len(errs))
		os.Exit(1)
	}

	fmt.Println("All requests completed")
	fmt.Println("=== Statistics ===")
	fmt.Printf("OK request: %d\n", atomic.LoadInt64(&okRequest))
	fmt.Printf("Invalid request: %d\n", atomic.LoadInt64(&invalidRequest))
	fmt.Printf("Internal request: %d\n", atomic.LoadInt64(&internalRequest))
	fmt.Printf("Unique error reports sent: %d (each delivered twice)\n", totalErrors)

	if atomic.LoadInt64(&invalidRequest) > 0 || atomic.LoadInt64(&internalRequest) > 0 {
		fmt.Fprintln(os.Stderr, "ERROR: Scenario saw non-200 responses")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func sendRequest(baseURL string, r requestToSend) (int, error) {
	req, err := http.NewRequest("POST", baseURL+r.path, bytes.NewReader(r.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
