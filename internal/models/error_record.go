package models

import "time"

// Severity classifies an error report. Classification happens at
// ingestion using the configured keyword table.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ErrorRecord is a single raw error report.
//
// EventID identifies the client-side delivery: when the same report is
// retried, it arrives with the same EventID, and the summary pipeline
// uses it as a replay guard so the occurrence is counted once.
type ErrorRecord struct {
	ID         string            `json:"id"`
	EventID    string            `json:"eventId"`
	Message    string            `json:"message"`
	Stack      string            `json:"stack,omitempty"`
	Severity   Severity          `json:"severity"`
	Timestamp  time.Time         `json:"timestamp"`
	Platform   string            `json:"platform"`
	AppVersion string            `json:"appVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ErrorSummary is the deduplicated rollup of one error fingerprint.
// It is the only mutable document in the pipeline; every mutation runs
// inside a store transaction.
type ErrorSummary struct {
	Fingerprint string           `json:"fingerprint"`
	Message     string           `json:"message"`
	Severity    Severity         `json:"severity"`
	Count       int64            `json:"count"`
	FirstSeen   time.Time        `json:"firstSeen"`
	LastSeen    time.Time        `json:"lastSeen"`
	LastEventID string           `json:"lastEventId"`
	Platforms   map[string]int64 `json:"platforms,omitempty"`
}

// CriticalErrorAlert is written when a critical-severity error is
// recorded. Best-effort: failure to write it never blocks the summary.
type CriticalErrorAlert struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Message     string    `json:"message"`
	Platform    string    `json:"platform"`
	Timestamp   time.Time `json:"timestamp"`
}
