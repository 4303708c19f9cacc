package models

import "time"

// Business events that drive the conversion funnel. Events with one of
// these names are denormalized into the business-metrics collection at
// ingestion time.
const (
	EventSignUp                = "sign_up"
	EventFamilyCreated         = "family_created"
	EventTaskCompleted         = "task_completed"
	EventPurchaseCompleted     = "purchase_completed"
	EventSubscriptionStarted   = "subscription_started"
	EventSubscriptionCancelled = "subscription_cancelled"

	// EventSessionEnded closes a client session; its record is denormalized
	// into the sessions collection for engagement statistics.
	EventSessionEnded = "session_ended"
)

// BusinessEvent reports whether the event name participates in the
// conversion funnel.
func BusinessEvent(event string) bool {
	switch event {
	case EventSignUp, EventFamilyCreated, EventTaskCompleted,
		EventPurchaseCompleted, EventSubscriptionStarted, EventSubscriptionCancelled:
		return true
	}
	return false
}

// EventRecord is a single raw analytics event. Like MetricRecord, the
// timestamp is server-assigned and the record is immutable once written.
type EventRecord struct {
	ID         string            `json:"id"`
	Event      string            `json:"event"`
	Timestamp  time.Time         `json:"timestamp"`
	Platform   string            `json:"platform"`
	AppVersion string            `json:"appVersion,omitempty"`
	UserID     string            `json:"userId,omitempty"`
	FamilyID   string            `json:"familyId,omitempty"`
	SessionID  string            `json:"sessionId,omitempty"`
	Client     string            `json:"client,omitempty"` // browser/app family derived from the user agent
	DurationMs float64           `json:"durationMs,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SessionRecord is the denormalized copy of a session_ended event used
// for engagement statistics.
type SessionRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	SessionID  string    `json:"sessionId"`
	Platform   string    `json:"platform"`
	DurationMs float64   `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
}
