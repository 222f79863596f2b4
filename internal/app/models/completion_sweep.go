package models

import "time"

// CompletionSweep records the outcome of the last completion worker run.
type CompletionSweep struct {
	RequestID string    `json:"request_id"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Completed int       `json:"completed"`
}
