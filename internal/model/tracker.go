package model

import "time"

// Outcome is how a single fetch ended.
type Outcome string

const (
	// OutcomeWritten means the body was written to the output file.
	OutcomeWritten Outcome = "written"
	// OutcomePrinted means the decoded body went to standard output.
	OutcomePrinted Outcome = "printed"
	// OutcomeSuppressed means a response arrived but nothing was emitted.
	OutcomeSuppressed Outcome = "suppressed"
	// OutcomeFailed means no usable result: the request or the file write failed.
	OutcomeFailed Outcome = "failed"
)

// Entry is one recorded fetch in the history database.
type Entry struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	StatusCode  int       `json:"status_code,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	Digest      string    `json:"digest,omitempty"` // hex sha256 of the body
	Outcome     Outcome   `json:"outcome"`
	Error       string    `json:"error,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}
