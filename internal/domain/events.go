package domain

import "time"

// Submission event types.
const (
	EventSubmitted = "submitted"
	EventDeleted   = "deleted"
	EventRestored  = "restored"
)

// SubmissionEvent describes a change to the submissions list.
type SubmissionEvent struct {
	Type     string    `json:"type"`
	ID       string    `json:"id,omitempty"`
	FullName string    `json:"fullName,omitempty"`
	Email    string    `json:"email,omitempty"`
	Count    int       `json:"count,omitempty"`
	At       time.Time `json:"at"`
}
