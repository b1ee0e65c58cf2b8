package schema

import (
	"strings"
	"time"
)

const (
	HelpRequestCollection  = "help_requests"
	HelpResponseCollection = "help_responses"
)

// HelpStatus is the state of a help request
type HelpStatus string

const (
	HelpOpen       HelpStatus = "open"
	HelpInProgress HelpStatus = "in_progress"
	HelpCompleted  HelpStatus = "completed"
	HelpCancelled  HelpStatus = "cancelled"
)

func (s HelpStatus) Valid() bool {
	switch s {
	case HelpOpen, HelpInProgress, HelpCompleted, HelpCancelled:
		return true
	}
	return false
}

// XPEligible reports whether a helper earns experience while a request is in this status
func (s HelpStatus) XPEligible() bool {
	return s == HelpInProgress || s == HelpCompleted
}

// CanTransition tells whether a status update may move a request between two statuses.
// Entering in_progress is reserved for response acceptance, and completed / cancelled are terminal.
func CanTransition(from, to HelpStatus) bool {
	switch from {
	case HelpOpen:
		return to == HelpCancelled
	case HelpInProgress:
		return to == HelpCompleted || to == HelpCancelled
	}
	return false
}

// Priority of a help request
type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityUrgent    Priority = "urgent"
	PriorityEmergency Priority = "emergency"
)

// ParsePriority normalizes a client supplied priority. An empty value means medium.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return PriorityMedium, true
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent, PriorityEmergency:
		return p, true
	}
	return p, false
}

// Location is a geographic point
type Location struct {
	Latitude  float64 `bson:"latitude" json:"lat"`
	Longitude float64 `bson:"longitude" json:"lng"`
}

func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// HelpRequest is a posted need for assistance
type HelpRequest struct {
	ID             string     `bson:"id" json:"id"`
	RequesterID    string     `bson:"requester_id" json:"requester_id"`
	RequesterEmail string     `bson:"requester_email" json:"requester_email"`
	RequesterName  string     `bson:"requester_name" json:"requester_name"`
	Type           string     `bson:"type" json:"type"`
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description" json:"description"`
	Location       Location   `bson:"location" json:"location"`
	Address        string     `bson:"address" json:"address"`
	Locality       string     `bson:"locality,omitempty" json:"locality,omitempty"`
	Priority       Priority   `bson:"priority" json:"priority"`
	Phone          string     `bson:"phone" json:"phone"`
	Status         HelpStatus `bson:"status" json:"status"`

	AcceptedResponseID string `bson:"accepted_response_id" json:"accepted_response_id,omitempty"`
	AcceptedUserID     string `bson:"accepted_user_id" json:"accepted_user_id,omitempty"`
	ResponseCount      int    `bson:"response_count" json:"response_count"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`

	Responses []Response `bson:"-" json:"responses,omitempty"`
}

// Snapshot copies the fields other records keep about a request
func (h HelpRequest) Snapshot() HelpSnapshot {
	return HelpSnapshot{
		ID:             h.ID,
		Type:           h.Type,
		Title:          h.Title,
		Description:    h.Description,
		Priority:       h.Priority,
		Location:       h.Location,
		Address:        h.Address,
		RequesterID:    h.RequesterID,
		RequesterEmail: h.RequesterEmail,
		RequesterName:  h.RequesterName,
	}
}

// HelpSnapshot is a denormalized copy of a help request
type HelpSnapshot struct {
	ID             string   `bson:"id" json:"id"`
	Type           string   `bson:"type" json:"type"`
	Title          string   `bson:"title" json:"title"`
	Description    string   `bson:"description" json:"description"`
	Priority       Priority `bson:"priority" json:"priority"`
	Location       Location `bson:"location" json:"location"`
	Address        string   `bson:"address" json:"address"`
	RequesterID    string   `bson:"requester_id" json:"requester_id"`
	RequesterEmail string   `bson:"requester_email" json:"requester_email"`
	RequesterName  string   `bson:"requester_name" json:"requester_name"`
}

// ResponseStatus is the state of an offer to help
type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseRejected ResponseStatus = "rejected"
)

// Response is one neighbor's offer against a help request
type Response struct {
	ID         string         `bson:"id" json:"id"`
	RequestID  string         `bson:"request_id" json:"request_id"`
	UserID     string         `bson:"user_id" json:"user_id"`
	Username   string         `bson:"username" json:"username"`
	Email      string         `bson:"email" json:"email"`
	Phone      string         `bson:"phone" json:"phone"`
	Message    string         `bson:"message" json:"message"`
	Status     ResponseStatus `bson:"status" json:"status"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	AcceptedAt *time.Time     `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	RejectedAt *time.Time     `bson:"rejected_at,omitempty" json:"rejected_at,omitempty"`
}

// HelpRequestFilter narrows a help request listing
type HelpRequestFilter struct {
	Status      HelpStatus
	Type        string
	RequesterID string
	Limit       int64
}
