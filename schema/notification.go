package schema

import "time"

const (
	NotificationCollection = "notifications"
)

// NotificationType of an in-app notification
type NotificationType string

const (
	NotificationHelpRequest    NotificationType = "help_request"
	NotificationHelpResponse   NotificationType = "help_response"
	NotificationStatusUpdate   NotificationType = "help_status_update"
	NotificationCommunityAdmin NotificationType = "community_admin"
)

// community placeholders for notifications not scoped to a community
const (
	ResponseCommunityID   = "response"
	ResponseCommunityName = "Help Response"
	StatusCommunityID     = "status_update"
	StatusCommunityName   = "Status Update"
)

// Notification is one record per recipient and triggering event
type Notification struct {
	ID             string           `bson:"id" json:"id"`
	RecipientID    string           `bson:"recipient_id" json:"recipient_id"`
	RecipientEmail string           `bson:"recipient_email" json:"recipient_email"`
	Type           NotificationType `bson:"type" json:"type"`
	Title          string           `bson:"title" json:"title"`
	Message        string           `bson:"message" json:"message"`
	HelpRequestID  string           `bson:"help_request_id,omitempty" json:"help_request_id,omitempty"`
	Request        *HelpSnapshot    `bson:"request,omitempty" json:"request,omitempty"`
	CommunityID    string           `bson:"community_id" json:"community_id"`
	CommunityName  string           `bson:"community_name" json:"community_name"`
	IsRead         bool             `bson:"is_read" json:"is_read"`
	ReadAt         *time.Time       `bson:"read_at,omitempty" json:"read_at,omitempty"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
	ExpiresAt      time.Time        `bson:"expires_at" json:"expires_at"`
}
