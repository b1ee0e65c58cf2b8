package schema

import "time"

const (
	HelpedRequestCollection = "helped_requests"
)

// HelpedRequest is the ledger entry created once a response is accepted.
// XP is frozen at creation and XPAwarded guards the single award to the helper.
type HelpedRequest struct {
	RequestID      string     `bson:"request_id" json:"request_id"`
	AcceptedUserID string     `bson:"accepted_user_id" json:"accepted_user_id"`
	ResponseID     string     `bson:"response_id" json:"response_id"`
	AcceptedAt     time.Time  `bson:"accepted_at" json:"accepted_at"`
	Status         HelpStatus `bson:"status" json:"status"`
	XP             int        `bson:"xp" json:"xp"`
	XPAwarded      bool       `bson:"xp_awarded" json:"-"`
	CompletedAt    *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`

	Request   HelpSnapshot      `bson:"request" json:"request"`
	Responder ResponderSnapshot `bson:"responder" json:"responder"`
}

// ResponderSnapshot keeps the helper's contact fields at acceptance time
type ResponderSnapshot struct {
	UserID   string `bson:"user_id" json:"user_id"`
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
}

// XPState is the experience summary embedded in a profile
type XPState struct {
	UserID       string `bson:"id" json:"user_id"`
	AccumulateXP int    `bson:"accumulate_xp" json:"accumulate_xp"`
	Level        int    `bson:"level" json:"level"`
}
