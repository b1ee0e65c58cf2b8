package schema

import "time"

const (
	CommunityCollection      = "communities"
	CommunityBlockCollection = "community_blocks"
)

// Community is a neighborhood group. Membership sets hold user emails.
type Community struct {
	ID             string        `bson:"id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	Admins         []string      `bson:"admins" json:"admins"`
	Members        []string      `bson:"members" json:"members"`
	BlockedMembers []string      `bson:"blocked_members" json:"blocked_members"`
	JoinRequests   []JoinRequest `bson:"join_requests" json:"join_requests"`
	MemberCount    int           `bson:"member_count" json:"member_count"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
}

func (c Community) IsAdmin(email string) bool {
	return contains(c.Admins, email)
}

func (c Community) IsMember(email string) bool {
	return contains(c.Members, email)
}

func (c Community) HasJoinRequest(email string) bool {
	for _, r := range c.JoinRequests {
		if r.UserEmail == email {
			return true
		}
	}
	return false
}

// JoinRequest is a pending membership request
type JoinRequest struct {
	UserID      string    `bson:"user_id" json:"user_id"`
	UserEmail   string    `bson:"user_email" json:"user_email"`
	Username    string    `bson:"username" json:"username"`
	Message     string    `bson:"message" json:"message"`
	RequestedAt time.Time `bson:"requested_at" json:"requested_at"`
}

// BlockType of a community block
type BlockType string

const (
	BlockTemporary  BlockType = "temporary"
	BlockIndefinite BlockType = "indefinite"
	BlockPermanent  BlockType = "permanent"
)

func (t BlockType) Valid() bool {
	switch t {
	case BlockTemporary, BlockIndefinite, BlockPermanent:
		return true
	}
	return false
}

// CommunityBlock is the audit record of one block action
type CommunityBlock struct {
	ID                  string     `bson:"id" json:"id"`
	CommunityID         string     `bson:"community_id" json:"community_id"`
	BlockedUserEmail    string     `bson:"blocked_user_email" json:"blocked_user_email"`
	BlockedByAdminEmail string     `bson:"blocked_by_admin_email" json:"blocked_by_admin_email"`
	BlockType           BlockType  `bson:"block_type" json:"block_type"`
	Duration            string     `bson:"duration,omitempty" json:"duration,omitempty"`
	StartDate           time.Time  `bson:"start_date" json:"start_date"`
	EndDate             *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Reason              string     `bson:"reason" json:"reason"`
	CustomReason        string     `bson:"custom_reason,omitempty" json:"custom_reason,omitempty"`
	IsActive            bool       `bson:"is_active" json:"is_active"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at" json:"updated_at"`
}

// Expired reports whether a temporary block has run past its end date
func (b CommunityBlock) Expired(now time.Time) bool {
	return b.BlockType == BlockTemporary && b.EndDate != nil && now.After(*b.EndDate)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
