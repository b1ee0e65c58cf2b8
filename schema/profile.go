package schema

import "time"

const (
	ProfileCollection = "profile"
)

// Profile - user profile data
type Profile struct {
	ID                 string    `bson:"id" json:"id"`
	Email              string    `bson:"email" json:"email"`
	Username           string    `bson:"username" json:"username"`
	Phone              string    `bson:"phone" json:"phone"`
	Language           string    `bson:"language" json:"language"`
	FCMTokens          []string  `bson:"fcm_tokens" json:"-"`
	Communities        []string  `bson:"communities" json:"communities"`
	PendingCommunities []string  `bson:"pending_communities" json:"pending_communities"`
	AccumulateXP       int       `bson:"accumulate_xp" json:"accumulate_xp"`
	Level              int       `bson:"level" json:"level"`
	PostCount          int       `bson:"post_count" json:"post_count"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayName falls back to the email when no username was set
func (p Profile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Email
}
