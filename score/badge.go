package score

import "github.com/neighborly/neighborly-api/schema"

const (
	BronzeBadgeType = "General"
	GoldBadgeType   = "Emergency"
)

// Badges counts a helper's engagements by request type
type Badges struct {
	Bronze     int `json:"bronze"`
	Gold       int `json:"gold"`
	Other      int `json:"other"`
	TotalHelps int `json:"total_helps"`
	Posts      int `json:"posts"`
}

// BadgesFor computes badges from ledger entries on every call. Entries that are not
// in an XP eligible status do not count.
func BadgesFor(entries []schema.HelpedRequest, postCount int) Badges {
	b := Badges{Posts: postCount}
	for _, e := range entries {
		if !e.Status.XPEligible() {
			continue
		}

		switch e.Request.Type {
		case BronzeBadgeType:
			b.Bronze++
		case GoldBadgeType:
			b.Gold++
		default:
			b.Other++
		}
		b.TotalHelps++
	}
	return b
}
