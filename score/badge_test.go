package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neighborly/neighborly-api/schema"
)

func ledgerEntry(requestType string, status schema.HelpStatus) schema.HelpedRequest {
	return schema.HelpedRequest{
		Status:  status,
		Request: schema.HelpSnapshot{Type: requestType},
	}
}

func TestBadgesFor(t *testing.T) {
	entries := []schema.HelpedRequest{
		ledgerEntry("General", schema.HelpCompleted),
		ledgerEntry("General", schema.HelpInProgress),
		ledgerEntry("Emergency", schema.HelpCompleted),
		ledgerEntry("Grocery", schema.HelpCompleted),
		ledgerEntry("Emergency", schema.HelpCancelled),
	}

	b := BadgesFor(entries, 7)
	assert.Equal(t, Badges{Bronze: 2, Gold: 1, Other: 1, TotalHelps: 4, Posts: 7}, b)
}

func TestBadgesForNoEntries(t *testing.T) {
	assert.Equal(t, Badges{}, BadgesFor(nil, 0))
}
