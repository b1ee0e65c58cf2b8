package community

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(days|day|hours|hour|weeks|week|months|month)`)

// EndDate resolves a block duration such as "1 day", "2 weeks" or "5 hours" from start.
// Months follow calendar arithmetic.
func EndDate(start time.Time, duration string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(duration)) {
	case "1 day":
		return start.AddDate(0, 0, 1), nil
	case "3 days":
		return start.AddDate(0, 0, 3), nil
	case "1 week":
		return start.AddDate(0, 0, 7), nil
	case "2 weeks":
		return start.AddDate(0, 0, 14), nil
	case "1 month":
		return start.AddDate(0, 1, 0), nil
	case "3 months":
		return start.AddDate(0, 3, 0), nil
	}

	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized duration %q", duration)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("unrecognized duration %q", duration)
	}

	switch unit := strings.ToLower(m[2]); {
	case strings.HasPrefix(unit, "day"):
		return start.AddDate(0, 0, n), nil
	case strings.HasPrefix(unit, "hour"):
		return start.Add(time.Duration(n) * time.Hour), nil
	case strings.HasPrefix(unit, "week"):
		return start.AddDate(0, 0, 7*n), nil
	default:
		return start.AddDate(0, n, 0), nil
	}
}
