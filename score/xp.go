package score

import "github.com/neighborly/neighborly-api/schema"

const (
	EmergencyXP = 500
	UrgentXP    = 300
	DefaultXP   = 100
)

// LevelThresholds holds the minimum experience of each level, level 1 first
var LevelThresholds = []int{0, 1000, 3500, 8500, 16500, 28500, 45500, 68500, 98500, 136500}

// XPFor returns the experience a helper earns for a request of the given priority
func XPFor(p schema.Priority) int {
	switch p {
	case schema.PriorityEmergency:
		return EmergencyXP
	case schema.PriorityUrgent:
		return UrgentXP
	default:
		return DefaultXP
	}
}

// LevelFor returns the highest level whose threshold is reached. Values past the
// last threshold stay at the top level and negative values are level 1.
func LevelFor(xp int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevelXP returns the threshold of the next level, or -1 at the top level
func NextLevelXP(xp int) int {
	level := LevelFor(xp)
	if level >= len(LevelThresholds) {
		return -1
	}
	return LevelThresholds[level]
}
