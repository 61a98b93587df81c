package snake

import "time"

// speedTier maps a minimum score to the tick interval used from that score on.
type speedTier struct {
	minScore int
	interval time.Duration
}

// speedTiers is ordered from the highest threshold down.
var speedTiers = []speedTier{
	{minScore: 1500, interval: 50 * time.Millisecond},
	{minScore: 1000, interval: 100 * time.Millisecond},
	{minScore: 500, interval: 150 * time.Millisecond},
	{minScore: 0, interval: 200 * time.Millisecond},
}

// BaseInterval is the tick interval at the start of a game.
const BaseInterval = 200 * time.Millisecond

// Interval returns the tick interval for a score.
func Interval(score int) time.Duration {
	for _, t := range speedTiers {
		if score >= t.minScore {
			return t.interval
		}
	}
	return BaseInterval
}
