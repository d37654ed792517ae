// Package present derives deterministic presentation state from a ranked
// result list: score tiers, truncated match and skill views, source buckets.
// It never reorders what the backend returned.
package present

// Tier is the discrete presentation bucket for a relevance score.
type Tier string

const (
	TierStrong Tier = "strong"
	TierGood   Tier = "good"
	TierFair   Tier = "fair"
	TierWeak   Tier = "weak"
)

// Tier thresholds, inclusive at the lower bound of each bucket.
const (
	strongThreshold = 0.8
	goodThreshold   = 0.6
	fairThreshold   = 0.4
)

// TierFor maps a score to its tier. The same mapping is used everywhere a
// score is rendered: card headers and per-match relevance lines.
func TierFor(score float64) Tier {
	switch {
	case score >= strongThreshold:
		return TierStrong
	case score >= goodThreshold:
		return TierGood
	case score >= fairThreshold:
		return TierFair
	default:
		return TierWeak
	}
}

// LegendEntry pairs a tier with the lower bound of its score range.
type LegendEntry struct {
	Tier Tier
	Min  float64
}

// Legend lists the tiers strongest first with their lower bounds, for the
// CLI score legend.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Tier: TierStrong, Min: strongThreshold},
		{Tier: TierGood, Min: goodThreshold},
		{Tier: TierFair, Min: fairThreshold},
		{Tier: TierWeak, Min: 0},
	}
}
