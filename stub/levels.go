package stub

import (
	"sort"

	"github.com/octabyte/smartsaas-go/enums"
	"github.com/octabyte/smartsaas-go/models"
)

type levelTier struct {
	name string
	min  int64
	max  int64 // -1 = open-ended
}

var levelTiers = []levelTier{
	{enums.LevelBeginner, 0, enums.LevelActiveMin - 1},
	{enums.LevelActive, enums.LevelActiveMin, enums.LevelExpertMin - 1},
	{enums.LevelExpert, enums.LevelExpertMin, enums.LevelMasterMin - 1},
	{enums.LevelMaster, enums.LevelMasterMin, enums.LevelLegendMin - 1},
	{enums.LevelLegend, enums.LevelLegendMin, -1},
}

var levelBadges = map[string]string{
	enums.LevelBeginner: "🌱",
	enums.LevelActive:   "⭐",
	enums.LevelExpert:   "🏆",
	enums.LevelMaster:   "💎",
	enums.LevelLegend:   "👑",
}

// calculateLevel derives the reward level from the total amount of
// tokens a user has ever earned.
func calculateLevel(totalEarned int64) models.RewardLevel {
	for _, tier := range levelTiers {
		if totalEarned < tier.min || (tier.max >= 0 && totalEarned > tier.max) {
			continue
		}

		level := models.RewardLevel{
			Level:         tier.name,
			Badge:         levelBadges[tier.name],
			CurrentTokens: totalEarned,
		}
		if tier.max >= 0 {
			next := tier.max + 1
			level.NextLevelTokens = &next
			level.Progress = float64(totalEarned-tier.min) / float64(tier.max-tier.min) * 100
			if level.Progress > 100 {
				level.Progress = 100
			}
		} else {
			level.Progress = 100
		}
		return level
	}

	// Negative totals cannot happen; fall back to the first tier.
	return models.RewardLevel{
		Level:         enums.LevelBeginner,
		Badge:         levelBadges[enums.LevelBeginner],
		CurrentTokens: totalEarned,
	}
}

func sortLeaderboard(entries []models.LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalEarned != entries[j].TotalEarned {
			return entries[i].TotalEarned > entries[j].TotalEarned
		}
		return entries[i].Email < entries[j].Email
	})
}
