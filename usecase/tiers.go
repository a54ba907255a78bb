package usecase

import (
	"skillpathservice/domain/models"
)

const (
	TierFree           = "FREE"
	TierStudentPremium = "STUDENT_PREMIUM"
)

// unlimited is an effectively-unbounded slice cap for premium tiers.
const unlimited = 999

var tierLimitsTable = map[string]models.TierLimits{
	TierFree: {
		Tier:            TierFree,
		MaxGaps:         3,
		MaxProjectIdeas: 2,
		MaxCareerPaths:  1,
		HasRoadmap:      false,
		HasChallenges:   false,
		RefreshCooldown: 10080, // 7 days in minutes
	},
	TierStudentPremium: {
		Tier:            TierStudentPremium,
		MaxGaps:         unlimited,
		MaxProjectIdeas: unlimited,
		MaxCareerPaths:  unlimited,
		HasRoadmap:      true,
		HasChallenges:   true,
		RefreshCooldown: 60, // 1 hour in minutes
	},
}

// TierLimitsFor returns the visibility policy for a subscription tier.
// Unknown tiers fall back to FREE.
func TierLimitsFor(tier string) models.TierLimits {
	if limits, ok := tierLimitsTable[tier]; ok {
		return limits
	}
	return tierLimitsTable[TierFree]
}
