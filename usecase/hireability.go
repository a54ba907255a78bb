package usecase

import (
	"math"

	"skillpathservice/domain/models"
)

const (
	topSkillSample  = 5
	skillWeight     = 0.5
	maxProjectBonus = 20
	maxGapPenalty   = 30
	maxSoftBonus    = 15
)

// CalculateHireabilityScore combines the student's strongest skill levels, an
// inverse function of aggregate gap size, a log-scaled project count, and the
// certified soft-skill profile (when present) into one 0-100 score. Identical
// inputs always produce the identical score.
func CalculateHireabilityScore(
	scores []models.SkillScore,
	gaps []models.SkillGap,
	projectCount int,
	profile *models.CompetencyProfile,
) int {
	if len(scores) == 0 && projectCount == 0 {
		return 0
	}

	// Average of the top skill levels. Scores arrive sorted by level.
	sample := min(topSkillSample, len(scores))
	avgTopLevel := 0.0
	if sample > 0 {
		sum := 0
		for _, score := range scores[:sample] {
			sum += score.Level
		}
		avgTopLevel = float64(sum) / float64(sample)
	}

	// Diminishing returns on project count: the 10th project contributes
	// less than the 2nd.
	projectBonus := math.Min(maxProjectBonus, 8*math.Log2(1+float64(projectCount)))

	totalGap := 0
	for _, gap := range gaps {
		totalGap += gap.GapSize
	}
	gapPenalty := math.Min(maxGapPenalty, float64(totalGap)/20)

	softBonus := 0.0
	if profile != nil {
		dims := profile.Dimensions()
		sum := 0
		for _, dim := range dims {
			sum += dim
		}
		mean := float64(sum) / float64(len(dims))
		softBonus = mean / 100 * maxSoftBonus
	}

	raw := skillWeight*avgTopLevel + projectBonus + softBonus - gapPenalty
	return min(100, max(0, int(math.Round(raw))))
}
