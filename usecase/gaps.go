package usecase

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"skillpathservice/domain/models"
)

// Blend weights for the two demand signals. Live postings carry more weight
// than the curated competency table.
const (
	marketDemandWeight     = 0.6
	competencyDemandWeight = 0.4
)

// normalizeMarketScore converts an occurrence count over the job sample into
// a 0-100 demand score. A skill required by half the sample saturates.
func normalizeMarketScore(count, totalJobs int) int {
	if totalJobs == 0 {
		return 0
	}
	return min(100, int(math.Round(float64(count)/float64(totalJobs)*200)))
}

// IdentifySkillGaps diffs the student's skill profile against both demand
// signals. Every skill appearing in either source gets a unified demand
// score; skills the student already covers (gapSize 0) are excluded.
func IdentifySkillGaps(
	scores []models.SkillScore,
	marketDemand map[string]int,
	competencyDemand map[string]int,
	totalJobs int,
) []models.SkillGap {
	levels := make(map[string]int, len(scores))
	for _, score := range scores {
		levels[strings.ToLower(score.Name)] = score.Level
	}

	type candidate struct {
		name       string
		market     int
		competency int
		hasMarket  bool
		hasComp    bool
	}
	candidates := make(map[string]*candidate)

	// Market keys are case-sensitive, so "Go" and "go" arrive as separate
	// entries. Merge their occurrence counts before normalizing and keep the
	// lexicographically smallest casing so the result is independent of map
	// iteration order.
	type marketEntry struct {
		name  string
		count int
	}
	mergedMarket := make(map[string]*marketEntry)
	for skill, count := range marketDemand {
		key := strings.ToLower(skill)
		entry, ok := mergedMarket[key]
		if !ok {
			mergedMarket[key] = &marketEntry{name: skill, count: count}
			continue
		}
		entry.count += count
		if skill < entry.name {
			entry.name = skill
		}
	}
	for key, entry := range mergedMarket {
		candidates[key] = &candidate{
			name:      entry.name,
			market:    normalizeMarketScore(entry.count, totalJobs),
			hasMarket: true,
		}
	}
	for skill, demand := range competencyDemand {
		key := strings.ToLower(skill)
		cand, ok := candidates[key]
		if !ok {
			cand = &candidate{name: capitalizeSkill(skill)}
			candidates[key] = cand
		}
		cand.competency = demand
		cand.hasComp = true
	}

	gaps := make([]models.SkillGap, 0, len(candidates))
	for key, cand := range candidates {
		demand := blendDemand(cand.market, cand.competency, cand.hasMarket, cand.hasComp)
		level := levels[key] // 0 when the student never demonstrated the skill
		gapSize := demand - level
		if gapSize <= 0 {
			continue
		}
		gaps = append(gaps, models.SkillGap{
			Skill:        cand.name,
			DemandScore:  demand,
			CurrentLevel: level,
			GapSize:      gapSize,
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].GapSize != gaps[j].GapSize {
			return gaps[i].GapSize > gaps[j].GapSize
		}
		if gaps[i].DemandScore != gaps[j].DemandScore {
			return gaps[i].DemandScore > gaps[j].DemandScore
		}
		return gaps[i].Skill < gaps[j].Skill
	})
	for i := range gaps {
		gaps[i].Rank = i + 1
	}
	return gaps
}

func blendDemand(market, competency int, hasMarket, hasComp bool) int {
	switch {
	case hasMarket && hasComp:
		return int(math.Round(marketDemandWeight*float64(market) + competencyDemandWeight*float64(competency)))
	case hasMarket:
		return market
	default:
		return competency
	}
}

func capitalizeSkill(skill string) string {
	runes := []rune(skill)
	if len(runes) == 0 {
		return skill
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
