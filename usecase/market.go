package usecase

import (
	"strings"

	"skillpathservice/domain/models"
)

// AggregateMarketDemand counts how often each required skill occurs across
// the job sample. Keys are trimmed but case-sensitive; blending with the
// competency signal is the gap identifier's responsibility.
func AggregateMarketDemand(jobs []models.JobPosting) map[string]int {
	demand := make(map[string]int)
	for _, job := range jobs {
		for _, raw := range job.RequiredSkills {
			skill := strings.TrimSpace(raw)
			if skill == "" {
				continue
			}
			demand[skill]++
		}
	}
	return demand
}

// AggregateCompetencyDemand maps lowercased competency names to their curated
// industry-demand rating. Rows without a rating are skipped.
func AggregateCompetencyDemand(competencies []models.Competency) map[string]int {
	demand := make(map[string]int)
	for _, competency := range competencies {
		if competency.IndustryDemand == nil {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(competency.Name))
		if name == "" {
			continue
		}
		demand[name] = *competency.IndustryDemand
	}
	return demand
}
