package usecase

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"skillpathservice/domain/models"
)

const (
	maxCareerPaths       = 10
	maxPathSkillExamples = 5
)

var (
	seniorityPattern  = regexp.MustCompile(`\b(senior|junior|lead|principal|staff|intern|mid-level|entry-level)\b`)
	romanLevelPattern = regexp.MustCompile(`\b(i|ii|iii|iv|v)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// normalizeJobTitle collapses title variants ("Senior Backend Engineer II",
// "backend engineer") into one canonical bucket key.
func normalizeJobTitle(title string) string {
	normalized := strings.ToLower(title)
	normalized = seniorityPattern.ReplaceAllString(normalized, "")
	normalized = romanLevelPattern.ReplaceAllString(normalized, "")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// BuildCareerPaths ranks candidate career paths by how well the student's
// skills cover the requirements aggregated across each title bucket. Buckets
// with no stated requirements are skipped.
func BuildCareerPaths(scores []models.SkillScore, jobs []models.JobPosting) []models.CareerPath {
	type bucket struct {
		titles   []string
		required map[string]bool
	}
	buckets := make(map[string]*bucket)

	for _, job := range jobs {
		key := normalizeJobTitle(job.Title)
		if key == "" {
			continue
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{required: make(map[string]bool)}
			buckets[key] = b
		}
		b.titles = append(b.titles, job.Title)
		for _, raw := range job.RequiredSkills {
			skill := strings.ToLower(strings.TrimSpace(raw))
			if skill != "" {
				b.required[skill] = true
			}
		}
	}

	studentSkills := make(map[string]bool, len(scores))
	for _, score := range scores {
		studentSkills[strings.ToLower(score.Name)] = true
	}

	type rankedPath struct {
		path      models.CareerPath
		bucketKey string
	}
	ranked := make([]rankedPath, 0, len(buckets))

	for key, b := range buckets {
		if len(b.required) == 0 {
			continue
		}
		required := make([]string, 0, len(b.required))
		for skill := range b.required {
			required = append(required, skill)
		}
		sort.Strings(required)

		var present, missing []string
		for _, skill := range required {
			if studentSkills[skill] {
				present = append(present, capitalizeSkill(skill))
			} else {
				missing = append(missing, capitalizeSkill(skill))
			}
		}

		match := int(math.Round(float64(len(present)) / float64(len(required)) * 100))
		plural := ""
		if len(b.titles) > 1 {
			plural = "s"
		}
		ranked = append(ranked, rankedPath{
			bucketKey: key,
			path: models.CareerPath{
				Title:           b.titles[0],
				MatchPercentage: match,
				Description:     fmt.Sprintf("Based on %d job listing%s", len(b.titles), plural),
				PresentSkills:   capStrings(present, maxPathSkillExamples),
				MissingSkills:   capStrings(missing, maxPathSkillExamples),
			},
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].path.MatchPercentage != ranked[j].path.MatchPercentage {
			return ranked[i].path.MatchPercentage > ranked[j].path.MatchPercentage
		}
		return ranked[i].bucketKey < ranked[j].bucketKey
	})

	paths := make([]models.CareerPath, 0, maxCareerPaths)
	for _, rp := range ranked {
		if len(paths) >= maxCareerPaths {
			break
		}
		paths = append(paths, rp.path)
	}
	return paths
}

func capStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
