package usecase

import (
	"math"
	"sort"
	"strings"

	"skillpathservice/domain/models"
)

const (
	// maxSkillScores caps the derived profile at the student's strongest skills.
	maxSkillScores = 20

	baseSkillLevel    = 40
	repeatSkillBonus  = 10
	defaultComplexity = 50
)

// BuildSkillScores derives a per-skill mastery level from a student's
// projects. Every update is a saturating addition followed by a clamp, so the
// final level is min(100, 40 + 10*(occurrences-1) + sum of complexity
// bonuses) regardless of project order.
//
// A project contributes each skill in skills ∪ technologies once, matched
// case-insensitively; the first casing seen becomes the display name.
func BuildSkillScores(projects []models.Project) []models.SkillScore {
	type skillAcc struct {
		name  string
		level int
		count int
	}
	accs := make(map[string]*skillAcc)
	contributions := make([][]string, len(projects))

	// Pass 1: occurrence counting. First sighting sets the base level, each
	// repeat adds a saturating bonus.
	for i, project := range projects {
		seen := make(map[string]bool)
		for _, raw := range append(append([]string{}, project.Skills...), project.Technologies...) {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			contributions[i] = append(contributions[i], key)

			acc, ok := accs[key]
			if !ok {
				accs[key] = &skillAcc{name: name, level: baseSkillLevel, count: 1}
				continue
			}
			acc.count++
			acc.level = min(100, acc.level+repeatSkillBonus)
		}
	}

	// Pass 2: complexity bonus for every skill the project contributed.
	for i, project := range projects {
		complexity := defaultComplexity
		if project.ComplexityScore != nil {
			complexity = *project.ComplexityScore
		}
		bonus := int(math.Round(float64(complexity) / 10))
		for _, key := range contributions[i] {
			acc := accs[key]
			acc.level = min(100, acc.level+bonus)
		}
	}

	scores := make([]models.SkillScore, 0, len(accs))
	for _, acc := range accs {
		scores = append(scores, models.SkillScore{
			Name:         acc.name,
			Level:        acc.level,
			ProjectCount: acc.count,
		})
	}

	// Descending by level, ties broken alphabetically for determinism.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Level != scores[j].Level {
			return scores[i].Level > scores[j].Level
		}
		return scores[i].Name < scores[j].Name
	})

	if len(scores) > maxSkillScores {
		scores = scores[:maxSkillScores]
	}
	return scores
}
