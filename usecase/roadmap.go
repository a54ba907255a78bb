package usecase

import (
	"fmt"

	"skillpathservice/domain/models"
)

var roadmapPhases = []struct {
	name  string
	title string
}{
	{"Near term", "Close your highest-priority skill gaps"},
	{"Mid term", "Broaden your core stack"},
	{"Long term", "Round out the remaining gaps"},
}

// BuildRoadmap sequences all gaps into up to three time-phased milestones.
// Gaps are split into equal thirds by rank, the gap ordering is preserved
// within each phase, and the explicit order field keeps re-renders stable.
func BuildRoadmap(gaps []models.SkillGap) []models.RoadmapMilestone {
	milestones := []models.RoadmapMilestone{}
	if len(gaps) == 0 {
		return milestones
	}

	phaseSize := (len(gaps) + len(roadmapPhases) - 1) / len(roadmapPhases)
	for i, phase := range roadmapPhases {
		start := i * phaseSize
		if start >= len(gaps) {
			break
		}
		end := min(start+phaseSize, len(gaps))

		skills := make([]string, 0, end-start)
		for _, gap := range gaps[start:end] {
			skills = append(skills, gap.Skill)
		}

		milestones = append(milestones, models.RoadmapMilestone{
			Order:       len(milestones) + 1,
			Phase:       phase.name,
			Title:       phase.title,
			Description: fmt.Sprintf("Learn and build with %s", joinSkills(skills)),
			Skills:      skills,
		})
	}
	return milestones
}

func joinSkills(skills []string) string {
	switch len(skills) {
	case 1:
		return skills[0]
	case 2:
		return skills[0] + " and " + skills[1]
	default:
		joined := ""
		for i, skill := range skills[:len(skills)-1] {
			if i > 0 {
				joined += ", "
			}
			joined += skill
		}
		return joined + " and " + skills[len(skills)-1]
	}
}
