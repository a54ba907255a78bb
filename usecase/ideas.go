package usecase

import (
	"strings"

	"skillpathservice/domain/models"
)

// maxProjectIdeas is an internal cap, independent of tier gating which
// narrows the list later at read time.
const maxProjectIdeas = 8

type ideaTemplate struct {
	title       string
	description string
}

var baseIdeaTemplates = []ideaTemplate{
	{"{skill} Portfolio Project", "Build a showcase project demonstrating your {skill} abilities with real-world application"},
	{"{skill} Dashboard App", "Create an interactive dashboard using {skill} to visualize and analyze data"},
	{"{skill} API Service", "Design and implement a REST API service leveraging {skill}"},
	{"{skill} Automation Tool", "Build a tool that automates common tasks using {skill}"},
	{"{skill} Open Source Contribution", "Contribute to an open source project that uses {skill}"},
	{"{skill} Case Study", "Analyze a real-world problem and propose a solution using {skill}"},
	{"{skill} Mobile App", "Create a mobile application that demonstrates {skill} proficiency"},
	{"{skill} Integration Project", "Build a project that integrates {skill} with other technologies in your stack"},
}

var businessIdeaTemplates = append([]ideaTemplate{
	{"{skill} Financial Model", "Build a comprehensive financial model using {skill}"},
	{"{skill} Market Analysis", "Conduct market research and analysis with {skill}"},
	{"{skill} Business Plan", "Create a business plan leveraging {skill} methodologies"},
}, baseIdeaTemplates[:5]...)

var designIdeaTemplates = append([]ideaTemplate{
	{"{skill} Design System", "Create a comprehensive design system using {skill}"},
	{"{skill} UX Case Study", "Conduct user research and create a UX case study with {skill}"},
	{"{skill} Brand Identity", "Design a complete brand identity package using {skill}"},
}, baseIdeaTemplates[:5]...)

func ideaTemplatesFor(discipline string) []ideaTemplate {
	switch discipline {
	case "BUSINESS":
		return businessIdeaTemplates
	case "DESIGN":
		return designIdeaTemplates
	default:
		return baseIdeaTemplates
	}
}

// GenerateProjectIdeas converts the top skill gaps into suggested projects
// using the discipline's template table. Ideas are deduplicated by target
// skill and capped internally.
func GenerateProjectIdeas(gaps []models.SkillGap, discipline string) []models.ProjectIdea {
	templates := ideaTemplatesFor(discipline)
	ideas := make([]models.ProjectIdea, 0, maxProjectIdeas)
	used := make(map[string]bool)

	for i, gap := range gaps {
		if len(ideas) >= maxProjectIdeas || i >= len(templates) {
			break
		}
		key := strings.ToLower(gap.Skill)
		if used[key] {
			continue
		}
		used[key] = true

		template := templates[i]
		ideas = append(ideas, models.ProjectIdea{
			Title:       strings.ReplaceAll(template.title, "{skill}", gap.Skill),
			Description: strings.ReplaceAll(template.description, "{skill}", gap.Skill),
			TargetSkill: gap.Skill,
			Discipline:  discipline,
		})
	}
	return ideas
}

// PrimaryDiscipline is the most frequent discipline across the student's
// projects, ties broken by first-seen order.
func PrimaryDiscipline(projects []models.Project) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, project := range projects {
		if project.Discipline == "" {
			continue
		}
		if _, ok := firstSeen[project.Discipline]; !ok {
			firstSeen[project.Discipline] = i
		}
		counts[project.Discipline]++
	}

	best := ""
	for discipline, count := range counts {
		if best == "" ||
			count > counts[best] ||
			(count == counts[best] && firstSeen[discipline] < firstSeen[best]) {
			best = discipline
		}
	}
	if best == "" {
		return "TECHNOLOGY"
	}
	return best
}
