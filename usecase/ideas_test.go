package usecase

import (
	"strings"
	"testing"

	"skillpathservice/domain/models"
)

func TestGenerateProjectIdeas_TargetsTopGaps(t *testing.T) {
	gaps := []models.SkillGap{
		{Skill: "Kubernetes", GapSize: 90, Rank: 1},
		{Skill: "Terraform", GapSize: 80, Rank: 2},
	}

	ideas := GenerateProjectIdeas(gaps, "TECHNOLOGY")
	if len(ideas) != 2 {
		t.Fatalf("expected 2 ideas, got %d", len(ideas))
	}
	if ideas[0].TargetSkill != "Kubernetes" || ideas[1].TargetSkill != "Terraform" {
		t.Errorf("got targets %q, %q", ideas[0].TargetSkill, ideas[1].TargetSkill)
	}
	if !strings.Contains(ideas[0].Title, "Kubernetes") {
		t.Errorf("template placeholder not substituted: %q", ideas[0].Title)
	}
	if ideas[0].Discipline != "TECHNOLOGY" {
		t.Errorf("got discipline %q", ideas[0].Discipline)
	}
}

func TestGenerateProjectIdeas_CappedAndDeduplicated(t *testing.T) {
	var gaps []models.SkillGap
	for i := 0; i < 12; i++ {
		gaps = append(gaps, models.SkillGap{Skill: "AWS", GapSize: 90 - i})
	}

	ideas := GenerateProjectIdeas(gaps, "TECHNOLOGY")
	if len(ideas) != 1 {
		t.Errorf("expected duplicate target skills collapsed, got %d ideas", len(ideas))
	}

	gaps = gaps[:0]
	for _, skill := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		gaps = append(gaps, models.SkillGap{Skill: skill})
	}
	ideas = GenerateProjectIdeas(gaps, "TECHNOLOGY")
	if len(ideas) != maxProjectIdeas {
		t.Errorf("expected cap of %d, got %d", maxProjectIdeas, len(ideas))
	}
}

func TestGenerateProjectIdeas_DisciplineTemplates(t *testing.T) {
	gaps := []models.SkillGap{{Skill: "Excel", GapSize: 70}}

	ideas := GenerateProjectIdeas(gaps, "BUSINESS")
	if len(ideas) != 1 {
		t.Fatalf("expected 1 idea, got %d", len(ideas))
	}
	if ideas[0].Title != "Excel Financial Model" {
		t.Errorf("expected business template, got %q", ideas[0].Title)
	}

	ideas = GenerateProjectIdeas(gaps, "DESIGN")
	if ideas[0].Title != "Excel Design System" {
		t.Errorf("expected design template, got %q", ideas[0].Title)
	}
}

func TestPrimaryDiscipline(t *testing.T) {
	projects := []models.Project{
		{Discipline: "DESIGN"},
		{Discipline: "BUSINESS"},
		{Discipline: "BUSINESS"},
	}
	if got := PrimaryDiscipline(projects); got != "BUSINESS" {
		t.Errorf("expected BUSINESS, got %q", got)
	}

	// Ties broken by first-seen order.
	tied := []models.Project{
		{Discipline: "DESIGN"},
		{Discipline: "BUSINESS"},
	}
	if got := PrimaryDiscipline(tied); got != "DESIGN" {
		t.Errorf("expected DESIGN, got %q", got)
	}

	if got := PrimaryDiscipline(nil); got != "TECHNOLOGY" {
		t.Errorf("expected TECHNOLOGY default, got %q", got)
	}
}
