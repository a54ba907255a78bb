package usecase

import (
	"fmt"
	"testing"

	"skillpathservice/domain/models"
)

func rankedGaps(n int) []models.SkillGap {
	gaps := make([]models.SkillGap, 0, n)
	for i := 0; i < n; i++ {
		gaps = append(gaps, models.SkillGap{
			Skill:   fmt.Sprintf("Skill%02d", i),
			GapSize: 100 - i,
			Rank:    i + 1,
		})
	}
	return gaps
}

func TestBuildRoadmap_Empty(t *testing.T) {
	milestones := BuildRoadmap(nil)
	if len(milestones) != 0 {
		t.Errorf("expected no milestones, got %+v", milestones)
	}
}

func TestBuildRoadmap_ThreePhases(t *testing.T) {
	milestones := BuildRoadmap(rankedGaps(9))
	if len(milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(milestones))
	}

	for i, milestone := range milestones {
		if milestone.Order != i+1 {
			t.Errorf("milestone %d has order %d", i, milestone.Order)
		}
		if len(milestone.Skills) != 3 {
			t.Errorf("milestone %d has %d skills", i, len(milestone.Skills))
		}
	}

	// Gap ranking preserved within and across phases.
	var all []string
	for _, milestone := range milestones {
		all = append(all, milestone.Skills...)
	}
	for i, skill := range all {
		want := fmt.Sprintf("Skill%02d", i)
		if skill != want {
			t.Errorf("position %d: got %q, want %q", i, skill, want)
		}
	}

	if milestones[0].Phase != "Near term" || milestones[2].Phase != "Long term" {
		t.Errorf("got phases %q, %q, %q", milestones[0].Phase, milestones[1].Phase, milestones[2].Phase)
	}
}

func TestBuildRoadmap_FewGaps(t *testing.T) {
	milestones := BuildRoadmap(rankedGaps(2))
	if len(milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(milestones))
	}
	if len(milestones[0].Skills) != 1 || len(milestones[1].Skills) != 1 {
		t.Errorf("got %+v", milestones)
	}
	if milestones[0].Skills[0] != "Skill00" {
		t.Errorf("highest-ranked gap should lead the near-term phase, got %q", milestones[0].Skills[0])
	}
}

func TestBuildRoadmap_AllGapsSequenced(t *testing.T) {
	gaps := rankedGaps(7)
	milestones := BuildRoadmap(gaps)

	total := 0
	for _, milestone := range milestones {
		total += len(milestone.Skills)
	}
	if total != len(gaps) {
		t.Errorf("expected all %d gaps sequenced, got %d", len(gaps), total)
	}
}
