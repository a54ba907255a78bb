package usecase

import (
	"testing"

	"skillpathservice/domain/models"
)

func TestIdentifySkillGaps_MissingSkillAtLevelZero(t *testing.T) {
	// One posting requiring Go and SQL, student only knows Go at 80.
	jobs := []models.JobPosting{
		{Title: "Backend Engineer", RequiredSkills: []string{"Go", "SQL"}},
	}
	scores := []models.SkillScore{{Name: "Go", Level: 80, ProjectCount: 3}}

	gaps := IdentifySkillGaps(scores, AggregateMarketDemand(jobs), nil, len(jobs))
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}

	// Both skills normalize to demand 100; SQL has the larger gap.
	if gaps[0].Skill != "SQL" || gaps[0].CurrentLevel != 0 || gaps[0].GapSize != 100 {
		t.Errorf("got %+v", gaps[0])
	}
	if gaps[1].Skill != "Go" || gaps[1].CurrentLevel != 80 || gaps[1].GapSize != 20 {
		t.Errorf("got %+v", gaps[1])
	}
	if gaps[0].Rank != 1 || gaps[1].Rank != 2 {
		t.Errorf("expected ranks 1 and 2, got %d and %d", gaps[0].Rank, gaps[1].Rank)
	}
}

func TestIdentifySkillGaps_CoveredSkillExcluded(t *testing.T) {
	scores := []models.SkillScore{{Name: "Go", Level: 100}}
	market := map[string]int{"Go": 1}

	gaps := IdentifySkillGaps(scores, market, nil, 1)
	if len(gaps) != 0 {
		t.Errorf("expected no gaps, got %+v", gaps)
	}
}

func TestIdentifySkillGaps_BlendsBothSignals(t *testing.T) {
	// Market normalizes to 100, competency rates 50: 0.6*100 + 0.4*50 = 80.
	market := map[string]int{"Kubernetes": 1}
	competency := map[string]int{"kubernetes": 50}

	gaps := IdentifySkillGaps(nil, market, competency, 1)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].DemandScore != 80 {
		t.Errorf("expected blended demand 80, got %d", gaps[0].DemandScore)
	}
	if gaps[0].Skill != "Kubernetes" {
		t.Errorf("expected market casing kept, got %q", gaps[0].Skill)
	}
}

func TestIdentifySkillGaps_CompetencyOnlySkill(t *testing.T) {
	competency := map[string]int{"data analysis": 70}

	gaps := IdentifySkillGaps(nil, nil, competency, 0)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Skill != "Data analysis" {
		t.Errorf("expected capitalized name, got %q", gaps[0].Skill)
	}
	if gaps[0].DemandScore != 70 || gaps[0].GapSize != 70 {
		t.Errorf("got %+v", gaps[0])
	}
}

func TestIdentifySkillGaps_CaseVariantMarketKeysMerged(t *testing.T) {
	// Postings spell the same skill with different casing; the occurrence
	// counts must merge and the result must not depend on map iteration.
	jobs := []models.JobPosting{
		{Title: "Backend Engineer", RequiredSkills: []string{"Go"}},
		{Title: "Backend Engineer", RequiredSkills: []string{"Go"}},
		{Title: "Platform Engineer", RequiredSkills: []string{"go"}},
	}

	baseline := IdentifySkillGaps(nil, AggregateMarketDemand(jobs), nil, len(jobs))
	if len(baseline) != 1 {
		t.Fatalf("expected case variants collapsed into 1 gap, got %d", len(baseline))
	}
	// Merged count 3 over 3 jobs saturates the normalized score.
	if baseline[0].DemandScore != 100 {
		t.Errorf("expected merged demand 100, got %d", baseline[0].DemandScore)
	}
	if baseline[0].Skill != "Go" {
		t.Errorf("expected deterministic casing Go, got %q", baseline[0].Skill)
	}

	for i := 0; i < 50; i++ {
		gaps := IdentifySkillGaps(nil, AggregateMarketDemand(jobs), nil, len(jobs))
		if len(gaps) != 1 || gaps[0] != baseline[0] {
			t.Fatalf("run %d diverged: %+v vs %+v", i, gaps, baseline)
		}
	}
}

func TestIdentifySkillGaps_TieBreaks(t *testing.T) {
	// Same gap size and demand: alphabetical by skill.
	competency := map[string]int{"terraform": 60, "ansible": 60}

	gaps := IdentifySkillGaps(nil, nil, competency, 0)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	if gaps[0].Skill != "Ansible" || gaps[1].Skill != "Terraform" {
		t.Errorf("expected alphabetical tie-break, got %q then %q", gaps[0].Skill, gaps[1].Skill)
	}
}

func TestNormalizeMarketScore(t *testing.T) {
	tests := []struct {
		count, totalJobs, want int
	}{
		{0, 0, 0},
		{1, 200, 1},
		{50, 200, 50},
		{100, 200, 100},
		{200, 200, 100}, // saturates
	}
	for _, tt := range tests {
		if got := normalizeMarketScore(tt.count, tt.totalJobs); got != tt.want {
			t.Errorf("normalizeMarketScore(%d, %d) = %d, want %d", tt.count, tt.totalJobs, got, tt.want)
		}
	}
}
