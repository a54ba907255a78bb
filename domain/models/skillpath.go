package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// SkillScore is a per-skill mastery level derived from project history.
// Recomputed on every generation, never persisted on its own.
type SkillScore struct {
	Name         string `json:"name"`
	Level        int    `json:"level"` // 0-100
	ProjectCount int    `json:"projectCount"`
}

// SkillGap is the shortfall between market demand for a skill and the
// student's demonstrated level.
type SkillGap struct {
	Skill        string `json:"skill"`
	DemandScore  int    `json:"demandScore"`
	CurrentLevel int    `json:"currentLevel"`
	GapSize      int    `json:"gapSize"`
	Rank         int    `json:"rank"`
}

// ProjectIdea is a suggested portfolio project targeting one skill gap.
type ProjectIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetSkill string `json:"targetSkill"`
	Discipline  string `json:"discipline"`
}

// CareerPath is an occupational track scored by how well the student's
// skills match the requirements seen across its job listings.
type CareerPath struct {
	Title           string   `json:"title"`
	MatchPercentage int      `json:"matchPercentage"`
	Description     string   `json:"description"`
	PresentSkills   []string `json:"presentSkills"`
	MissingSkills   []string `json:"missingSkills"`
}

// RoadmapMilestone is one time-phased step toward closing skill gaps. Order
// is explicit so the client can re-render stably.
type RoadmapMilestone struct {
	Order       int      `json:"order"`
	Phase       string   `json:"phase"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Recommendations bundles the generated suggestion artifacts stored with a
// recommendation record. Challenges and resources are populated as those
// features mature.
type Recommendations struct {
	ProjectIdeas []ProjectIdea `json:"projectIdeas"`
	Challenges   []ProjectIdea `json:"challenges"`
	Resources    []string      `json:"resources"`
}

// SkillPathResult is the full, ungated output of one generation run.
type SkillPathResult struct {
	CurrentSkills    []SkillScore
	SkillGaps        []SkillGap
	Recommendations  Recommendations
	CareerPaths      []CareerPath
	HireabilityScore int
}

// RecommendationRecord is the single persisted entity: one row per user
// holding the full ungated result with a TTL. Tier gating is applied at read
// time, never before the write.
type RecommendationRecord struct {
	UserID           string         `gorm:"primaryKey" json:"user_id"`
	CurrentSkills    datatypes.JSON `json:"current_skills"`
	SkillGaps        datatypes.JSON `json:"skill_gaps"`
	Recommendations  datatypes.JSON `json:"recommendations"`
	CareerPaths      datatypes.JSON `json:"career_paths"`
	HireabilityScore int            `json:"hireability_score"`
	GeneratedAt      time.Time      `json:"generated_at"`
	ExpiresAt        time.Time      `json:"expires_at"`
	RefreshedAt      time.Time      `json:"refreshed_at"`
}

// NewRecommendationRecord serializes a generation result into a storable row.
func NewRecommendationRecord(userID string, result *SkillPathResult, generatedAt, expiresAt time.Time) (*RecommendationRecord, error) {
	skills, err := json.Marshal(result.CurrentSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode current skills: %v", err)
	}
	gaps, err := json.Marshal(result.SkillGaps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skill gaps: %v", err)
	}
	recs, err := json.Marshal(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendations: %v", err)
	}
	paths, err := json.Marshal(result.CareerPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to encode career paths: %v", err)
	}

	return &RecommendationRecord{
		UserID:           userID,
		CurrentSkills:    skills,
		SkillGaps:        gaps,
		Recommendations:  recs,
		CareerPaths:      paths,
		HireabilityScore: result.HireabilityScore,
		GeneratedAt:      generatedAt,
		ExpiresAt:        expiresAt,
	}, nil
}

// Decode deserializes the stored JSON columns back into a result.
func (r *RecommendationRecord) Decode() (*SkillPathResult, error) {
	result := &SkillPathResult{HireabilityScore: r.HireabilityScore}
	if err := json.Unmarshal(r.CurrentSkills, &result.CurrentSkills); err != nil {
		return nil, fmt.Errorf("failed to decode current skills: %v", err)
	}
	if err := json.Unmarshal(r.SkillGaps, &result.SkillGaps); err != nil {
		return nil, fmt.Errorf("failed to decode skill gaps: %v", err)
	}
	if err := json.Unmarshal(r.Recommendations, &result.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %v", err)
	}
	if err := json.Unmarshal(r.CareerPaths, &result.CareerPaths); err != nil {
		return nil, fmt.Errorf("failed to decode career paths: %v", err)
	}
	return result, nil
}

// TierLimits is the static per-tier visibility policy.
type TierLimits struct {
	Tier            string `json:"tier"`
	MaxGaps         int    `json:"maxGaps"`
	MaxProjectIdeas int    `json:"maxProjectIdeas"`
	MaxCareerPaths  int    `json:"maxCareerPaths"`
	HasRoadmap      bool   `json:"hasRoadmap"`
	HasChallenges   bool   `json:"hasChallenges"`
	RefreshCooldown int    `json:"refreshCooldown"` // minutes
}

// SkillPathData is the gated, presentation-ready payload.
type SkillPathData struct {
	HireabilityScore int                `json:"hireabilityScore"`
	CurrentSkills    []SkillScore       `json:"currentSkills"`
	SkillGaps        []SkillGap         `json:"skillGaps"`
	ProjectIdeas     []ProjectIdea      `json:"projectIdeas"`
	CareerPaths      []CareerPath       `json:"careerPaths"`
	Roadmap          []RoadmapMilestone `json:"roadmap"`
	Challenges       []ProjectIdea      `json:"challenges"`
	GeneratedAt      time.Time          `json:"generatedAt"`
	ExpiresAt        time.Time          `json:"expiresAt"`
}

// SkillPathResponse is the public response envelope. Totals always reflect
// ungated counts so the client can show "N more available" upgrade prompts.
type SkillPathResponse struct {
	Data              *SkillPathData `json:"data"`
	TierLimits        TierLimits     `json:"tierLimits"`
	IsLimited         bool           `json:"isLimited"`
	IsEmpty           bool           `json:"isEmpty,omitempty"`
	TotalGaps         int            `json:"totalGaps"`
	TotalProjectIdeas int            `json:"totalProjectIdeas"`
	TotalCareerPaths  int            `json:"totalCareerPaths"`
}
