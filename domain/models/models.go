package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a student's portfolio project. Projects are owned by the student
// service and are read-only inputs to the recommendation engine.
type Project struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	UserID          string                      `gorm:"index" json:"user_id"`
	Title           string                      `json:"title"`
	Description     string                      `json:"description"`
	Discipline      string                      `json:"discipline"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	Tools           datatypes.JSONSlice[string] `json:"tools"`
	ComplexityScore *int                        `json:"complexity_score"`
	InnovationScore *int                        `json:"innovation_score"`
	MarketRelevance *int                        `json:"market_relevance"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// JobPosting is an employer job listing. Only ACTIVE public postings are
// sampled for market demand.
type JobPosting struct {
	ID              uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployerID      string                      `json:"employer_id"`
	Title           string                      `json:"title"`
	RequiredSkills  datatypes.JSONSlice[string] `json:"required_skills"`
	PreferredSkills datatypes.JSONSlice[string] `json:"preferred_skills"`
	Status          string                      `json:"status"` // ACTIVE, CLOSED, DRAFT
	IsPublic        bool                        `json:"is_public"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// Competency is a curated reference-table row rating industry demand for a
// skill independent of the live job sample.
type Competency struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `json:"name"`
	IndustryDemand *int   `json:"industry_demand"` // 0-100, nullable
	Discipline     string `json:"discipline"`
}

// SoftSkillAssessment is the outcome of a proctored soft-skill evaluation.
// Only CERTIFIED assessments feed the hireability score.
type SoftSkillAssessment struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	UserID    string             `gorm:"index" json:"user_id"`
	Status    string             `json:"status"` // PENDING, CERTIFIED, REJECTED
	Profile   *CompetencyProfile `gorm:"foreignKey:AssessmentID" json:"profile"`
	CreatedAt time.Time          `json:"created_at"`
}

// CompetencyProfile holds the eight certified soft-skill dimensions, each 0-100.
type CompetencyProfile struct {
	ID                    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID          string `gorm:"index" json:"assessment_id"`
	Communication         int    `json:"communication"`
	Teamwork              int    `json:"teamwork"`
	Leadership            int    `json:"leadership"`
	ProblemSolving        int    `json:"problem_solving"`
	Adaptability          int    `json:"adaptability"`
	EmotionalIntelligence int    `json:"emotional_intelligence"`
	TimeManagement        int    `json:"time_management"`
	ConflictResolution    int    `json:"conflict_resolution"`
}

// Dimensions returns the eight scores in a fixed order.
func (p *CompetencyProfile) Dimensions() []int {
	return []int{
		p.Communication,
		p.Teamwork,
		p.Leadership,
		p.ProblemSolving,
		p.Adaptability,
		p.EmotionalIntelligence,
		p.TimeManagement,
		p.ConflictResolution,
	}
}

// AnalyticsEvent is a best-effort usage event. Writes are fire-and-forget and
// failures are discarded.
type AnalyticsEvent struct {
	ID         string            `gorm:"primaryKey" json:"id"`
	UserID     string            `gorm:"index" json:"user_id"`
	EventType  string            `json:"event_type"`
	EventName  string            `json:"event_name"`
	Properties datatypes.JSONMap `json:"properties"`
	CreatedAt  time.Time         `json:"created_at"`
}
