package repository

import (
	"context"
	"time"

	"skillpathservice/domain/models"
)

type ProjectRepository interface {
	GetProjectsByUser(ctx context.Context, userID string) ([]models.Project, error)
}

type JobRepository interface {
	// SampleActiveJobs returns up to limit ACTIVE public postings, most
	// recent first.
	SampleActiveJobs(ctx context.Context, limit int) ([]models.JobPosting, error)
}

type CompetencyRepository interface {
	// GetRatedCompetencies returns reference rows with a non-null
	// industry demand rating.
	GetRatedCompetencies(ctx context.Context) ([]models.Competency, error)
}

type AssessmentRepository interface {
	// GetCertifiedAssessment returns the most recent CERTIFIED soft-skill
	// assessment for the user, or nil if none exists.
	GetCertifiedAssessment(ctx context.Context, userID string) (*models.SoftSkillAssessment, error)
}

type RecommendationRepository interface {
	// GetByUser returns the user's recommendation record, or nil if absent.
	GetByUser(ctx context.Context, userID string) (*models.RecommendationRecord, error)

	// Upsert atomically writes the full record, replacing any existing row
	// for the same user. A record is never partially written.
	Upsert(ctx context.Context, record *models.RecommendationRecord) error

	// TouchRefreshedAt stamps the forced-refresh timestamp on the user's row.
	TouchRefreshedAt(ctx context.Context, userID string, refreshedAt time.Time) error

	// PurgeExpiredBefore deletes records whose TTL lapsed before the cutoff.
	PurgeExpiredBefore(ctx context.Context, cutoff time.Time) error
}

type AnalyticsSink interface {
	// Track records a usage event. Callers treat failures as best-effort.
	Track(ctx context.Context, event *models.AnalyticsEvent) error
}
