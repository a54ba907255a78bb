package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type jobPG struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobPG{db: db}
}

// SampleActiveJobs returns up to limit ACTIVE public postings, most recent
// first. The sample feeds market demand aggregation and career path matching.
func (r *jobPG) SampleActiveJobs(ctx context.Context, limit int) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_public = ?", "ACTIVE", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample jobs: %v", err)
	}
	return jobs, nil
}
