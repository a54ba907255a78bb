package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type recommendationPG struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) repository.RecommendationRepository {
	return &recommendationPG{db: db}
}

func (r *recommendationPG) GetByUser(ctx context.Context, userID string) (*models.RecommendationRecord, error) {
	var record models.RecommendationRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation record: %v", err)
	}
	return &record, nil
}

// Upsert writes the full record in one statement. ON CONFLICT keeps the write
// atomic under concurrent regeneration: the row always holds one complete
// result, never a mix of two. refreshed_at is owned by TouchRefreshedAt and
// survives regeneration.
func (r *recommendationPG) Upsert(ctx context.Context, record *models.RecommendationRecord) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_skills",
			"skill_gaps",
			"recommendations",
			"career_paths",
			"hireability_score",
			"generated_at",
			"expires_at",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recommendation record: %v", err)
	}
	return nil
}

func (r *recommendationPG) TouchRefreshedAt(ctx context.Context, userID string, refreshedAt time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.RecommendationRecord{}).
		Where("user_id = ?", userID).
		Update("refreshed_at", refreshedAt).Error
	if err != nil {
		return fmt.Errorf("failed to stamp refreshed_at: %v", err)
	}
	return nil
}

// PurgeExpiredBefore deletes records whose TTL lapsed before the cutoff.
// Run from the maintenance cron; missing a sweep only leaves stale rows that
// the next read would regenerate anyway.
func (r *recommendationPG) PurgeExpiredBefore(ctx context.Context, cutoff time.Time) error {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.RecommendationRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to purge expired records: %v", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired recommendation records", result.RowsAffected)
	}
	return nil
}
