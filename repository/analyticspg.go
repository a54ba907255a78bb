package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type analyticsPG struct {
	db *gorm.DB
}

func NewAnalyticsSink(db *gorm.DB) repository.AnalyticsSink {
	return &analyticsPG{db: db}
}

func (r *analyticsPG) Track(ctx context.Context, event *models.AnalyticsEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to track event: %v", err)
	}
	return nil
}
