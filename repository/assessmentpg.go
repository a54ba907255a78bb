package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type assessmentPG struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) repository.AssessmentRepository {
	return &assessmentPG{db: db}
}

// GetCertifiedAssessment returns the most recent CERTIFIED assessment with
// its competency profile, or nil when the student has none.
func (r *assessmentPG) GetCertifiedAssessment(ctx context.Context, userID string) (*models.SoftSkillAssessment, error) {
	var assessment models.SoftSkillAssessment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "CERTIFIED").
		Order("created_at DESC").
		Preload("Profile").
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %v", err)
	}
	return &assessment, nil
}
