package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type competencyPG struct {
	db *gorm.DB
}

func NewCompetencyRepository(db *gorm.DB) repository.CompetencyRepository {
	return &competencyPG{db: db}
}

func (r *competencyPG) GetRatedCompetencies(ctx context.Context) ([]models.Competency, error) {
	var competencies []models.Competency
	err := r.db.WithContext(ctx).
		Where("industry_demand IS NOT NULL").
		Find(&competencies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get competencies: %v", err)
	}
	return competencies, nil
}
