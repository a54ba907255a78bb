package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

type projectPG struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectPG{db: db}
}

func (r *projectPG) GetProjectsByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %v", err)
	}
	return projects, nil
}
