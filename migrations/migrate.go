package migrations

import (
	"gorm.io/gorm"

	"skillpathservice/domain/models"
)

// Run applies the schema for every table this service owns or reads.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.JobPosting{},
		&models.Competency{},
		&models.SoftSkillAssessment{},
		&models.CompetencyProfile{},
		&models.AnalyticsEvent{},
		&models.RecommendationRecord{},
	)
}
