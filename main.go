package main

import (
	"context"
	"log"
	"time"

	"skillpathservice/config"
	"skillpathservice/delivery/handler"
	"skillpathservice/delivery/routes"
	"skillpathservice/middleware"
	"skillpathservice/migrations"
	"skillpathservice/repository"
	"skillpathservice/usecase"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	db := config.ConnectDB()

	// Run auto migrations
	log.Println("Running auto migrations...")
	if err := migrations.Run(db); err != nil {
		panic("Migration failed: " + err.Error())
	}

	// Dependency injection
	projectRepo := repository.NewProjectRepository(db)
	jobRepo := repository.NewJobRepository(db)
	competencyRepo := repository.NewCompetencyRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	analyticsSink := repository.NewAnalyticsSink(db)

	skillPathUC := usecase.NewSkillPathUsecase(
		projectRepo,
		jobRepo,
		competencyRepo,
		assessmentRepo,
		recommendationRepo,
		analyticsSink,
	)
	skillPathHandler := handler.NewSkillPathHandler(skillPathUC)
	authMiddleware := middleware.AuthMiddleware("student", config.JWTSecret())

	// Nightly purge of recommendation rows whose TTL lapsed long ago. Stale
	// rows regenerate on access anyway; this just keeps the table small.
	maintenance := cron.New()
	if _, err := maintenance.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		cutoff := time.Now().Add(-7 * 24 * time.Hour)
		if err := recommendationRepo.PurgeExpiredBefore(ctx, cutoff); err != nil {
			log.Printf("Recommendation purge failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule maintenance job: %v", err)
	}
	maintenance.Start()

	// Setup Gin router
	r := gin.Default()
	routes.SkillPathRoutes(r, skillPathHandler, authMiddleware)

	if err := r.Run(config.Port()); err != nil {
		panic("Failed to start server: " + err.Error())
	}
}
