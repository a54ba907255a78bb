package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"skillpathservice/domain/models"
	"skillpathservice/domain/repository"
)

const (
	// jobSampleLimit caps the market snapshot used for demand aggregation
	// and career path matching.
	jobSampleLimit = 200

	// cacheTTL is how long a generated recommendation stays fresh.
	cacheTTL = 24 * time.Hour
)

// ErrCooldownActive is returned when a forced refresh is requested inside the
// tier's cooldown window.
var ErrCooldownActive = errors.New("refresh cooldown active")

// CooldownActiveError carries the time remaining until the next forced
// refresh is allowed. It matches errors.Is(err, ErrCooldownActive).
type CooldownActiveError struct {
	RetryAfter time.Duration
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("refresh cooldown active, retry in %s", e.RetryAfter)
}

func (e *CooldownActiveError) Unwrap() error { return ErrCooldownActive }

type SkillPathUsecase struct {
	projects        repository.ProjectRepository
	jobs            repository.JobRepository
	competencies    repository.CompetencyRepository
	assessments     repository.AssessmentRepository
	recommendations repository.RecommendationRepository
	analytics       repository.AnalyticsSink

	// now is injectable so cache-freshness behavior is testable.
	now func() time.Time
}

func NewSkillPathUsecase(
	projects repository.ProjectRepository,
	jobs repository.JobRepository,
	competencies repository.CompetencyRepository,
	assessments repository.AssessmentRepository,
	recommendations repository.RecommendationRepository,
	analytics repository.AnalyticsSink,
) *SkillPathUsecase {
	return &SkillPathUsecase{
		projects:        projects,
		jobs:            jobs,
		competencies:    competencies,
		assessments:     assessments,
		recommendations: recommendations,
		analytics:       analytics,
		now:             time.Now,
	}
}

// GetSkillPath returns the student's recommendations, generating them when
// the cached record is absent or expired. Tier gating is applied to the
// stored ungated result on every read, so a tier change takes effect on the
// next request without invalidating the cache.
func (uc *SkillPathUsecase) GetSkillPath(ctx context.Context, userID string, tier string) (*models.SkillPathResponse, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	limits := TierLimitsFor(tier)
	uc.trackEvent(userID, tier, "skill_path_viewed")

	record, err := uc.recommendations.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record != nil && uc.now().Before(record.ExpiresAt) {
		return uc.gate(record, limits)
	}
	return uc.regenerate(ctx, userID, limits)
}

// RefreshSkillPath bypasses the TTL and regenerates immediately, throttled to
// one refresh per tier cooldown window. Requests inside the window are
// rejected, not queued.
func (uc *SkillPathUsecase) RefreshSkillPath(ctx context.Context, userID string, tier string) (*models.SkillPathResponse, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	limits := TierLimitsFor(tier)
	uc.trackEvent(userID, tier, "skill_path_refreshed")

	record, err := uc.recommendations.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	refreshedAt := uc.now()
	if record != nil && !record.RefreshedAt.IsZero() {
		cooldown := time.Duration(limits.RefreshCooldown) * time.Minute
		if elapsed := refreshedAt.Sub(record.RefreshedAt); elapsed < cooldown {
			return nil, &CooldownActiveError{RetryAfter: cooldown - elapsed}
		}
	}

	response, err := uc.regenerate(ctx, userID, limits)
	if err != nil {
		return nil, err
	}
	if !response.IsEmpty {
		if err := uc.recommendations.TouchRefreshedAt(ctx, userID, refreshedAt); err != nil {
			return nil, err
		}
	}
	return response, nil
}

type engineInputs struct {
	projects     []models.Project
	jobs         []models.JobPosting
	competencies []models.Competency
	assessment   *models.SoftSkillAssessment
}

// loadInputs performs the single batched concurrent read of the four input
// collaborators. Together with the cache upsert these are the only
// suspension points; everything between them is pure computation.
func (uc *SkillPathUsecase) loadInputs(ctx context.Context, userID string) (*engineInputs, error) {
	var inputs engineInputs
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inputs.projects, err = uc.projects.GetProjectsByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.jobs, err = uc.jobs.SampleActiveJobs(gctx, jobSampleLimit)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.competencies, err = uc.competencies.GetRatedCompetencies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		inputs.assessment, err = uc.assessments.GetCertifiedAssessment(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &inputs, nil
}

func (uc *SkillPathUsecase) regenerate(ctx context.Context, userID string, limits models.TierLimits) (*models.SkillPathResponse, error) {
	inputs, err := uc.loadInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	// No projects means no analysis is possible. No record is created or
	// touched for this student.
	if len(inputs.projects) == 0 {
		return &models.SkillPathResponse{
			Data:       nil,
			TierLimits: limits,
			IsLimited:  limits.Tier == TierFree,
			IsEmpty:    true,
		}, nil
	}

	var profile *models.CompetencyProfile
	if inputs.assessment != nil {
		profile = inputs.assessment.Profile
	}
	result := GenerateSkillPath(inputs.projects, inputs.jobs, inputs.competencies, profile)

	generatedAt := uc.now()
	record, err := models.NewRecommendationRecord(userID, result, generatedAt, generatedAt.Add(cacheTTL))
	if err != nil {
		return nil, err
	}
	if err := uc.recommendations.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return uc.gate(record, limits)
}

// GenerateSkillPath runs the pure derivation pipeline over one input
// snapshot. It performs no I/O, so two concurrent regenerations for the same
// user produce equivalent records and the atomic upsert makes duplicate work
// harmless.
func GenerateSkillPath(
	projects []models.Project,
	jobs []models.JobPosting,
	competencies []models.Competency,
	profile *models.CompetencyProfile,
) *models.SkillPathResult {
	skills := BuildSkillScores(projects)
	marketDemand := AggregateMarketDemand(jobs)
	competencyDemand := AggregateCompetencyDemand(competencies)
	gaps := IdentifySkillGaps(skills, marketDemand, competencyDemand, len(jobs))
	ideas := GenerateProjectIdeas(gaps, PrimaryDiscipline(projects))
	paths := BuildCareerPaths(skills, jobs)
	score := CalculateHireabilityScore(skills, gaps, len(projects), profile)

	return &models.SkillPathResult{
		CurrentSkills: skills,
		SkillGaps:     gaps,
		Recommendations: models.Recommendations{
			ProjectIdeas: ideas,
			Challenges:   []models.ProjectIdea{},
			Resources:    []string{},
		},
		CareerPaths:      paths,
		HireabilityScore: score,
	}
}

// gate narrows the stored ungated record to what the tier may see. The
// roadmap is rebuilt from the full gap list so premium users always see the
// complete sequence, and the totals keep reflecting ungated counts for
// upgrade messaging.
func (uc *SkillPathUsecase) gate(record *models.RecommendationRecord, limits models.TierLimits) (*models.SkillPathResponse, error) {
	result, err := record.Decode()
	if err != nil {
		return nil, err
	}

	gatedGaps := result.SkillGaps
	if len(gatedGaps) > limits.MaxGaps {
		gatedGaps = gatedGaps[:limits.MaxGaps]
	}
	gatedIdeas := result.Recommendations.ProjectIdeas
	if len(gatedIdeas) > limits.MaxProjectIdeas {
		gatedIdeas = gatedIdeas[:limits.MaxProjectIdeas]
	}
	gatedPaths := result.CareerPaths
	if len(gatedPaths) > limits.MaxCareerPaths {
		gatedPaths = gatedPaths[:limits.MaxCareerPaths]
	}

	roadmap := []models.RoadmapMilestone{}
	if limits.HasRoadmap {
		roadmap = BuildRoadmap(result.SkillGaps)
	}
	challenges := []models.ProjectIdea{}
	if limits.HasChallenges {
		challenges = result.Recommendations.Challenges
	}

	return &models.SkillPathResponse{
		Data: &models.SkillPathData{
			HireabilityScore: result.HireabilityScore,
			CurrentSkills:    result.CurrentSkills,
			SkillGaps:        gatedGaps,
			ProjectIdeas:     gatedIdeas,
			CareerPaths:      gatedPaths,
			Roadmap:          roadmap,
			Challenges:       challenges,
			GeneratedAt:      record.GeneratedAt,
			ExpiresAt:        record.ExpiresAt,
		},
		TierLimits:        limits,
		IsLimited:         limits.Tier == TierFree,
		TotalGaps:         len(result.SkillGaps),
		TotalProjectIdeas: len(result.Recommendations.ProjectIdeas),
		TotalCareerPaths:  len(result.CareerPaths),
	}, nil
}

// trackEvent emits a best-effort analytics event on a detached goroutine.
// Failures are logged and discarded; they never affect the response path.
func (uc *SkillPathUsecase) trackEvent(userID, tier, eventName string) {
	event := &models.AnalyticsEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		EventType: "PAGE_VIEW",
		EventName: eventName,
		Properties: datatypes.JSONMap{
			"tier": tier,
		},
		CreatedAt: uc.now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.analytics.Track(ctx, event); err != nil {
			log.Printf("Analytics event %s dropped: %v", eventName, err)
		}
	}()
}
