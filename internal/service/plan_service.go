package service

import (
	"context"

	"mealplan-api/internal/identifier"
	"mealplan-api/internal/models"
	"mealplan-api/internal/planner"
	"mealplan-api/internal/repository"
)

// PlanService composes identifier minting, plan synthesis, decoding and
// persistence. All failures propagate to the caller; nothing is retried.
type PlanService struct {
	synth *planner.Synthesizer
	repo  repository.PlanRepository
}

// NewPlanService creates a new plan service
func NewPlanService(synth *planner.Synthesizer, repo repository.PlanRepository) *PlanService {
	return &PlanService{
		synth: synth,
		repo:  repo,
	}
}

// Generate mints an identifier, synthesizes plan content from the tags,
// decodes it, and persists the result in one store write. A decode failure
// aborts the operation before anything is written.
func (s *PlanService) Generate(ctx context.Context, tags []string) (*models.MealPlan, error) {
	raw, err := s.synth.Synthesize(ctx, tags)
	if err != nil {
		return nil, err
	}

	content, err := planner.DecodePlanContent(raw)
	if err != nil {
		return nil, err
	}

	plan := models.MealPlan{
		ID:     identifier.New(),
		Result: content,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// Get returns the stored plan or repository.ErrPlanNotFound.
func (s *PlanService) Get(ctx context.Context, id string) (*models.MealPlan, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the supplied fields into an existing plan. The plan must
// already exist; updating a missing identifier returns ErrPlanNotFound
// instead of silently reporting success.
func (s *PlanService) Update(ctx context.Context, id string, update models.MealPlanUpdate) (*models.Confirmation, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	name := existing.Result.Name
	if update.Name != nil {
		name = *update.Name
	}

	return &models.Confirmation{
		MealPlanID:   id,
		MealPlanName: name,
		Message:      "Meal plan updated successfully",
	}, nil
}

// Delete removes the plan and reports the deleted plan's name from the
// pre-deletion snapshot.
func (s *PlanService) Delete(ctx context.Context, id string) (*models.Confirmation, error) {
	snapshot, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.Confirmation{
		MealPlanID:   id,
		MealPlanName: snapshot.Result.Name,
		Message:      "Meal plan deleted successfully",
	}, nil
}
