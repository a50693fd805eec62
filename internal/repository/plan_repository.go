package repository

import (
	"context"
	"errors"

	"mealplan-api/internal/models"
)

// ErrPlanNotFound is returned when no document exists under the given
// identifier. Absence is a normal outcome, distinct from store failures.
var ErrPlanNotFound = errors.New("meal plan not found")

// PlanRepository defines the storage contract for meal plans, keyed by the
// generated 7-character identifier.
type PlanRepository interface {
	// Create upserts the plan under its identifier. No precondition on
	// existence; a colliding identifier overwrites (last writer wins).
	Create(ctx context.Context, plan models.MealPlan) error

	// Get returns the stored plan or ErrPlanNotFound.
	Get(ctx context.Context, id string) (*models.MealPlan, error)

	// Update merges only the supplied fields into the stored plan content.
	// Returns ErrPlanNotFound if no document exists under id.
	Update(ctx context.Context, id string, update models.MealPlanUpdate) error

	// Delete removes the plan and returns the pre-deletion snapshot, or
	// ErrPlanNotFound if it never existed.
	Delete(ctx context.Context, id string) (*models.MealPlan, error)
}
