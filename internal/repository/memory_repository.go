package repository

import (
	"context"
	"sync"

	"mealplan-api/internal/models"
)

// InMemoryPlanRepository implements PlanRepository with in-memory storage.
// It mirrors the Firestore adapter's semantics (upsert create, field-level
// merge, delete-with-snapshot) and backs the test suite.
type InMemoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]models.MealPlan
}

// NewInMemoryPlanRepository creates an empty in-memory plan repository
func NewInMemoryPlanRepository() *InMemoryPlanRepository {
	return &InMemoryPlanRepository{
		plans: make(map[string]models.MealPlan),
	}
}

// Create upserts the plan under its identifier
func (r *InMemoryPlanRepository) Create(ctx context.Context, plan models.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[plan.ID] = plan
	return nil
}

// Get returns the stored plan or ErrPlanNotFound
func (r *InMemoryPlanRepository) Get(ctx context.Context, id string) (*models.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.plans[id]
	if !exists {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}

// Update merges only the supplied fields into the stored plan content
func (r *InMemoryPlanRepository) Update(ctx context.Context, id string, update models.MealPlanUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, exists := r.plans[id]
	if !exists {
		return ErrPlanNotFound
	}

	if update.Name != nil {
		plan.Result.Name = *update.Name
	}
	if update.Description != nil {
		plan.Result.Description = *update.Description
	}
	if update.Meals != nil {
		plan.Result.Meals = *update.Meals
	}

	r.plans[id] = plan
	return nil
}

// Delete removes the plan and returns the pre-deletion snapshot
func (r *InMemoryPlanRepository) Delete(ctx context.Context, id string) (*models.MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, exists := r.plans[id]
	if !exists {
		return nil, ErrPlanNotFound
	}

	delete(r.plans, id)
	return &plan, nil
}
