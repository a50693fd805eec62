package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mealplan-api/internal/config"
	"mealplan-api/internal/models"
)

// FirestorePlanRepository implements PlanRepository against a Firestore
// collection. Calls carry no explicit timeout beyond the request context;
// the client's transport defaults apply.
type FirestorePlanRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestorePlanRepository connects to the configured Firestore database.
// Application Default Credentials are used unless a credentials file is
// configured explicitly.
func NewFirestorePlanRepository(ctx context.Context, cfg config.FirestoreConfig) (*FirestorePlanRepository, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, cfg.DatabaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestorePlanRepository{
		client:     client,
		collection: cfg.Collection,
	}, nil
}

// Close releases the underlying Firestore client.
func (r *FirestorePlanRepository) Close() error {
	return r.client.Close()
}

func (r *FirestorePlanRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(r.collection).Doc(id)
}

// Create upserts the plan document under its identifier.
func (r *FirestorePlanRepository) Create(ctx context.Context, plan models.MealPlan) error {
	if _, err := r.doc(plan.ID).Set(ctx, plan); err != nil {
		return fmt.Errorf("failed to create meal plan %s: %w", plan.ID, err)
	}
	return nil
}

// Get performs a point lookup by identifier.
func (r *FirestorePlanRepository) Get(ctx context.Context, id string) (*models.MealPlan, error) {
	snap, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to read meal plan %s: %w", id, err)
	}

	var plan models.MealPlan
	if err := snap.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan %s: %w", id, err)
	}

	return &plan, nil
}

// Update merges only the supplied fields into the stored plan content.
// Fields left nil in the update are untouched. Firestore rejects updates
// to missing documents, which maps to ErrPlanNotFound.
func (r *FirestorePlanRepository) Update(ctx context.Context, id string, update models.MealPlanUpdate) error {
	var updates []firestore.Update
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "result.name", Value: *update.Name})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: "result.description", Value: *update.Description})
	}
	if update.Meals != nil {
		updates = append(updates, firestore.Update{Path: "result.meals", Value: *update.Meals})
	}

	if len(updates) == 0 {
		return nil
	}

	if _, err := r.doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrPlanNotFound
		}
		return fmt.Errorf("failed to update meal plan %s: %w", id, err)
	}

	return nil
}

// Delete reads the current document, deletes it, and returns the
// pre-deletion snapshot.
func (r *FirestorePlanRepository) Delete(ctx context.Context, id string) (*models.MealPlan, error) {
	plan, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.doc(id).Delete(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete meal plan %s: %w", id, err)
	}

	return plan, nil
}
