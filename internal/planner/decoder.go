package planner

import (
	"encoding/json"
	"errors"
	"fmt"

	"mealplan-api/internal/models"
)

// ErrDecode indicates the generated text was not valid meal-plan JSON. It is
// surfaced distinctly from upstream and store failures so callers can tell
// "the model produced garbage" from "the database is unreachable".
var ErrDecode = errors.New("meal plan decode failed")

// DecodePlanContent parses raw generated text strictly as meal-plan content.
// The text must be valid JSON carrying name, description and meals; anything
// else fails with ErrDecode and the offending text in the error.
func DecodePlanContent(raw string) (models.MealPlanContent, error) {
	// Pointer fields distinguish a missing field from a zero value, since
	// the generator enforces no schema on its side.
	var probe struct {
		Name        *string        `json:"name"`
		Description *string        `json:"description"`
		Meals       *[]models.Meal `json:"meals"`
	}

	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return models.MealPlanContent{}, fmt.Errorf("%w: %v: %s", ErrDecode, err, raw)
	}

	if probe.Name == nil || probe.Description == nil || probe.Meals == nil {
		return models.MealPlanContent{}, fmt.Errorf("%w: missing required fields (name, description, meals): %s", ErrDecode, raw)
	}

	return models.MealPlanContent{
		Name:        *probe.Name,
		Description: *probe.Description,
		Meals:       *probe.Meals,
	}, nil
}
