package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"mealplan-api/internal/models"
)

func TestDecodePlanContent(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := models.MealPlanContent{
			Name:        "Weekday Vegan Plan",
			Description: "Quick plant-based meals",
			Meals: []models.Meal{
				{
					Recipe: models.Recipe{
						Name:        "Chickpea Curry",
						Description: "A 20-minute curry",
						Steps:       []string{"Chop onions", "Simmer chickpeas"},
						Tags:        []string{"vegan", "quick"},
						NutritionalInfo: &models.NutritionalInformation{
							Calories: 520.5,
							Protein:  18,
							Fiber:    12.3,
						},
					},
				},
			},
		}

		raw, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("failed to marshal fixture: %v", err)
		}

		got, err := DecodePlanContent(string(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("decoded content differs:\ngot:  %+v\nwant: %+v", got, want)
		}
	})

	t.Run("empty meals list is valid", func(t *testing.T) {
		got, err := DecodePlanContent(`{"name":"Test Plan","description":"d","meals":[]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Test Plan" || got.Description != "d" || len(got.Meals) != 0 {
			t.Errorf("unexpected content: %+v", got)
		}
	})

	t.Run("failures", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"not json", "not json"},
			{"empty string", ""},
			{"missing description and meals", `{"name": "x"}`},
			{"missing meals", `{"name": "x", "description": "y"}`},
			{"missing name", `{"description": "y", "meals": []}`},
			{"json array", `[1, 2, 3]`},
			{"wrong meals type", `{"name":"x","description":"y","meals":"oops"}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := DecodePlanContent(tt.raw)
				if !errors.Is(err, ErrDecode) {
					t.Errorf("expected ErrDecode, got %v", err)
				}
			})
		}
	})
}
