package models

// NutritionalInformation holds the macro breakdown for a recipe.
type NutritionalInformation struct {
	Calories float64 `json:"calories" firestore:"calories"`
	Protein  float64 `json:"protein" firestore:"protein"`
	Fiber    float64 `json:"fiber" firestore:"fiber"`
}

// Recipe represents a single recipe within a meal
type Recipe struct {
	Name            string                  `json:"name" firestore:"name"`
	Description     string                  `json:"description" firestore:"description"`
	Steps           []string                `json:"steps" firestore:"steps"`
	Tags            []string                `json:"tags" firestore:"tags"`
	NutritionalInfo *NutritionalInformation `json:"nutritional_info,omitempty" firestore:"nutritional_info,omitempty"`
}

// Meal wraps exactly one recipe
type Meal struct {
	Recipe Recipe `json:"recipe" firestore:"recipe"`
}

// MealPlanContent is the plan body produced by the generation model:
// a name, a description and an ordered list of meals.
type MealPlanContent struct {
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	Meals       []Meal `json:"meals" firestore:"meals"`
}

// MealPlan is the stored document: generated identifier plus the plan
// content. The identifier is exactly 7 alphanumeric characters and doubles
// as the document store key.
type MealPlan struct {
	ID     string          `json:"id" firestore:"id"`
	Result MealPlanContent `json:"result" firestore:"result"`
}

// GenerateRequest is the incoming body for the generate endpoint
type GenerateRequest struct {
	MealTags []string `json:"meal_tags"`
}

// MealPlanUpdate carries a partial update. Pointer fields distinguish
// "absent" from "set to zero value": only non-nil fields are merged into
// the stored document.
type MealPlanUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Meals       *[]Meal `json:"meals,omitempty"`
}

// Confirmation is returned by the update and delete endpoints
type Confirmation struct {
	MealPlanID   string `json:"meal_plan_id"`
	MealPlanName string `json:"meal_plan_name"`
	Message      string `json:"message"`
}
