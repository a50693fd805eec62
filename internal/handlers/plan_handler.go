package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mealplan-api/internal/identifier"
	"mealplan-api/internal/llm"
	"mealplan-api/internal/models"
	"mealplan-api/internal/planner"
	"mealplan-api/internal/repository"
	"mealplan-api/internal/service"
)

// PlanHandler handles meal-plan HTTP requests
type PlanHandler struct {
	planService *service.PlanService
	log         *slog.Logger
}

// NewPlanHandler creates a new meal-plan handler
func NewPlanHandler(planService *service.PlanService, log *slog.Logger) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		log:         log,
	}
}

// Generate handles POST /meal-plans/generate
// Synthesizes a plan from the supplied meal tags, persists it under a fresh
// identifier, and returns the stored document.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode generate request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	plan, err := h.planService.Generate(r.Context(), req.MealTags)
	if err != nil {
		// Decode vs upstream vs store is distinguished in logs only; all
		// map to a generic server error on the wire.
		switch {
		case errors.Is(err, planner.ErrDecode):
			h.log.Error("generated text is not valid meal plan JSON", "error", err)
		case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrMalformedReply):
			h.log.Error("generation api failure", "error", err)
		default:
			h.log.Error("failed to store generated meal plan", "error", err)
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
	h.log.Info("meal plan generated", "meal_plan_id", plan.ID, "meals_count", len(plan.Result.Meals))
}

// Read handles GET /meal-plans/{mealPlanID}
// Returns the stored document, 400 on a malformed identifier, or 404.
func (h *PlanHandler) Read(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	plan, err := h.planService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			WriteError(w, http.StatusNotFound, "Meal plan not found", h.log)
			return
		}

		h.log.Error("failed to read meal plan", "meal_plan_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
}

// Update handles PUT /meal-plans/{mealPlanID}
// Merges only the fields present in the body into an existing plan; a
// missing plan is a 404, not a silent success.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	var update models.MealPlanUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.log.Warn("failed to decode update request", "meal_plan_id", id, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	conf, err := h.planService.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			WriteError(w, http.StatusNotFound, "Meal plan not found", h.log)
			return
		}

		h.log.Error("failed to update meal plan", "meal_plan_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, conf, h.log)
	h.log.Info("meal plan updated", "meal_plan_id", id)
}

// Delete handles DELETE /meal-plans/{mealPlanID}
// Removes the plan and confirms with the deleted plan's name.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.planID(w, r)
	if !ok {
		return
	}

	conf, err := h.planService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			WriteError(w, http.StatusNotFound, "Meal plan not found", h.log)
			return
		}

		h.log.Error("failed to delete meal plan", "meal_plan_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, conf, h.log)
	h.log.Info("meal plan deleted", "meal_plan_id", id)
}

// planID extracts and validates the identifier path parameter. The format
// (exactly 7 alphanumeric characters) is part of the public contract, so a
// malformed identifier is rejected before any store call.
func (h *PlanHandler) planID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "mealPlanID")
	if !identifier.Valid(id) {
		h.log.Warn("invalid meal plan identifier", "meal_plan_id", id)
		WriteError(w, http.StatusBadRequest, "Invalid meal plan ID supplied", h.log)
		return "", false
	}
	return id, true
}
