package handlers

import (
	"context"
	"net/http"
	"time"

	middleware "github.com/sparkminds-jsc/modern-biz-insight-sub001/middlewares"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/services"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StrategyHandler struct {
	service services.StrategyService
}

func NewStrategyHandler(service services.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		service: service,
	}
}

func (h *StrategyHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	groups, err := h.service.Availability(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Availability retrieved successfully", groups, http.StatusOK)
}

func (h *StrategyHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	rows, err := h.service.Timeline(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Timeline retrieved successfully", rows, http.StatusOK)
}

func (h *StrategyHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	forecasts, err := h.service.Forecast(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Forecast retrieved successfully", forecasts, http.StatusOK)
}

func (h *StrategyHandler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var estimate models.ProjectEstimate
	if err := utils.DecodeAndValidate(w, r, &estimate); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	estimate.Metadata.CreatedBy = username
	estimate.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateEstimate(ctx, &estimate)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project estimate created successfully", created, http.StatusCreated)
}

func (h *StrategyHandler) ListEstimates(w http.ResponseWriter, r *http.Request) {
	filter := map[string]interface{}{}
	if r.URL.Query().Get("estimated") == "true" {
		filter["is_estimated"] = true
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	estimates, err := h.service.ListEstimates(ctx, filter)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project estimates retrieved successfully", estimates, http.StatusOK)
}

func (h *StrategyHandler) UpdateEstimate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project estimate ID format", http.StatusBadRequest)
		return
	}

	var estimate models.ProjectEstimate
	if err := utils.DecodeAndValidate(w, r, &estimate); err != nil {
		return
	}

	estimate.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateEstimate(ctx, objectID, &estimate)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project estimate updated successfully", updated, http.StatusOK)
}

func (h *StrategyHandler) DeleteEstimate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project estimate ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteEstimate(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Project estimate deleted successfully", http.StatusOK)
}

func (h *StrategyHandler) ListCosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	costs, err := h.service.ListCosts(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team average costs retrieved successfully", costs, http.StatusOK)
}

func (h *StrategyHandler) UpsertCost(w http.ResponseWriter, r *http.Request) {
	team := r.PathValue("team")
	if team == "" {
		utils.HandleMessageResponse(w, "Team name required", http.StatusBadRequest)
		return
	}

	var cost models.TeamAverageCost
	if err := utils.DecodeAndValidate(w, r, &cost); err != nil {
		return
	}

	cost.Team = team
	cost.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.UpsertCost(ctx, &cost); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team average cost saved successfully", cost, http.StatusOK)
}

func (h *StrategyHandler) CreateAllocate(w http.ResponseWriter, r *http.Request) {
	var allocate models.Allocate
	if err := utils.DecodeAndValidate(w, r, &allocate); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	allocate.Metadata.CreatedBy = username
	allocate.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateAllocate(ctx, &allocate)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Allocate created successfully", created, http.StatusCreated)
}

func (h *StrategyHandler) ListAllocates(w http.ResponseWriter, r *http.Request) {
	filter := map[string]interface{}{}
	if code := r.URL.Query().Get("employee_code"); code != "" {
		filter["employee_code"] = code
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	allocates, err := h.service.ListAllocates(ctx, filter)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Allocates retrieved successfully", allocates, http.StatusOK)
}

func (h *StrategyHandler) UpdateAllocate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid allocate ID format", http.StatusBadRequest)
		return
	}

	var allocate models.Allocate
	if err := utils.DecodeAndValidate(w, r, &allocate); err != nil {
		return
	}

	allocate.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateAllocate(ctx, objectID, &allocate)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Allocate updated successfully", updated, http.StatusOK)
}

func (h *StrategyHandler) DeleteAllocate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid allocate ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteAllocate(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Allocate deleted successfully", http.StatusOK)
}
