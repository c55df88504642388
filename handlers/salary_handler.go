package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	middleware "github.com/sparkminds-jsc/modern-biz-insight-sub001/middlewares"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/services"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SalaryHandler struct {
	service services.SalaryService
}

func NewSalaryHandler(service services.SalaryService) *SalaryHandler {
	return &SalaryHandler{
		service: service,
	}
}

func salaryFilter(r *http.Request) map[string]interface{} {
	filter := map[string]interface{}{}
	q := r.URL.Query()

	if code := q.Get("employee_code"); code != "" {
		filter["employee_code"] = code
	}
	if month, err := strconv.Atoi(q.Get("month")); err == nil {
		filter["month"] = month
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		filter["year"] = year
	}

	return filter
}

func (h *SalaryHandler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var salary models.SalaryDetail
	if err := utils.DecodeAndValidate(w, r, &salary); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	salary.Metadata.CreatedBy = username
	salary.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateSalary(ctx, &salary)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Salary detail created successfully", created, http.StatusCreated)
}

func (h *SalaryHandler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	salaries, err := h.service.ListSalaries(ctx, salaryFilter(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Salary details retrieved successfully", salaries, http.StatusOK)
}

func (h *SalaryHandler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid salary detail ID format", http.StatusBadRequest)
		return
	}

	var salary models.SalaryDetail
	if err := utils.DecodeAndValidate(w, r, &salary); err != nil {
		return
	}

	salary.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateSalary(ctx, objectID, &salary)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Salary detail updated successfully", updated, http.StatusOK)
}

func (h *SalaryHandler) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid salary detail ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteSalary(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.HandleMessageResponse(w, "Salary detail deleted successfully", http.StatusOK)
}
