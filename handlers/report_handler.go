package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	middleware "github.com/sparkminds-jsc/modern-biz-insight-sub001/middlewares"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/services"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportHandler struct {
	service services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// billingFilter collects the supported list filters from query parameters.
// month and year parse-or-skip; a junk value filters nothing rather than
// failing the request.
func billingFilter(r *http.Request) map[string]interface{} {
	filter := map[string]interface{}{}
	q := r.URL.Query()

	if team := q.Get("team"); team != "" {
		filter["team"] = team
	}
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

// exchangeRate reads the optional rate query parameter used to express the
// USD and USDT storage sums in VND. Absent or junk values disable the
// conversion.
func exchangeRate(r *http.Request) float64 {
	rate, err := strconv.ParseFloat(r.URL.Query().Get("rate"), 64)
	if err != nil || rate <= 0 {
		return 0
	}
	return rate
}

func (h *ReportHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var detail models.BillingDetail
	if err := utils.DecodeAndValidate(w, r, &detail); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	detail.Metadata.CreatedBy = username
	detail.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateBilling(ctx, &detail)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Billing detail created successfully", created, http.StatusCreated)
}

func (h *ReportHandler) GetBillingByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid billing detail ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	detail, err := h.service.GetBillingByID(ctx, objectID)
	if err != nil {
		utils.HandleMessageResponse(w, "Billing detail not found", http.StatusNotFound)
		return
	}

	utils.HandleDataResponse(w, "Billing detail retrieved successfully", detail, http.StatusOK)
}

func (h *ReportHandler) ListBilling(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	details, err := h.service.ListBilling(ctx, billingFilter(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Billing details retrieved successfully", details, http.StatusOK)
}

func (h *ReportHandler) UpdateBilling(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid billing detail ID format", http.StatusBadRequest)
		return
	}

	var detail models.BillingDetail
	if err := utils.DecodeAndValidate(w, r, &detail); err != nil {
		return
	}

	detail.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateBilling(ctx, objectID, &detail)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRowLocked) {
			status = http.StatusBadRequest
		}
		utils.HandleMessageResponse(w, err.Error(), status)
		return
	}

	utils.HandleDataResponse(w, "Billing detail updated successfully", updated, http.StatusOK)
}

func (h *ReportHandler) DeleteBilling(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid billing detail ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteBilling(ctx, objectID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRowLocked) {
			status = http.StatusBadRequest
		}
		utils.HandleMessageResponse(w, err.Error(), status)
		return
	}

	utils.HandleMessageResponse(w, "Billing detail deleted successfully", http.StatusOK)
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var report models.TeamReport
	if err := utils.DecodeAndValidate(w, r, &report); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	report.Metadata.CreatedBy = username
	report.Metadata.UpdatedBy = username

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateReport(ctx, &report)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team report created successfully", created, http.StatusCreated)
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reports, err := h.service.ListReports(ctx, billingFilter(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team reports retrieved successfully", reports, http.StatusOK)
}

func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid team report ID format", http.StatusBadRequest)
		return
	}

	var report models.TeamReport
	if err := utils.DecodeAndValidate(w, r, &report); err != nil {
		return
	}

	report.Metadata.UpdatedBy = middleware.GetUsernameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateReport(ctx, objectID, &report)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team report updated successfully", updated, http.StatusOK)
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid team report ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.DeleteReport(ctx, objectID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleMessageResponse(w, "Team report deleted successfully", http.StatusOK)
}

func (h *ReportHandler) SummarizeProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.service.SummarizeProjects(ctx, billingFilter(r), exchangeRate(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Project bill summary retrieved successfully", summary, http.StatusOK)
}

func (h *ReportHandler) SummarizeTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.service.SummarizeTeams(ctx, billingFilter(r), exchangeRate(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Team summary retrieved successfully", summary, http.StatusOK)
}
