package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/services"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/utils"
)

type ExportHandler struct {
	service services.ExportService
}

func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("team-report-%s.%s", time.Now().Format("2006-01"), ext)
}

func (h *ExportHandler) BillingCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	data, err := h.service.BillingCSV(ctx, billingFilter(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

func (h *ExportHandler) BillingPDF(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	data, err := h.service.BillingPDF(ctx, billingFilter(r))
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("pdf")))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
