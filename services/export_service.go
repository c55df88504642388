package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	repository "github.com/sparkminds-jsc/modern-biz-insight-sub001/repositories"

	"github.com/jung-kurt/gofpdf"
)

// utf8BOM prefixes CSV exports so spreadsheet tools pick up the encoding of
// the Vietnamese labels.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var billingExportHeader = []string{
	"Employee Code", "Employee Name", "Team", "Month", "Year",
	"Converted VND", "Package VND", "Total Payment", "Ratio", "Notes",
}

type ExportService interface {
	BillingCSV(ctx context.Context, filter map[string]interface{}) ([]byte, error)
	BillingPDF(ctx context.Context, filter map[string]interface{}) ([]byte, error)
}

type exportService struct {
	billing repository.BillingRepository
}

func NewExportService(billing repository.BillingRepository) ExportService {
	return &exportService{
		billing: billing,
	}
}

// vndField renders a VND amount as a whole number, the only rounding step
// between computation and export.
func vndField(v float64) string {
	return strconv.FormatFloat(finance.RoundVND(v), 'f', 0, 64)
}

func billingRecord(row models.BillingDetail) []string {
	return []string{
		row.EmployeeCode,
		row.EmployeeName,
		row.Team,
		strconv.Itoa(row.Month),
		strconv.Itoa(row.Year),
		vndField(row.ConvertedVND),
		vndField(row.PackageVND),
		vndField(row.TotalPayment),
		finance.PercentLabel(row.PercentageRatio),
		row.Notes,
	}
}

func (s *exportService) BillingCSV(ctx context.Context, filter map[string]interface{}) ([]byte, error) {
	rows, err := s.billing.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(billingExportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(billingRecord(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *exportService) BillingPDF(ctx context.Context, filter map[string]interface{}) ([]byte, error) {
	rows, err := s.billing.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Team Report Details")
	pdf.Ln(12)

	widths := []float64{28, 45, 22, 14, 16, 34, 30, 34, 16, 38}

	pdf.SetFont("Arial", "B", 8)
	for i, col := range billingExportHeader {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		record := billingRecord(row)
		for i, field := range record {
			align := "L"
			if i >= 3 && i <= 8 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(field), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %v", err)
	}

	return buf.Bytes(), nil
}
