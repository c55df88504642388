package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingCSVRounding(t *testing.T) {
	billing := newStubBillingRepo()
	detail := &models.BillingDetail{
		EmployeeCode:    "E1",
		EmployeeName:    "Nguyễn Văn A",
		Team:            "BE",
		Month:           3,
		Year:            2024,
		ConvertedVND:    12000000.4,
		PackageVND:      500000.6,
		TotalPayment:    9500000.5,
		PercentageRatio: 57.4,
	}
	require.NoError(t, billing.Create(context.Background(), detail))

	svc := NewExportService(billing)
	data, err := svc.BillingCSV(context.Background(), nil)
	require.NoError(t, err)

	// UTF-8 BOM prefix for spreadsheet tools
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Nguyễn Văn A", row[1])
	assert.Equal(t, "12000000", row[5])
	assert.Equal(t, "500001", row[6])
	assert.Equal(t, "9500001", row[7])
	assert.Equal(t, "57%", row[8])

	// Re-parsing the exported integer recovers the rounded value exactly.
	parsed, err := strconv.ParseFloat(row[5], 64)
	require.NoError(t, err)
	assert.Equal(t, 12000000.0, parsed)
}

func TestBillingPDFOutput(t *testing.T) {
	billing := newStubBillingRepo()
	require.NoError(t, billing.Create(context.Background(), &models.BillingDetail{
		EmployeeCode: "E1",
		EmployeeName: "Nguyễn Văn A",
		Team:         "BE",
		Month:        3,
		Year:         2024,
		ConvertedVND: 12000000,
	}))

	svc := NewExportService(billing)
	data, err := svc.BillingPDF(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
