package finance

import (
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billingRow(code, projectID, team string, month, year int, hours, rate, fx, pct, pkg float64) models.BillingDetail {
	return models.BillingDetail{
		EmployeeCode:  code,
		ProjectID:     projectID,
		Team:          team,
		Month:         month,
		Year:          year,
		BillableHours: hours,
		Rate:          models.FlexFromFloat(rate),
		FxRate:        fx,
		Percentage:    models.FlexFromFloat(pct),
		PackageVND:    pkg,
	}
}

func TestSummarizeProjectBillsGrouping(t *testing.T) {
	rows := []models.BillingDetail{
		billingRow("E1", "P1", "BE", 3, 2024, 10, 50, 24000, 100, 0),
		billingRow("E2", "P1", "BE", 3, 2024, 20, 40, 24000, 50, 1000000),
		billingRow("E3", "P2", "FE", 3, 2024, 8, 30, 25000, 100, 0),
	}
	names := map[string]string{"P1": "Falcon", "P2": "Osprey"}

	out := SummarizeProjectBills(rows, names)
	require.Len(t, out, 2)

	falcon, ok := out["Falcon-2024-3-BE"]
	require.True(t, ok)
	assert.Equal(t, "Falcon", falcon.ProjectName)
	// 12,000,000 + (9,600,000 + 1,000,000)
	assert.Equal(t, 22600000.0, falcon.BillVND)

	osprey, ok := out["Osprey-2024-3-FE"]
	require.True(t, ok)
	assert.Equal(t, 6000000.0, osprey.BillVND)
}

func TestSummarizeProjectBillsUnknownProjectBucket(t *testing.T) {
	rows := []models.BillingDetail{
		billingRow("E1", "ghost", "BE", 1, 2024, 10, 50, 24000, 100, 0),
		billingRow("E2", "", "BE", 1, 2024, 5, 50, 24000, 100, 0),
	}

	out := SummarizeProjectBills(rows, map[string]string{"P1": "Falcon"})
	require.Len(t, out, 1)

	// Unresolved project IDs aggregate into a real bucket, not a discard.
	bucket, ok := out[NoProjectLabel+"-2024-1-BE"]
	require.True(t, ok)
	assert.Equal(t, NoProjectLabel, bucket.ProjectName)
	assert.Equal(t, 18000000.0, bucket.BillVND)
}

func TestSummarizeProjectBillsConservation(t *testing.T) {
	rows := []models.BillingDetail{
		billingRow("E1", "P1", "BE", 1, 2024, 10, 50, 24000, 100, 500000),
		billingRow("E2", "P1", "BE", 2, 2024, 12, 45, 25000, 75, 0),
		billingRow("E3", "P2", "FE", 1, 2024, 7, 60, 24000, 100, 250000),
		billingRow("E4", "", "QA", 1, 2024, 3, 20, 26000, 50, 0),
	}

	var want float64
	for _, r := range rows {
		want += ConvertedVND(r.BillableHours, r.Rate.Value, r.FxRate, r.Percentage.Value) + r.PackageVND
	}

	var got float64
	for _, s := range SummarizeProjectBills(rows, map[string]string{"P1": "Falcon", "P2": "Osprey"}) {
		got += s.BillVND
	}

	assert.InDelta(t, want, got, 1e-6)
}

func TestSummarizeTeamReports(t *testing.T) {
	rows := []models.BillingDetail{
		billingRow("E1", "P1", "BE", 3, 2024, 10, 50, 24000, 100, 2000000),
		billingRow("E2", "P1", "BE", 3, 2024, 10, 50, 24000, 100, 0),
	}
	rows[0].CompanyPayment = 8000000
	rows[0].Salary13 = 1000000
	rows[1].CompanyPayment = 7000000
	rows[0].StorageUSD = 120
	rows[1].StorageUSDT = 45

	out := SummarizeTeamReports(rows)
	require.Len(t, out, 1)

	s := out[TeamReportKey("BE", 2024, 3)]
	assert.Equal(t, 24000000.0, s.FinalBill)
	assert.Equal(t, 16000000.0, s.FinalPay)
	assert.Equal(t, 26000000.0, s.FinalEarn)
	assert.Equal(t, 10000000.0, s.FinalSave)
	assert.Equal(t, 120.0, s.StorageUSD)
	assert.Equal(t, 45.0, s.StorageUSDT)
}
