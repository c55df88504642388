package finance

import (
	"fmt"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
)

// NoProjectLabel is the aggregation bucket for rows whose project_id does not
// resolve to a known project. It is a real bucket, not a discard.
const NoProjectLabel = "Không có dự án"

// ProjectBillSummary is one (project, year, month, team) bucket of summed
// billing.
type ProjectBillSummary struct {
	ProjectName string  `json:"project_name"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Team        string  `json:"team"`
	BillVND     float64 `json:"bill_vnd"`
	BillUSD     float64 `json:"bill_usd"`
	BillUSDT    float64 `json:"bill_usdt"`
	BillUSDVND  float64 `json:"bill_usd_vnd,omitempty"`
	BillUSDTVND float64 `json:"bill_usdt_vnd,omitempty"`
}

// ProjectBillKey builds the string bucket key used by the project summary
// view: "{projectName}-{year}-{month}-{team}".
func ProjectBillKey(projectName string, year, month int, team string) string {
	return fmt.Sprintf("%s-%d-%d-%s", projectName, year, month, team)
}

// SummarizeProjectBills groups billing rows by (project, year, month, team)
// and sums their monetary fields. projectNames maps project_id to display
// name; unresolved IDs fall into the NoProjectLabel bucket.
func SummarizeProjectBills(rows []models.BillingDetail, projectNames map[string]string) map[string]ProjectBillSummary {
	out := make(map[string]ProjectBillSummary)
	for _, row := range rows {
		name, ok := projectNames[row.ProjectID]
		if !ok || name == "" {
			name = NoProjectLabel
		}
		key := ProjectBillKey(name, row.Year, row.Month, row.Team)
		s, ok := out[key]
		if !ok {
			s = ProjectBillSummary{
				ProjectName: name,
				Year:        row.Year,
				Month:       row.Month,
				Team:        row.Team,
			}
		}
		converted := ConvertedVND(row.BillableHours, row.Rate.Value, row.FxRate, row.Percentage.Value)
		s.BillVND += converted + row.PackageVND
		s.BillUSD += row.StorageUSD
		s.BillUSDT += row.StorageUSDT
		out[key] = s
	}
	return out
}

// TeamReportSummary is the aggregate of one team's rows for a month.
type TeamReportSummary struct {
	Team        string  `json:"team"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	FinalBill   float64 `json:"final_bill"`
	FinalPay    float64 `json:"final_pay"`
	FinalSave   float64 `json:"final_save"`
	FinalEarn   float64 `json:"final_earn"`
	StorageUSD  float64 `json:"storage_usd"`
	StorageUSDT float64 `json:"storage_usdt"`

	// VND equivalents of the storage sums, filled only when the caller
	// supplied an exchange rate.
	StorageUSDVND  float64 `json:"storage_usd_vnd,omitempty"`
	StorageUSDTVND float64 `json:"storage_usdt_vnd,omitempty"`
}

// TeamReportKey builds the bucket key for a team monthly summary.
func TeamReportKey(team string, year, month int) string {
	return fmt.Sprintf("%s-%d-%d", team, year, month)
}

// SummarizeTeamReports groups billing rows by (team, month, year):
// final_bill sums converted VND, final_pay sums payments, final_earn sums
// converted VND plus package, and final_save is earn minus pay.
func SummarizeTeamReports(rows []models.BillingDetail) map[string]TeamReportSummary {
	out := make(map[string]TeamReportSummary)
	for _, row := range rows {
		key := TeamReportKey(row.Team, row.Year, row.Month)
		s, ok := out[key]
		if !ok {
			s = TeamReportSummary{Team: row.Team, Month: row.Month, Year: row.Year}
		}
		converted := ConvertedVND(row.BillableHours, row.Rate.Value, row.FxRate, row.Percentage.Value)
		pay := TotalPayment(row.CompanyPayment, row.Salary13)
		s.FinalBill += converted
		s.FinalPay += pay
		s.FinalEarn += converted + row.PackageVND
		s.FinalSave = s.FinalEarn - s.FinalPay
		s.StorageUSD += row.StorageUSD
		s.StorageUSDT += row.StorageUSDT
		out[key] = s
	}
	return out
}
