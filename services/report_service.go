package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	repository "github.com/sparkminds-jsc/modern-biz-insight-sub001/repositories"

	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRowLocked rejects writes against a locked billing row. Handlers map it
// to a 400 so the client sees a validation failure, not a server fault.
var ErrRowLocked = errors.New("row is locked")

// TeamSummaryStats decorates the aggregated team summaries with simple
// statistics over the per-row bills.
type TeamSummaryStats struct {
	Summaries  []finance.TeamReportSummary `json:"summaries"`
	MeanBill   float64                     `json:"mean_bill"`
	MedianBill float64                     `json:"median_bill"`
}

type ReportService interface {
	CreateBilling(ctx context.Context, detail *models.BillingDetail) (*models.BillingDetail, error)
	GetBillingByID(ctx context.Context, id primitive.ObjectID) (*models.BillingDetail, error)
	ListBilling(ctx context.Context, filter map[string]interface{}) ([]models.BillingDetail, error)
	UpdateBilling(ctx context.Context, id primitive.ObjectID, detail *models.BillingDetail) (*models.BillingDetail, error)
	DeleteBilling(ctx context.Context, id primitive.ObjectID) error

	CreateReport(ctx context.Context, report *models.TeamReport) (*models.TeamReport, error)
	ListReports(ctx context.Context, filter map[string]interface{}) ([]models.TeamReport, error)
	UpdateReport(ctx context.Context, id primitive.ObjectID, report *models.TeamReport) (*models.TeamReport, error)
	DeleteReport(ctx context.Context, id primitive.ObjectID) error

	SummarizeProjects(ctx context.Context, filter map[string]interface{}, rate float64) (map[string]finance.ProjectBillSummary, error)
	SummarizeTeams(ctx context.Context, filter map[string]interface{}, rate float64) (*TeamSummaryStats, error)
}

type reportService struct {
	billing repository.BillingRepository
	salary  repository.SalaryRepository
	ref     repository.ReferenceRepository
}

func NewReportService(billing repository.BillingRepository, salary repository.SalaryRepository, ref repository.ReferenceRepository) ReportService {
	return &reportService{
		billing: billing,
		salary:  salary,
		ref:     ref,
	}
}

// applyDerived recomputes the stored derived fields from the base fields.
// When has_salary is on, company payment and overtime come from the salary
// sheet for the same employee and month; a missing sheet leaves the typed
// values alone, but a failed lookup aborts the write.
func (s *reportService) applyDerived(ctx context.Context, detail *models.BillingDetail) error {
	if detail.HasSalary {
		salary, err := s.salary.GetByEmployeeMonth(ctx, detail.EmployeeCode, detail.Month, detail.Year)
		switch {
		case err == nil:
			detail.CompanyPayment = salary.CompanyPayment
			detail.Salary13 = salary.Salary13
		case errors.Is(err, mongo.ErrNoDocuments):
		default:
			return fmt.Errorf("failed to load salary sheet for %s %d/%d: %v", detail.EmployeeCode, detail.Month, detail.Year, err)
		}
	}

	detail.ConvertedVND = finance.ConvertedVND(
		detail.BillableHours,
		detail.Rate.Value,
		detail.FxRate,
		detail.Percentage.Value,
	)
	detail.TotalPayment = finance.TotalPayment(detail.CompanyPayment, detail.Salary13)
	detail.PercentageRatio = finance.PercentageRatio(detail.TotalPayment, detail.ConvertedVND, detail.PackageVND)
	return nil
}

func (s *reportService) CreateBilling(ctx context.Context, detail *models.BillingDetail) (*models.BillingDetail, error) {
	now := time.Now()
	detail.Metadata.CreatedAt = now
	detail.Metadata.UpdatedAt = now

	if err := s.applyDerived(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.billing.Create(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *reportService) GetBillingByID(ctx context.Context, id primitive.ObjectID) (*models.BillingDetail, error) {
	return s.billing.GetByID(ctx, id)
}

func (s *reportService) ListBilling(ctx context.Context, filter map[string]interface{}) ([]models.BillingDetail, error) {
	return s.billing.Find(ctx, filter)
}

func (s *reportService) UpdateBilling(ctx context.Context, id primitive.ObjectID, detail *models.BillingDetail) (*models.BillingDetail, error) {
	existing, err := s.billing.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.IsLocked {
		return nil, fmt.Errorf("billing detail for %s %d/%d: %w", existing.EmployeeCode, existing.Month, existing.Year, ErrRowLocked)
	}

	detail.ID = existing.ID
	detail.Metadata.CreatedBy = existing.Metadata.CreatedBy
	detail.Metadata.CreatedAt = existing.Metadata.CreatedAt

	if err := s.applyDerived(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.billing.Update(ctx, id, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *reportService) DeleteBilling(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.billing.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Guard runs before any write reaches the store.
	if existing.IsLocked {
		return fmt.Errorf("billing detail for %s %d/%d: %w", existing.EmployeeCode, existing.Month, existing.Year, ErrRowLocked)
	}

	return s.billing.Delete(ctx, id)
}

func (s *reportService) CreateReport(ctx context.Context, report *models.TeamReport) (*models.TeamReport, error) {
	now := time.Now()
	report.Metadata.CreatedAt = now
	report.Metadata.UpdatedAt = now

	if err := s.billing.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, filter map[string]interface{}) ([]models.TeamReport, error) {
	return s.billing.FindReports(ctx, filter)
}

func (s *reportService) UpdateReport(ctx context.Context, id primitive.ObjectID, report *models.TeamReport) (*models.TeamReport, error) {
	existing, err := s.billing.GetReportByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report.ID = existing.ID
	report.Metadata.CreatedBy = existing.Metadata.CreatedBy
	report.Metadata.CreatedAt = existing.Metadata.CreatedAt

	if err := s.billing.UpdateReport(ctx, id, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	return s.billing.DeleteReport(ctx, id)
}

func (s *reportService) SummarizeProjects(ctx context.Context, filter map[string]interface{}, rate float64) (map[string]finance.ProjectBillSummary, error) {
	rows, err := s.billing.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	projects, err := s.ref.FindProjects(ctx, nil)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ProjectID] = p.Name
	}

	out := finance.SummarizeProjectBills(rows, names)
	if rate > 0 {
		for key, summary := range out {
			summary.BillUSDVND = finance.RoundVND(finance.ToVND(summary.BillUSD, rate))
			summary.BillUSDTVND = finance.RoundVND(finance.ToVND(summary.BillUSDT, rate))
			out[key] = summary
		}
	}
	return out, nil
}

func (s *reportService) SummarizeTeams(ctx context.Context, filter map[string]interface{}, rate float64) (*TeamSummaryStats, error) {
	rows, err := s.billing.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	grouped := finance.SummarizeTeamReports(rows)
	summaries := make([]finance.TeamReportSummary, 0, len(grouped))
	bills := make([]float64, 0, len(grouped))
	for _, summary := range grouped {
		if rate > 0 {
			summary.StorageUSDVND = finance.RoundVND(finance.ToVND(summary.StorageUSD, rate))
			summary.StorageUSDTVND = finance.RoundVND(finance.ToVND(summary.StorageUSDT, rate))
		}
		summaries = append(summaries, summary)
		bills = append(bills, summary.FinalBill)
	}
	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Team < b.Team
	})

	out := &TeamSummaryStats{Summaries: summaries}
	if len(bills) > 0 {
		if mean, err := stats.Mean(bills); err == nil {
			out.MeanBill = finance.RoundVND(mean)
		}
		if median, err := stats.Median(bills); err == nil {
			out.MedianBill = finance.RoundVND(median)
		}
	}

	return out, nil
}
