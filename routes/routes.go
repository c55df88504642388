package routes

import (
	"net/http"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/handlers"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/middlewares"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Report    *handlers.ReportHandler
	Strategy  *handlers.StrategyHandler
	Export    *handlers.ExportHandler
	Reference *handlers.ReferenceHandler
	Salary    *handlers.SalaryHandler
}

// SetupRoutes registers the full API surface behind JWT auth.
func SetupRoutes(h Handlers, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)
	protect := func(handler http.HandlerFunc) http.Handler {
		return jwtMiddleware(handler)
	}

	// Billing detail rows
	mux.Handle("POST /api/billing", protect(h.Report.CreateBilling))
	mux.Handle("GET /api/billing", protect(h.Report.ListBilling))
	mux.Handle("GET /api/billing/{id}", protect(h.Report.GetBillingByID))
	mux.Handle("PUT /api/billing/{id}", protect(h.Report.UpdateBilling))
	mux.Handle("DELETE /api/billing/{id}", protect(h.Report.DeleteBilling))
	// Aggregated summaries
	mux.Handle("GET /api/billing/summary/projects", protect(h.Report.SummarizeProjects))
	mux.Handle("GET /api/billing/summary/teams", protect(h.Report.SummarizeTeams))
	// Exports
	mux.Handle("GET /api/billing/export/csv", protect(h.Export.BillingCSV))
	mux.Handle("GET /api/billing/export/pdf", protect(h.Export.BillingPDF))

	// Stored team reports
	mux.Handle("POST /api/reports", protect(h.Report.CreateReport))
	mux.Handle("GET /api/reports", protect(h.Report.ListReports))
	mux.Handle("PUT /api/reports/{id}", protect(h.Report.UpdateReport))
	mux.Handle("DELETE /api/reports/{id}", protect(h.Report.DeleteReport))

	// Strategy: forecasting inputs and outputs
	mux.Handle("GET /api/strategy/availability", protect(h.Strategy.GetAvailability))
	mux.Handle("GET /api/strategy/timeline", protect(h.Strategy.GetTimeline))
	mux.Handle("GET /api/strategy/forecast", protect(h.Strategy.GetForecast))
	mux.Handle("POST /api/estimates", protect(h.Strategy.CreateEstimate))
	mux.Handle("GET /api/estimates", protect(h.Strategy.ListEstimates))
	mux.Handle("PUT /api/estimates/{id}", protect(h.Strategy.UpdateEstimate))
	mux.Handle("DELETE /api/estimates/{id}", protect(h.Strategy.DeleteEstimate))
	mux.Handle("GET /api/costs", protect(h.Strategy.ListCosts))
	mux.Handle("PUT /api/costs/{team}", protect(h.Strategy.UpsertCost))
	mux.Handle("POST /api/allocates", protect(h.Strategy.CreateAllocate))
	mux.Handle("GET /api/allocates", protect(h.Strategy.ListAllocates))
	mux.Handle("PUT /api/allocates/{id}", protect(h.Strategy.UpdateAllocate))
	mux.Handle("DELETE /api/allocates/{id}", protect(h.Strategy.DeleteAllocate))

	// Salary sheets
	mux.Handle("POST /api/salaries", protect(h.Salary.CreateSalary))
	mux.Handle("GET /api/salaries", protect(h.Salary.ListSalaries))
	mux.Handle("PUT /api/salaries/{id}", protect(h.Salary.UpdateSalary))
	mux.Handle("DELETE /api/salaries/{id}", protect(h.Salary.DeleteSalary))

	// Reference entities
	mux.Handle("POST /api/employees", protect(h.Reference.CreateEmployee))
	mux.Handle("GET /api/employees", protect(h.Reference.ListEmployees))
	mux.Handle("PUT /api/employees/{id}", protect(h.Reference.UpdateEmployee))
	mux.Handle("POST /api/projects", protect(h.Reference.CreateProject))
	mux.Handle("GET /api/projects", protect(h.Reference.ListProjects))
	mux.Handle("PUT /api/projects/{id}", protect(h.Reference.UpdateProject))
	mux.Handle("POST /api/teams", protect(h.Reference.CreateTeam))
	mux.Handle("GET /api/teams", protect(h.Reference.ListTeams))
	mux.Handle("PUT /api/teams/{id}", protect(h.Reference.UpdateTeam))

	return mux
}
