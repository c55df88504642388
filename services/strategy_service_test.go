package services

import (
	"context"
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubStrategyRepo struct {
	estimates []models.ProjectEstimate
	costs     []models.TeamAverageCost
	allocates []models.Allocate
	upserted  []models.TeamAverageCost
}

func (r *stubStrategyRepo) CreateEstimate(_ context.Context, e *models.ProjectEstimate) error {
	e.ID = primitive.NewObjectID()
	r.estimates = append(r.estimates, *e)
	return nil
}

func (r *stubStrategyRepo) GetEstimateByID(_ context.Context, id primitive.ObjectID) (*models.ProjectEstimate, error) {
	for i := range r.estimates {
		if r.estimates[i].ID == id {
			return &r.estimates[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubStrategyRepo) FindEstimates(_ context.Context, _ map[string]interface{}) ([]models.ProjectEstimate, error) {
	return r.estimates, nil
}

func (r *stubStrategyRepo) UpdateEstimate(_ context.Context, _ primitive.ObjectID, _ *models.ProjectEstimate) error {
	return nil
}

func (r *stubStrategyRepo) DeleteEstimate(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

func (r *stubStrategyRepo) FindCosts(_ context.Context) ([]models.TeamAverageCost, error) {
	return r.costs, nil
}

func (r *stubStrategyRepo) UpsertCost(_ context.Context, cost *models.TeamAverageCost) error {
	r.upserted = append(r.upserted, *cost)
	return nil
}

func (r *stubStrategyRepo) CreateAllocate(_ context.Context, a *models.Allocate) error {
	a.ID = primitive.NewObjectID()
	r.allocates = append(r.allocates, *a)
	return nil
}

func (r *stubStrategyRepo) GetAllocateByID(_ context.Context, id primitive.ObjectID) (*models.Allocate, error) {
	for i := range r.allocates {
		if r.allocates[i].ID == id {
			return &r.allocates[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubStrategyRepo) FindAllocates(_ context.Context, _ map[string]interface{}) ([]models.Allocate, error) {
	return r.allocates, nil
}

func (r *stubStrategyRepo) UpdateAllocate(_ context.Context, _ primitive.ObjectID, _ *models.Allocate) error {
	return nil
}

func (r *stubStrategyRepo) DeleteAllocate(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

func allocation(code, role string, callKH bool, allocations map[string]float64) models.Allocate {
	parsed := make(map[string]models.FlexNumber, len(allocations))
	for projectID, pct := range allocations {
		parsed[projectID] = models.FlexFromFloat(pct)
	}
	return models.Allocate{
		EmployeeCode:       code,
		Role:               role,
		CallKH:             callKH,
		ProjectAllocations: parsed,
	}
}

func TestAvailabilitySkipsInactiveEmployees(t *testing.T) {
	strategy := &stubStrategyRepo{
		estimates: []models.ProjectEstimate{
			{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 2},
		},
		allocates: []models.Allocate{
			allocation("E1", "Dev", false, map[string]float64{"P1": 40}),
			allocation("E2", "Dev", false, map[string]float64{"P1": 10}),
		},
	}
	// Only E1 is active; E2's allocation row is ignored.
	ref := &stubReferenceRepo{employees: []models.Employee{
		{EmployeeCode: "E1", Team: "BE", Status: models.StatusActive},
	}}

	svc := NewStrategyService(strategy, ref)
	groups, err := svc.Availability(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Employees, 1)
	assert.Equal(t, "E1", groups[0].Employees[0].EmployeeCode)
	assert.Equal(t, 60.0, groups[0].Employees[0].Available)
}

func TestTimelineGroupsByEmployeeTeam(t *testing.T) {
	strategy := &stubStrategyRepo{
		estimates: []models.ProjectEstimate{
			{ProjectID: "P1", IsEstimated: true, EstimatedDuration: 3},
		},
		allocates: []models.Allocate{
			allocation("E1", "Dev", false, map[string]float64{"P1": 100}),
		},
	}
	ref := &stubReferenceRepo{employees: []models.Employee{
		{EmployeeCode: "E1", Team: "BE", Status: models.StatusActive},
	}}

	svc := NewStrategyService(strategy, ref)
	rows, err := svc.Timeline(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BE", rows[0].Team)
	// Fully booked from month 3 onward, free before.
	assert.Equal(t, []string{"E1 (100%)"}, rows[0].Columns[0])
	assert.Empty(t, rows[0].Columns[finance.TimelineHorizon-1])
}

func TestForecastJoinsCosts(t *testing.T) {
	strategy := &stubStrategyRepo{
		estimates: []models.ProjectEstimate{
			{ProjectID: "P1", IsEstimated: true, TeamRevenues: map[string]float64{"BE": 80000000}},
		},
		costs: []models.TeamAverageCost{
			{Team: "BE", AverageMonthlyCost: 50000000},
		},
	}
	ref := &stubReferenceRepo{}

	svc := NewStrategyService(strategy, ref)
	out, err := svc.Forecast(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 30000000.0, out[0].Profit)
}
