package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubStrategyService struct {
	savedCost *models.TeamAverageCost
}

func (s *stubStrategyService) Availability(_ context.Context) ([]finance.AvailabilityGroup, error) {
	return nil, nil
}

func (s *stubStrategyService) Timeline(_ context.Context) ([]finance.TimelineRow, error) {
	return nil, nil
}

func (s *stubStrategyService) Forecast(_ context.Context) ([]finance.TeamForecast, error) {
	return nil, nil
}

func (s *stubStrategyService) CreateEstimate(_ context.Context, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error) {
	return estimate, nil
}

func (s *stubStrategyService) ListEstimates(_ context.Context, _ map[string]interface{}) ([]models.ProjectEstimate, error) {
	return nil, nil
}

func (s *stubStrategyService) UpdateEstimate(_ context.Context, _ primitive.ObjectID, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error) {
	return estimate, nil
}

func (s *stubStrategyService) DeleteEstimate(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

func (s *stubStrategyService) ListCosts(_ context.Context) ([]models.TeamAverageCost, error) {
	return nil, nil
}

func (s *stubStrategyService) UpsertCost(_ context.Context, cost *models.TeamAverageCost) error {
	s.savedCost = cost
	return nil
}

func (s *stubStrategyService) CreateAllocate(_ context.Context, allocate *models.Allocate) (*models.Allocate, error) {
	return allocate, nil
}

func (s *stubStrategyService) ListAllocates(_ context.Context, _ map[string]interface{}) ([]models.Allocate, error) {
	return nil, nil
}

func (s *stubStrategyService) UpdateAllocate(_ context.Context, _ primitive.ObjectID, allocate *models.Allocate) (*models.Allocate, error) {
	return allocate, nil
}

func (s *stubStrategyService) DeleteAllocate(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

// The team comes from the path alone; a body that never repeats it must
// still be accepted.
func TestUpsertCostTeamFromPath(t *testing.T) {
	svc := &stubStrategyService{}
	h := NewStrategyHandler(svc)

	body := `{"average_monthly_cost": 150000000}`
	r := httptest.NewRequest(http.MethodPut, "/api/costs/BE", strings.NewReader(body))
	r.SetPathValue("team", "BE")
	w := httptest.NewRecorder()
	h.UpsertCost(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.savedCost)
	assert.Equal(t, "BE", svc.savedCost.Team)
	assert.Equal(t, 150000000.0, svc.savedCost.AverageMonthlyCost)
}

func TestUpsertCostMissingTeam(t *testing.T) {
	svc := &stubStrategyService{}
	h := NewStrategyHandler(svc)

	r := httptest.NewRequest(http.MethodPut, "/api/costs/", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	h.UpsertCost(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.savedCost)
}
