package services

import (
	"context"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	repository "github.com/sparkminds-jsc/modern-biz-insight-sub001/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type StrategyService interface {
	Availability(ctx context.Context) ([]finance.AvailabilityGroup, error)
	Timeline(ctx context.Context) ([]finance.TimelineRow, error)
	Forecast(ctx context.Context) ([]finance.TeamForecast, error)

	CreateEstimate(ctx context.Context, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error)
	ListEstimates(ctx context.Context, filter map[string]interface{}) ([]models.ProjectEstimate, error)
	UpdateEstimate(ctx context.Context, id primitive.ObjectID, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error)
	DeleteEstimate(ctx context.Context, id primitive.ObjectID) error

	ListCosts(ctx context.Context) ([]models.TeamAverageCost, error)
	UpsertCost(ctx context.Context, cost *models.TeamAverageCost) error

	CreateAllocate(ctx context.Context, allocate *models.Allocate) (*models.Allocate, error)
	ListAllocates(ctx context.Context, filter map[string]interface{}) ([]models.Allocate, error)
	UpdateAllocate(ctx context.Context, id primitive.ObjectID, allocate *models.Allocate) (*models.Allocate, error)
	DeleteAllocate(ctx context.Context, id primitive.ObjectID) error
}

type strategyService struct {
	strategy repository.StrategyRepository
	ref      repository.ReferenceRepository
}

func NewStrategyService(strategy repository.StrategyRepository, ref repository.ReferenceRepository) StrategyService {
	return &strategyService{
		strategy: strategy,
		ref:      ref,
	}
}

// snapshot is one consistent set of inputs for the pure computations. The
// independent collections are fetched with a fixed fan-out and processed
// synchronously once all have resolved.
type snapshot struct {
	estimates []models.ProjectEstimate
	allocates []models.Allocate
	employees []models.Employee
	costs     []models.TeamAverageCost
}

func (s *strategyService) fetchSnapshot(ctx context.Context, withCosts bool) (*snapshot, error) {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		estimates, err := s.strategy.FindEstimates(gctx, nil)
		snap.estimates = estimates
		return err
	})
	g.Go(func() error {
		allocates, err := s.strategy.FindAllocates(gctx, nil)
		snap.allocates = allocates
		return err
	})
	g.Go(func() error {
		employees, err := s.ref.FindEmployees(gctx, map[string]interface{}{"status": models.StatusActive})
		snap.employees = employees
		return err
	})
	if withCosts {
		g.Go(func() error {
			costs, err := s.strategy.FindCosts(gctx)
			snap.costs = costs
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}

// activeAllocates keeps only allocation rows belonging to active employees.
func activeAllocates(allocates []models.Allocate, employees []models.Employee) []models.Allocate {
	active := make(map[string]bool, len(employees))
	for _, e := range employees {
		active[e.EmployeeCode] = true
	}

	out := make([]models.Allocate, 0, len(allocates))
	for _, a := range allocates {
		if active[a.EmployeeCode] {
			out = append(out, a)
		}
	}
	return out
}

func (s *strategyService) Availability(ctx context.Context) ([]finance.AvailabilityGroup, error) {
	snap, err := s.fetchSnapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	scope := finance.InScopeProjects(snap.estimates, 0)
	allocs := activeAllocates(snap.allocates, snap.employees)

	return finance.Availability(allocs, scope), nil
}

func (s *strategyService) Timeline(ctx context.Context) ([]finance.TimelineRow, error) {
	snap, err := s.fetchSnapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	teamByCode := make(map[string]string, len(snap.employees))
	for _, e := range snap.employees {
		teamByCode[e.EmployeeCode] = e.Team
	}
	allocs := activeAllocates(snap.allocates, snap.employees)

	return finance.ProjectTimeline(allocs, teamByCode, snap.estimates), nil
}

func (s *strategyService) Forecast(ctx context.Context) ([]finance.TeamForecast, error) {
	snap, err := s.fetchSnapshot(ctx, true)
	if err != nil {
		return nil, err
	}

	costs := make(map[string]float64, len(snap.costs))
	for _, c := range snap.costs {
		costs[c.Team] = c.AverageMonthlyCost
	}

	return finance.ForecastProfit(snap.estimates, costs), nil
}

func (s *strategyService) CreateEstimate(ctx context.Context, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error) {
	now := time.Now()
	estimate.Metadata.CreatedAt = now
	estimate.Metadata.UpdatedAt = now

	if err := s.strategy.CreateEstimate(ctx, estimate); err != nil {
		return nil, err
	}

	return estimate, nil
}

func (s *strategyService) ListEstimates(ctx context.Context, filter map[string]interface{}) ([]models.ProjectEstimate, error) {
	return s.strategy.FindEstimates(ctx, filter)
}

func (s *strategyService) UpdateEstimate(ctx context.Context, id primitive.ObjectID, estimate *models.ProjectEstimate) (*models.ProjectEstimate, error) {
	existing, err := s.strategy.GetEstimateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	estimate.ID = existing.ID
	estimate.Metadata.CreatedBy = existing.Metadata.CreatedBy
	estimate.Metadata.CreatedAt = existing.Metadata.CreatedAt

	if err := s.strategy.UpdateEstimate(ctx, id, estimate); err != nil {
		return nil, err
	}

	return estimate, nil
}

func (s *strategyService) DeleteEstimate(ctx context.Context, id primitive.ObjectID) error {
	return s.strategy.DeleteEstimate(ctx, id)
}

func (s *strategyService) ListCosts(ctx context.Context) ([]models.TeamAverageCost, error) {
	return s.strategy.FindCosts(ctx)
}

func (s *strategyService) UpsertCost(ctx context.Context, cost *models.TeamAverageCost) error {
	return s.strategy.UpsertCost(ctx, cost)
}

func (s *strategyService) CreateAllocate(ctx context.Context, allocate *models.Allocate) (*models.Allocate, error) {
	now := time.Now()
	allocate.Metadata.CreatedAt = now
	allocate.Metadata.UpdatedAt = now

	if err := s.strategy.CreateAllocate(ctx, allocate); err != nil {
		return nil, err
	}

	return allocate, nil
}

func (s *strategyService) ListAllocates(ctx context.Context, filter map[string]interface{}) ([]models.Allocate, error) {
	return s.strategy.FindAllocates(ctx, filter)
}

func (s *strategyService) UpdateAllocate(ctx context.Context, id primitive.ObjectID, allocate *models.Allocate) (*models.Allocate, error) {
	existing, err := s.strategy.GetAllocateByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allocate.ID = existing.ID
	allocate.Metadata.CreatedBy = existing.Metadata.CreatedBy
	allocate.Metadata.CreatedAt = existing.Metadata.CreatedAt

	if err := s.strategy.UpdateAllocate(ctx, id, allocate); err != nil {
		return nil, err
	}

	return allocate, nil
}

func (s *strategyService) DeleteAllocate(ctx context.Context, id primitive.ObjectID) error {
	return s.strategy.DeleteAllocate(ctx, id)
}
