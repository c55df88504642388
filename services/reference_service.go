package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/finance"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"
	repository "github.com/sparkminds-jsc/modern-biz-insight-sub001/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReferenceService interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	ListEmployees(ctx context.Context, status string) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) (*models.Employee, error)

	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	ListProjects(ctx context.Context, status string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id primitive.ObjectID, project *models.Project) (*models.Project, error)

	CreateTeam(ctx context.Context, team *models.Team) (*models.Team, error)
	ListTeams(ctx context.Context, status string) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id primitive.ObjectID, team *models.Team) (*models.Team, error)
}

type referenceService struct {
	ref repository.ReferenceRepository
}

func NewReferenceService(ref repository.ReferenceRepository) ReferenceService {
	return &referenceService{
		ref: ref,
	}
}

func statusFilter(status string) map[string]interface{} {
	if status == "" {
		return nil
	}
	return map[string]interface{}{"status": status}
}

func (s *referenceService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	now := time.Now()
	employee.Metadata.CreatedAt = now
	employee.Metadata.UpdatedAt = now
	if employee.Status == "" {
		employee.Status = models.StatusActive
	}

	if err := s.ref.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *referenceService) ListEmployees(ctx context.Context, status string) ([]models.Employee, error) {
	return s.ref.FindEmployees(ctx, statusFilter(status))
}

func (s *referenceService) UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) (*models.Employee, error) {
	employee.ID = id

	if err := s.ref.UpdateEmployee(ctx, id, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *referenceService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now()
	project.Metadata.CreatedAt = now
	project.Metadata.UpdatedAt = now
	if project.Status == "" {
		project.Status = models.StatusActive
	}

	if err := s.ref.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *referenceService) ListProjects(ctx context.Context, status string) ([]models.Project, error) {
	return s.ref.FindProjects(ctx, statusFilter(status))
}

func (s *referenceService) UpdateProject(ctx context.Context, id primitive.ObjectID, project *models.Project) (*models.Project, error) {
	project.ID = id

	if err := s.ref.UpdateProject(ctx, id, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *referenceService) CreateTeam(ctx context.Context, team *models.Team) (*models.Team, error) {
	now := time.Now()
	team.Metadata.CreatedAt = now
	team.Metadata.UpdatedAt = now
	if team.Status == "" {
		team.Status = models.StatusActive
	}

	if err := s.ref.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *referenceService) ListTeams(ctx context.Context, status string) ([]models.Team, error) {
	return s.ref.FindTeams(ctx, statusFilter(status))
}

func (s *referenceService) UpdateTeam(ctx context.Context, id primitive.ObjectID, team *models.Team) (*models.Team, error) {
	team.ID = id

	if err := s.ref.UpdateTeam(ctx, id, team); err != nil {
		return nil, err
	}

	return team, nil
}

// SalaryService owns the salary sheet lifecycle. Completed sheets cannot be
// deleted; the guard runs before any write is attempted.
type SalaryService interface {
	CreateSalary(ctx context.Context, salary *models.SalaryDetail) (*models.SalaryDetail, error)
	ListSalaries(ctx context.Context, filter map[string]interface{}) ([]models.SalaryDetail, error)
	UpdateSalary(ctx context.Context, id primitive.ObjectID, salary *models.SalaryDetail) (*models.SalaryDetail, error)
	DeleteSalary(ctx context.Context, id primitive.ObjectID) error
}

type salaryService struct {
	salary repository.SalaryRepository
}

func NewSalaryService(salary repository.SalaryRepository) SalaryService {
	return &salaryService{
		salary: salary,
	}
}

func (s *salaryService) CreateSalary(ctx context.Context, salary *models.SalaryDetail) (*models.SalaryDetail, error) {
	now := time.Now()
	salary.Metadata.CreatedAt = now
	salary.Metadata.UpdatedAt = now
	salary.SalaryCoefficient = finance.SalaryCoefficient(salary.KPI, salary.BasicSalary)

	if err := s.salary.Create(ctx, salary); err != nil {
		return nil, err
	}

	return salary, nil
}

func (s *salaryService) ListSalaries(ctx context.Context, filter map[string]interface{}) ([]models.SalaryDetail, error) {
	return s.salary.Find(ctx, filter)
}

func (s *salaryService) UpdateSalary(ctx context.Context, id primitive.ObjectID, salary *models.SalaryDetail) (*models.SalaryDetail, error) {
	existing, err := s.salary.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	salary.ID = existing.ID
	salary.Metadata.CreatedBy = existing.Metadata.CreatedBy
	salary.Metadata.CreatedAt = existing.Metadata.CreatedAt
	salary.SalaryCoefficient = finance.SalaryCoefficient(salary.KPI, salary.BasicSalary)

	if err := s.salary.Update(ctx, id, salary); err != nil {
		return nil, err
	}

	return salary, nil
}

func (s *salaryService) DeleteSalary(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.salary.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.IsCompleted {
		return fmt.Errorf("salary sheet for %s %d/%d is completed and cannot be deleted", existing.EmployeeCode, existing.Month, existing.Year)
	}

	return s.salary.Delete(ctx, id)
}
