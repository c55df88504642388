package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReferenceRepository serves the descriptive entities: employees, projects
// and teams. Lifecycle is create, update and status filtering only.
type ReferenceRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	FindEmployees(ctx context.Context, filter map[string]interface{}) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error

	CreateProject(ctx context.Context, project *models.Project) error
	FindProjects(ctx context.Context, filter map[string]interface{}) ([]models.Project, error)
	UpdateProject(ctx context.Context, id primitive.ObjectID, project *models.Project) error

	CreateTeam(ctx context.Context, team *models.Team) error
	FindTeams(ctx context.Context, filter map[string]interface{}) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id primitive.ObjectID, team *models.Team) error
}

type referenceRepository struct {
	employees *mongo.Collection
	projects  *mongo.Collection
	teams     *mongo.Collection
}

func NewReferenceRepository(db *mongo.Database) ReferenceRepository {
	return &referenceRepository{
		employees: db.Collection("employees"),
		projects:  db.Collection("projects"),
		teams:     db.Collection("teams"),
	}
}

func (r *referenceRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	employee.ID = primitive.NewObjectID()

	_, err := r.employees.InsertOne(ctx, employee)
	return err
}

func (r *referenceRepository) FindEmployees(ctx context.Context, filter map[string]interface{}) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_code", Value: 1}})

	cursor, err := r.employees.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *referenceRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error {
	employee.Metadata.UpdatedAt = time.Now()

	result, err := r.employees.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": employee})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no employee found with id %s", id.Hex())
	}

	return nil
}

func (r *referenceRepository) CreateProject(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()

	_, err := r.projects.InsertOne(ctx, project)
	return err
}

func (r *referenceRepository) FindProjects(ctx context.Context, filter map[string]interface{}) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.projects.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *referenceRepository) UpdateProject(ctx context.Context, id primitive.ObjectID, project *models.Project) error {
	project.Metadata.UpdatedAt = time.Now()

	result, err := r.projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": project})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no project found with id %s", id.Hex())
	}

	return nil
}

func (r *referenceRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()

	_, err := r.teams.InsertOne(ctx, team)
	return err
}

func (r *referenceRepository) FindTeams(ctx context.Context, filter map[string]interface{}) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.teams.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *referenceRepository) UpdateTeam(ctx context.Context, id primitive.ObjectID, team *models.Team) error {
	team.Metadata.UpdatedAt = time.Now()

	result, err := r.teams.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": team})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no team found with id %s", id.Hex())
	}

	return nil
}
