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

type StrategyRepository interface {
	CreateEstimate(ctx context.Context, estimate *models.ProjectEstimate) error
	GetEstimateByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectEstimate, error)
	FindEstimates(ctx context.Context, filter map[string]interface{}) ([]models.ProjectEstimate, error)
	UpdateEstimate(ctx context.Context, id primitive.ObjectID, estimate *models.ProjectEstimate) error
	DeleteEstimate(ctx context.Context, id primitive.ObjectID) error

	FindCosts(ctx context.Context) ([]models.TeamAverageCost, error)
	UpsertCost(ctx context.Context, cost *models.TeamAverageCost) error

	CreateAllocate(ctx context.Context, allocate *models.Allocate) error
	GetAllocateByID(ctx context.Context, id primitive.ObjectID) (*models.Allocate, error)
	FindAllocates(ctx context.Context, filter map[string]interface{}) ([]models.Allocate, error)
	UpdateAllocate(ctx context.Context, id primitive.ObjectID, allocate *models.Allocate) error
	DeleteAllocate(ctx context.Context, id primitive.ObjectID) error
}

type strategyRepository struct {
	estimates *mongo.Collection
	costs     *mongo.Collection
	allocates *mongo.Collection
}

func NewStrategyRepository(db *mongo.Database) StrategyRepository {
	return &strategyRepository{
		estimates: db.Collection("project_estimates"),
		costs:     db.Collection("team_average_costs"),
		allocates: db.Collection("allocates"),
	}
}

func (r *strategyRepository) CreateEstimate(ctx context.Context, estimate *models.ProjectEstimate) error {
	estimate.ID = primitive.NewObjectID()

	_, err := r.estimates.InsertOne(ctx, estimate)
	return err
}

func (r *strategyRepository) GetEstimateByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectEstimate, error) {
	var estimate models.ProjectEstimate
	err := r.estimates.FindOne(ctx, bson.M{"_id": id}).Decode(&estimate)
	if err != nil {
		return nil, err
	}

	return &estimate, nil
}

func (r *strategyRepository) FindEstimates(ctx context.Context, filter map[string]interface{}) ([]models.ProjectEstimate, error) {
	cursor, err := r.estimates.Find(ctx, BuildFilter(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var estimates []models.ProjectEstimate
	if err = cursor.All(ctx, &estimates); err != nil {
		return nil, err
	}

	return estimates, nil
}

func (r *strategyRepository) UpdateEstimate(ctx context.Context, id primitive.ObjectID, estimate *models.ProjectEstimate) error {
	estimate.Metadata.UpdatedAt = time.Now()

	result, err := r.estimates.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": estimate})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no project estimate found with id %s", id.Hex())
	}

	return nil
}

func (r *strategyRepository) DeleteEstimate(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.estimates.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no project estimate found with id %s", id.Hex())
	}

	return nil
}

func (r *strategyRepository) FindCosts(ctx context.Context) ([]models.TeamAverageCost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "team", Value: 1}})

	cursor, err := r.costs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var costs []models.TeamAverageCost
	if err = cursor.All(ctx, &costs); err != nil {
		return nil, err
	}

	return costs, nil
}

// UpsertCost writes the team's average cost with create-if-absent semantics.
// Last write wins; there is no conflict detection.
func (r *strategyRepository) UpsertCost(ctx context.Context, cost *models.TeamAverageCost) error {
	update := bson.M{
		"$set": bson.M{
			"average_monthly_cost": cost.AverageMonthlyCost,
			"metadata.updated_at":  time.Now(),
			"metadata.updated_by":  cost.Metadata.UpdatedBy,
		},
		"$setOnInsert": bson.M{
			"team":                cost.Team,
			"metadata.created_at": time.Now(),
			"metadata.created_by": cost.Metadata.UpdatedBy,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.costs.UpdateOne(ctx, bson.M{"team": cost.Team}, update, opts)
	return err
}

func (r *strategyRepository) CreateAllocate(ctx context.Context, allocate *models.Allocate) error {
	allocate.ID = primitive.NewObjectID()

	_, err := r.allocates.InsertOne(ctx, allocate)
	return err
}

func (r *strategyRepository) GetAllocateByID(ctx context.Context, id primitive.ObjectID) (*models.Allocate, error) {
	var allocate models.Allocate
	err := r.allocates.FindOne(ctx, bson.M{"_id": id}).Decode(&allocate)
	if err != nil {
		return nil, err
	}

	return &allocate, nil
}

func (r *strategyRepository) FindAllocates(ctx context.Context, filter map[string]interface{}) ([]models.Allocate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_code", Value: 1}})

	cursor, err := r.allocates.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var allocates []models.Allocate
	if err = cursor.All(ctx, &allocates); err != nil {
		return nil, err
	}

	return allocates, nil
}

func (r *strategyRepository) UpdateAllocate(ctx context.Context, id primitive.ObjectID, allocate *models.Allocate) error {
	allocate.Metadata.UpdatedAt = time.Now()

	result, err := r.allocates.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": allocate})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no allocate found with id %s", id.Hex())
	}

	return nil
}

func (r *strategyRepository) DeleteAllocate(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.allocates.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no allocate found with id %s", id.Hex())
	}

	return nil
}
