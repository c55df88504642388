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

type SalaryRepository interface {
	Create(ctx context.Context, salary *models.SalaryDetail) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SalaryDetail, error)
	GetByEmployeeMonth(ctx context.Context, employeeCode string, month, year int) (*models.SalaryDetail, error)
	Find(ctx context.Context, filter map[string]interface{}) ([]models.SalaryDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, salary *models.SalaryDetail) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type salaryRepository struct {
	collection *mongo.Collection
}

func NewSalaryRepository(db *mongo.Database) SalaryRepository {
	return &salaryRepository{
		collection: db.Collection("salary_details"),
	}
}

func (r *salaryRepository) Create(ctx context.Context, salary *models.SalaryDetail) error {
	salary.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, salary)
	return err
}

func (r *salaryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SalaryDetail, error) {
	var salary models.SalaryDetail
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&salary)
	if err != nil {
		return nil, err
	}

	return &salary, nil
}

// GetByEmployeeMonth looks a salary row up by its composite key. Used by the
// billing service when has_salary toggles on.
func (r *salaryRepository) GetByEmployeeMonth(ctx context.Context, employeeCode string, month, year int) (*models.SalaryDetail, error) {
	filter := bson.M{
		"employee_code": employeeCode,
		"month":         month,
		"year":          year,
	}

	var salary models.SalaryDetail
	err := r.collection.FindOne(ctx, filter).Decode(&salary)
	if err != nil {
		return nil, err
	}

	return &salary, nil
}

func (r *salaryRepository) Find(ctx context.Context, filter map[string]interface{}) ([]models.SalaryDetail, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
		{Key: "employee_code", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var salaries []models.SalaryDetail
	if err = cursor.All(ctx, &salaries); err != nil {
		return nil, err
	}

	return salaries, nil
}

func (r *salaryRepository) Update(ctx context.Context, id primitive.ObjectID, salary *models.SalaryDetail) error {
	salary.Metadata.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": salary})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no salary detail found with id %s", id.Hex())
	}

	return nil
}

func (r *salaryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no salary detail found with id %s", id.Hex())
	}

	return nil
}
