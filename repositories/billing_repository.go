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

type BillingRepository interface {
	Create(ctx context.Context, detail *models.BillingDetail) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BillingDetail, error)
	Find(ctx context.Context, filter map[string]interface{}) ([]models.BillingDetail, error)
	Update(ctx context.Context, id primitive.ObjectID, detail *models.BillingDetail) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	CreateReport(ctx context.Context, report *models.TeamReport) error
	GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.TeamReport, error)
	FindReports(ctx context.Context, filter map[string]interface{}) ([]models.TeamReport, error)
	UpdateReport(ctx context.Context, id primitive.ObjectID, report *models.TeamReport) error
	DeleteReport(ctx context.Context, id primitive.ObjectID) error
}

type billingRepository struct {
	details *mongo.Collection
	reports *mongo.Collection
}

func NewBillingRepository(db *mongo.Database) BillingRepository {
	return &billingRepository{
		details: db.Collection("team_report_details"),
		reports: db.Collection("team_reports"),
	}
}

func (r *billingRepository) Create(ctx context.Context, detail *models.BillingDetail) error {
	detail.ID = primitive.NewObjectID()

	_, err := r.details.InsertOne(ctx, detail)
	return err
}

func (r *billingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BillingDetail, error) {
	var detail models.BillingDetail
	err := r.details.FindOne(ctx, bson.M{"_id": id}).Decode(&detail)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *billingRepository) Find(ctx context.Context, filter map[string]interface{}) ([]models.BillingDetail, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
		{Key: "employee_code", Value: 1},
	})

	cursor, err := r.details.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []models.BillingDetail
	if err = cursor.All(ctx, &details); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *billingRepository) Update(ctx context.Context, id primitive.ObjectID, detail *models.BillingDetail) error {
	detail.Metadata.UpdatedAt = time.Now()

	result, err := r.details.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": detail})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no billing detail found with id %s", id.Hex())
	}

	return nil
}

func (r *billingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.details.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no billing detail found with id %s", id.Hex())
	}

	return nil
}

func (r *billingRepository) CreateReport(ctx context.Context, report *models.TeamReport) error {
	report.ID = primitive.NewObjectID()

	_, err := r.reports.InsertOne(ctx, report)
	return err
}

func (r *billingRepository) GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.TeamReport, error) {
	var report models.TeamReport
	err := r.reports.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *billingRepository) FindReports(ctx context.Context, filter map[string]interface{}) ([]models.TeamReport, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
		{Key: "team", Value: 1},
	})

	cursor, err := r.reports.Find(ctx, BuildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.TeamReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *billingRepository) UpdateReport(ctx context.Context, id primitive.ObjectID, report *models.TeamReport) error {
	report.Metadata.UpdatedAt = time.Now()

	result, err := r.reports.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": report})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no team report found with id %s", id.Hex())
	}

	return nil
}

func (r *billingRepository) DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	// Detail rows are intentionally left alone: report and details have
	// independent lifecycles.
	result, err := r.reports.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("no team report found with id %s", id.Hex())
	}

	return nil
}
