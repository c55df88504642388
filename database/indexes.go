package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates the compound indexes behind the report and strategy
// queries.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// LIST + SUMMARY: team/month/year filters on billing rows
	// Used by: ListBilling, SummarizeProjects, SummarizeTeams, exports
	detailIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "team", Value: 1},
				{Key: "year", Value: -1},
				{Key: "month", Value: -1},
			},
			Options: options.Index().SetName("idx_team_year_month"),
		},
		{
			Keys: bson.D{
				{Key: "employee_code", Value: 1},
				{Key: "year", Value: -1},
				{Key: "month", Value: -1},
			},
			Options: options.Index().SetName("idx_employee_year_month"),
		},
	}
	if _, err := db.Collection("team_report_details").Indexes().CreateMany(ctx, detailIndexes); err != nil {
		return fmt.Errorf("failed to create team_report_details indexes: %v", err)
	}

	// SALARY LOOKUP: composite key used by the has_salary auto-fill
	salaryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_code", Value: 1},
				{Key: "year", Value: 1},
				{Key: "month", Value: 1},
			},
			Options: options.Index().SetName("idx_salary_composite").SetUnique(true),
		},
	}
	if _, err := db.Collection("salary_details").Indexes().CreateMany(ctx, salaryIndexes); err != nil {
		return fmt.Errorf("failed to create salary_details indexes: %v", err)
	}

	// UPSERT KEY: one cost row per team
	costIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "team", Value: 1}},
			Options: options.Index().SetName("idx_cost_team").SetUnique(true),
		},
	}
	if _, err := db.Collection("team_average_costs").Indexes().CreateMany(ctx, costIndexes); err != nil {
		return fmt.Errorf("failed to create team_average_costs indexes: %v", err)
	}

	// FORECAST SCOPE: estimated projects filter
	estimateIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "is_estimated", Value: 1},
				{Key: "estimated_duration", Value: 1},
			},
			Options: options.Index().SetName("idx_estimated_duration"),
		},
	}
	if _, err := db.Collection("project_estimates").Indexes().CreateMany(ctx, estimateIndexes); err != nil {
		return fmt.Errorf("failed to create project_estimates indexes: %v", err)
	}

	// ALLOCATION LOOKUP: allocation rows by employee
	allocateIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_code", Value: 1}},
			Options: options.Index().SetName("idx_allocate_employee"),
		},
	}
	if _, err := db.Collection("allocates").Indexes().CreateMany(ctx, allocateIndexes); err != nil {
		return fmt.Errorf("failed to create allocates indexes: %v", err)
	}

	fmt.Println("Indexes created successfully")
	return nil
}
