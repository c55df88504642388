package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProjectEstimate flags a project for forward staffing/revenue forecasting.
// Only rows with IsEstimated true ever contribute to the timeline or the
// revenue forecast.
type ProjectEstimate struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID         string             `json:"project_id" bson:"project_id" validate:"required"`
	IsEstimated       bool               `json:"is_estimated" bson:"is_estimated"`
	EstimatedDuration int                `json:"estimated_duration" bson:"estimated_duration" validate:"omitempty,min=1,max=6"`
	TeamRevenues      map[string]float64 `json:"team_revenues" bson:"team_revenues"`
	Metadata          Metadata           `json:"metadata" bson:"metadata"`
}

// TeamAverageCost holds one team's estimated monthly burn. One row per team,
// upserted on edit. Team comes from the request path, not the body.
type TeamAverageCost struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Team               string             `json:"team" bson:"team"`
	AverageMonthlyCost float64            `json:"average_monthly_cost" bson:"average_monthly_cost"`
	Metadata           Metadata           `json:"metadata" bson:"metadata"`
}

// Allocate records how much of one employee's capacity is committed per
// project. Percentages come from the UI as strings ("25%", "50%") or plain
// numbers. Allocations are not validated to sum to 100 or less; the
// availability math handles over-allocation downstream.
type Allocate struct {
	ID                 primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	EmployeeCode       string                `json:"employee_code" bson:"employee_code" validate:"required"`
	Role               string                `json:"role" bson:"role"`
	Position           string                `json:"position" bson:"position"`
	CallKH             bool                  `json:"call_kh" bson:"call_kh"`
	ProjectAllocations map[string]FlexNumber `json:"project_allocations" bson:"project_allocations"`
	Metadata           Metadata              `json:"metadata" bson:"metadata"`
}
