package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Status values shared by the reference entities. Filtering is a soft
// visibility concern; rows are never hard-deleted by a status change.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeCode string             `json:"employee_code" bson:"employee_code" validate:"required"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Team         string             `json:"team" bson:"team"`
	Status       string             `json:"status" bson:"status"`
	Metadata     Metadata           `json:"metadata" bson:"metadata"`
}

type Project struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID string             `json:"project_id" bson:"project_id" validate:"required"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Status    string             `json:"status" bson:"status"`
	Metadata  Metadata           `json:"metadata" bson:"metadata"`
}

type Team struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Status   string             `json:"status" bson:"status"`
	Metadata Metadata           `json:"metadata" bson:"metadata"`
}
